// Command blackwood is a UCI chess engine. It speaks line-delimited
// UCI on stdin/stdout: a frontend reader here converts each line into
// a command and hands it to the engine broker, which runs alone for
// the life of the process.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/blackwood-chess/blackwood/engine"
)

func main() {
	// Route stray log output through a prefix that is itself a
	// well-formed UCI line, so nothing logged anywhere in the engine
	// can desynchronize a GUI parsing stdout.
	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	inbound := make(chan engine.Command, 16)
	outbound := make(chan engine.Response, 64)

	broker := engine.NewEngineBroker(inbound, outbound)

	brokerDone := make(chan struct{})
	go func() {
		broker.Run()
		close(brokerDone)
	}()

	printerDone := make(chan struct{})
	go func() {
		for r := range outbound {
			printResponse(r)
		}
		close(printerDone)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		p := parseLine(scanner.Text())
		switch {
		case p.quit:
			goto shutdown
		case p.direct != "":
			fmt.Printf("info string %s\n", p.direct)
		case p.hasCmd:
			inbound <- p.cmd
		}
	}
	if err := scanner.Err(); err != nil {
		log.Println("stdin read error:", err)
	}

shutdown:
	// A pending search is stopped, not abandoned: StopSearch is queued
	// ahead of the close so the worker observes cancellation and posts
	// its last bestmove before the queues shut down.
	inbound <- engine.CmdStopSearch{}
	close(inbound)
	<-brokerDone
	broker.Wait()
	close(outbound)
	<-printerDone
}
