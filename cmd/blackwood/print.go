package main

import (
	"fmt"
	"strings"

	"github.com/blackwood-chess/blackwood/engine"
)

// printResponse renders one Response as the UCI line(s) it maps to
// and writes them to stdout. The printer goroutine is the only writer
// of stdout once the engine is running, so no further synchronization
// is needed here.
func printResponse(r engine.Response) {
	switch v := r.(type) {
	case engine.RespID:
		fmt.Printf("id name %s\n", v.Name)
		fmt.Printf("id author %s\n", v.Author)
	case engine.RespUCIOk:
		fmt.Println("uciok")
	case engine.RespReadyOk:
		fmt.Println("readyok")
	case engine.RespInfo:
		fmt.Println(formatInfo(v))
	case engine.RespBestMove:
		if v.HasMove {
			fmt.Printf("bestmove %s\n", v.Move.UCI())
		} else {
			fmt.Println("bestmove (none)")
		}
	case engine.RespInfoString:
		fmt.Printf("info string %s\n", v.Text)
	case engine.RespPerft:
		fmt.Printf("info nodes %d nps %d\n", v.Nodes, v.NPS)
	case engine.RespBoard:
		fmt.Println(v.Text)
	}
}

// formatInfo renders a progress record as score, pv, nodes, depth,
// time, with nps appended only for the final record of a search.
func formatInfo(v engine.RespInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info score cp %d pv", v.Score)
	for _, m := range v.PV {
		sb.WriteByte(' ')
		sb.WriteString(m.UCI())
	}

	millis := v.Time.Milliseconds()
	if millis < 0 {
		millis = 0
	}
	fmt.Fprintf(&sb, " nodes %d depth %d time %d", v.Nodes, v.Depth, millis)
	if v.HasNPS {
		fmt.Fprintf(&sb, " nps %d", v.NPS)
	}
	return sb.String()
}
