package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/blackwood-chess/blackwood/engine"
)

// parsed is the result of interpreting one line of input: either a
// Command bound for the broker, a diagnostic line printed directly
// without ever reaching the broker (unknown or unimplemented
// messages), or a request to stop reading entirely.
type parsed struct {
	cmd    engine.Command
	hasCmd bool
	direct string
	quit   bool
}

// parseLine turns one line of UCI input into a parsed result. Blank
// lines produce a zero value that the caller simply skips.
func parseLine(line string) parsed {
	line = strings.TrimSpace(line)
	if line == "" {
		return parsed{}
	}
	fields := strings.Fields(line)

	switch fields[0] {
	case "uci":
		return parsed{cmd: engine.CmdUCI{}, hasCmd: true}
	case "isready":
		return parsed{cmd: engine.CmdIsReady{}, hasCmd: true}
	case "quit":
		return parsed{quit: true}
	case "position":
		return parsePosition(fields[1:])
	case "go":
		return parsed{cmd: parseGo(fields[1:]), hasCmd: true}
	case "stop":
		return parsed{cmd: engine.CmdStopSearch{}, hasCmd: true}
	case "perft":
		return parsed{cmd: parsePerft(fields[1:]), hasCmd: true}
	case "eval":
		return parsed{cmd: engine.CmdEvalCurrentPosition{}, hasCmd: true}
	case "show":
		return parsed{cmd: engine.CmdShowBoard{}, hasCmd: true}
	case "ucinewgame", "ponderhit", "setoption", "debug", "register":
		return parsed{direct: "Message not yet implemented - " + line}
	default:
		return parsed{direct: "Unknown message - " + line}
	}
}

func parsePosition(args []string) parsed {
	if len(args) == 0 {
		return parsed{direct: "Unknown message - position"}
	}

	var cmd engine.CmdSetPosition
	i := 0
	switch args[0] {
	case "startpos":
		cmd.Startpos = true
		i = 1
	case "fen":
		j := 1
		for j < len(args) && args[j] != "moves" {
			j++
		}
		cmd.HasFEN = true
		cmd.FEN = strings.Join(args[1:j], " ")
		i = j
	default:
		return parsed{direct: "Unknown message - position " + strings.Join(args, " ")}
	}

	if i < len(args) && args[i] == "moves" {
		cmd.Moves = append([]string{}, args[i+1:]...)
	}
	return parsed{cmd: cmd, hasCmd: true}
}

const defaultPerftDepth = 5

func parsePerft(args []string) engine.CmdPerft {
	depth := defaultPerftDepth
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	return engine.CmdPerft{Depth: depth}
}

func parseGo(args []string) engine.CmdSearch {
	var cmd engine.CmdSearch
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			cmd.TimeControl.WTime = millisArg(args, i)
			cmd.TimeControl.HasTimeLeft = true
		case "btime":
			i++
			cmd.TimeControl.BTime = millisArg(args, i)
			cmd.TimeControl.HasTimeLeft = true
		case "winc":
			i++
			cmd.TimeControl.WInc = millisArg(args, i)
		case "binc":
			i++
			cmd.TimeControl.BInc = millisArg(args, i)
		case "movetime":
			i++
			cmd.TimeControl.MoveTime = millisArg(args, i)
			cmd.TimeControl.HasMoveTime = true
		case "depth":
			i++
			if d, err := strconv.Atoi(argAt(args, i)); err == nil {
				cmd.Depth = d
				cmd.HasDepth = true
			}
		case "infinite":
			cmd.TimeControl.Infinite = true
		case "ponder", "searchmoves", "nodes", "mate", "movestogo":
			// Recognized syntax the time broker and search driver do
			// not model: this engine does not ponder, and node and
			// mate limits are not part of its stopping rule.
		}
	}
	return cmd
}

func argAt(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

func millisArg(args []string, i int) time.Duration {
	ms, err := strconv.Atoi(argAt(args, i))
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
