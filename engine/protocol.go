package engine

import (
	"time"

	"github.com/blackwood-chess/blackwood/board"
)

// Command is one message the frontend pushes onto the engine broker's
// inbound queue.
type Command interface {
	isCommand()
}

// CmdUCI requests the `id`/`uciok` handshake.
type CmdUCI struct{}

// CmdIsReady requests a readyok acknowledgement.
type CmdIsReady struct{}

// CmdSetPosition replaces the broker's current position.
type CmdSetPosition struct {
	Startpos bool
	FEN      string
	HasFEN   bool
	Moves    []string // UCI long algebraic, applied in order
}

// CmdPerft runs a leaf-counting walk from the current position.
type CmdPerft struct {
	Depth int
}

// CmdSearch starts iterative deepening from the current position.
type CmdSearch struct {
	TimeControl GoParams
	Depth       int
	HasDepth    bool
}

// CmdStopSearch signals cancellation to any running search.
type CmdStopSearch struct{}

// CmdEvalCurrentPosition reports the static evaluation of the current
// position.
type CmdEvalCurrentPosition struct{}

// CmdShowBoard reports the current position's textual form.
type CmdShowBoard struct{}

func (CmdUCI) isCommand()                 {}
func (CmdIsReady) isCommand()             {}
func (CmdSetPosition) isCommand()         {}
func (CmdPerft) isCommand()               {}
func (CmdSearch) isCommand()              {}
func (CmdStopSearch) isCommand()          {}
func (CmdEvalCurrentPosition) isCommand() {}
func (CmdShowBoard) isCommand()           {}

// Response is one message the engine broker pushes onto its outbound
// queue for the frontend printer to drain.
type Response interface {
	isResponse()
}

// RespID carries the engine identification lines.
type RespID struct {
	Name, Author string
}

// RespUCIOk terminates the `uci` handshake.
type RespUCIOk struct{}

// RespReadyOk answers isready.
type RespReadyOk struct{}

// RespInfo is one search progress record.
type RespInfo struct {
	Score  int
	PV     []board.Move
	Nodes  uint64
	Depth  int
	Time   time.Duration
	NPS    uint64
	HasNPS bool
}

// RespBestMove ends a search.
type RespBestMove struct {
	Move    board.Move
	HasMove bool
}

// RespInfoString carries a free-text diagnostic.
type RespInfoString struct {
	Text string
}

// RespPerft carries a perft result.
type RespPerft struct {
	Nodes uint64
	NPS   uint64
}

// RespBoard carries the textual form of a position.
type RespBoard struct {
	Text string
}

func (RespID) isResponse()         {}
func (RespUCIOk) isResponse()      {}
func (RespReadyOk) isResponse()    {}
func (RespInfo) isResponse()       {}
func (RespBestMove) isResponse()   {}
func (RespInfoString) isResponse() {}
func (RespPerft) isResponse()      {}
func (RespBoard) isResponse()      {}
