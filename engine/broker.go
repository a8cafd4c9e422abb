package engine

import (
	"fmt"
	"sync"

	"github.com/blackwood-chess/blackwood/board"
)

// EngineBroker is the single actor that owns the current position for
// the life of the process. It drains commands off an inbound queue in
// order and runs every handler but Search to completion before the
// next command is dequeued; only a search gets its own goroutine.
type EngineBroker struct {
	position board.Position
	timer    *TimeBroker

	inbound  <-chan Command
	outbound chan<- Response

	searchWG sync.WaitGroup
}

// NewEngineBroker wires a broker to an already-connected pair of
// queues. The caller owns the inbound queue's lifetime: closing it
// stops Run.
func NewEngineBroker(inbound <-chan Command, outbound chan<- Response) *EngineBroker {
	return &EngineBroker{
		position: board.StartingPosition(),
		inbound:  inbound,
		outbound: outbound,
	}
}

// Run drains inbound until it is closed, dispatching each command in
// the order it arrived.
func (b *EngineBroker) Run() {
	for cmd := range b.inbound {
		b.handle(cmd)
	}
}

// Wait blocks until any search spawned by a prior Search command has
// posted its final response. The frontend calls this after Run
// returns and before it closes the outbound queue, so a
// still-draining search never sends on a closed channel.
func (b *EngineBroker) Wait() {
	b.searchWG.Wait()
}

func (b *EngineBroker) handle(cmd Command) {
	switch c := cmd.(type) {
	case CmdUCI:
		b.outbound <- RespID{Name: "Blackwood 1.0", Author: "The Blackwood Authors"}
		b.outbound <- RespUCIOk{}
	case CmdIsReady:
		b.outbound <- RespReadyOk{}
	case CmdSetPosition:
		b.handleSetPosition(c)
	case CmdPerft:
		nodes, nps := PerftWithNPS(b.position, c.Depth)
		b.outbound <- RespPerft{Nodes: nodes, NPS: nps}
	case CmdSearch:
		b.handleSearch(c)
	case CmdStopSearch:
		if b.timer != nil {
			b.timer.SendStop()
		}
	case CmdEvalCurrentPosition:
		b.outbound <- RespInfoString{Text: fmt.Sprintf("eval %d", Evaluate(&b.position))}
	case CmdShowBoard:
		b.outbound <- RespBoard{Text: b.position.PrettyString()}
	}
}

func (b *EngineBroker) handleSetPosition(c CmdSetPosition) {
	pos := b.position

	switch {
	case c.Startpos:
		pos = board.StartingPosition()
	case c.HasFEN:
		parsed, err := board.FromFEN(c.FEN)
		if err != nil {
			b.outbound <- RespInfoString{Text: "bad FEN: " + err.Error()}
			return
		}
		pos = parsed
	}

	for _, mv := range c.Moves {
		m, ok := pos.MoveFromUCI(mv)
		if !ok {
			b.outbound <- RespInfoString{Text: "illegal move in position command: " + mv}
			break
		}
		pos = pos.MakeMove(m)
	}

	b.position = pos
}

// handleSearch seeds a fresh time broker for this search, then spawns
// the iterative-deepening worker. It is the only handler that does
// not run to completion synchronously: it returns as soon as the
// worker is launched, so stop commands can still be dispatched.
func (b *EngineBroker) handleSearch(c CmdSearch) {
	b.timer = NewTimeBroker()
	cancel := b.timer.GetCancelReceiver()
	if d, hasDeadline := SeedTimeControl(b.position.SideToMove, c.TimeControl); hasDeadline {
		cancel = b.timer.StartTimer(d)
	}

	pos := b.position
	maxDepth, hasMaxDepth := c.Depth, c.HasDepth

	b.searchWG.Add(1)
	go func() {
		defer b.searchWG.Done()

		info := IterativeDeepen(pos, maxDepth, hasMaxDepth, cancel, DefaultCacheBytes, func(p Progress) {
			resp := RespInfo{
				Score: p.Info.Score,
				PV:    p.Info.PV,
				Nodes: p.Info.Nodes,
				Depth: p.Info.Depth,
				Time:  p.Info.Elapsed,
			}
			if p.Final {
				resp.NPS = p.Info.NPS
				resp.HasNPS = true
			}
			b.outbound <- resp
		})

		var best RespBestMove
		if len(info.PV) > 0 {
			best.Move = info.PV[0]
			best.HasMove = true
		}
		b.outbound <- best
	}()
}
