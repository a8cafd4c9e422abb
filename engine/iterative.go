package engine

import (
	"time"

	"github.com/blackwood-chess/blackwood/board"
)

// SearchInfo is the accumulated result of an iterative deepening run,
// updated after every completed depth.
type SearchInfo struct {
	Score   int
	PV      []board.Move
	Nodes   uint64
	Depth   int
	Elapsed time.Duration
	NPS     uint64
}

// Progress is emitted once per completed depth and once more, with NPS
// set, when the run stops.
type Progress struct {
	Info  SearchInfo
	Final bool
}

// IterativeDeepen runs Search at increasing depths starting from 1
// until maxDepth is exceeded (if set) or cancellation discards a
// partial iteration. It allocates its own transposition table, owned
// for the lifetime of this one call, and reports progress through the
// onProgress callback, which is invoked synchronously from this
// goroutine.
func IterativeDeepen(pos board.Position, maxDepth int, hasMaxDepth bool, cancel CancelSignal, cacheBytes int, onProgress func(Progress)) SearchInfo {
	tt := NewTranspositionTable(cacheBytes)
	start := time.Now()

	var info SearchInfo

	for depth := 1; ; depth++ {
		if hasMaxDepth && depth > maxDepth {
			break
		}

		score, pv, nodes, cancelled := Search(pos, -Mate, Mate, depth, 0, cancel, tt)
		if cancelled {
			break
		}

		info.Score = score
		info.PV = pv
		info.Nodes += nodes
		info.Depth = depth
		info.Elapsed = time.Since(start)

		if onProgress != nil {
			onProgress(Progress{Info: info})
		}

		if cancel.Cancelled() {
			break
		}
	}

	info.Elapsed = time.Since(start)
	if seconds := info.Elapsed.Seconds(); seconds > 0 {
		info.NPS = uint64(float64(info.Nodes) / seconds)
	}
	if onProgress != nil {
		onProgress(Progress{Info: info, Final: true})
	}
	return info
}
