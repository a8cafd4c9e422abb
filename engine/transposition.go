package engine

import "github.com/blackwood-chess/blackwood/board"

// Bound classifies how a cached score relates to the search window
// that produced it.
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// CacheEntry is one transposition table slot.
type CacheEntry struct {
	Hash     uint64
	BestMove board.Move
	Value    int
	Depth    int
	Bound    Bound
	valid    bool
}

// DefaultCacheBytes is the table capacity a search allocates when the
// caller has no opinion.
const DefaultCacheBytes = 256 << 20

// approxEntrySize is used only to size the table; it does not need to
// be exact, just in the right ballpark.
const approxEntrySize = 48

// TranspositionTable is a flat, direct-mapped cache keyed by hash
// modulo table size. There is no aging and no bucket chaining: a
// colliding store simply overwrites the slot, matching the single
// searcher design this engine assumes.
type TranspositionTable struct {
	slots []CacheEntry
}

// NewTranspositionTable allocates a table sized for capacityBytes.
func NewTranspositionTable(capacityBytes int) *TranspositionTable {
	n := capacityBytes / approxEntrySize
	if n < 1 {
		n = 1
	}
	return &TranspositionTable{slots: make([]CacheEntry, n)}
}

func (t *TranspositionTable) index(hash uint64) uint64 {
	return hash % uint64(len(t.slots))
}

// Get returns the entry stored for hash, if the slot's recorded hash
// still matches (a mismatch means a different position overwrote it).
func (t *TranspositionTable) Get(hash uint64) (CacheEntry, bool) {
	e := t.slots[t.index(hash)]
	if !e.valid || e.Hash != hash {
		return CacheEntry{}, false
	}
	return e, true
}

// Put unconditionally overwrites the slot at hash mod N.
func (t *TranspositionTable) Put(hash uint64, entry CacheEntry) {
	entry.Hash = hash
	entry.valid = true
	t.slots[t.index(hash)] = entry
}

// Clear resets every slot to empty.
func (t *TranspositionTable) Clear() {
	for i := range t.slots {
		t.slots[i] = CacheEntry{}
	}
}

// Len returns the slot count.
func (t *TranspositionTable) Len() int {
	return len(t.slots)
}
