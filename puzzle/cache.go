package puzzle

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Puzzleable produces a puzzle model on demand. Implementations are
// typically format parsers, so a call may be expensive.
type Puzzleable interface {
	Puzzle() (*Puzzle, error)
}

// Memo wraps a Puzzleable so the underlying conversion runs at most once.
// Concurrent callers share a single in-flight computation and its error.
// A failed computation is not cached; the next caller retries it.
//
// The cached puzzle is shared between callers and must not be mutated.
type Memo struct {
	source Puzzleable
	group  singleflight.Group

	mu     sync.Mutex
	cached *Puzzle
}

// NewMemo wraps source with a memoizing layer.
func NewMemo(source Puzzleable) *Memo {
	return &Memo{source: source}
}

// Puzzle implements Puzzleable.
func (m *Memo) Puzzle() (*Puzzle, error) {
	m.mu.Lock()
	cached := m.cached
	m.mu.Unlock()
	if cached != nil {
		return cached, nil
	}
	v, err, _ := m.group.Do("puzzle", func() (any, error) {
		p, err := m.source.Puzzle()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.cached = p
		m.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Puzzle), nil
}

var _ Puzzleable = (*Memo)(nil)
