package puzzle_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoore914/kotwords-minimal/puzzle"
)

type countingSource struct {
	calls atomic.Int32
	err   error
}

func (s *countingSource) Puzzle() (*puzzle.Puzzle, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &puzzle.Puzzle{Grid: [][]puzzle.Cell{{{Solution: "A"}}}}, nil
}

func TestMemoComputesOnce(t *testing.T) {
	source := &countingSource{}
	memo := puzzle.NewMemo(source)

	var wg sync.WaitGroup
	results := make([]*puzzle.Puzzle, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := memo.Puzzle()
			require.NoError(t, err)
			results[i] = p
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load(), "conversion ran more than once")
	for _, p := range results[1:] {
		assert.Same(t, results[0], p, "callers received different puzzle instances")
	}
}

func TestMemoDoesNotCacheFailure(t *testing.T) {
	source := &countingSource{err: errors.New("corrupt input")}
	memo := puzzle.NewMemo(source)

	_, err := memo.Puzzle()
	require.Error(t, err)

	source.err = nil
	p, err := memo.Puzzle()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int32(2), source.calls.Load())

	// The retry's success is cached like any other.
	again, err := memo.Puzzle()
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Equal(t, int32(2), source.calls.Load())
}
