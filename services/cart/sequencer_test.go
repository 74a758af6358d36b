package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequencerOrdersEditsByIssuance(t *testing.T) {
	seq := newLineSequencer()

	first := seq.next("line-1")
	second := seq.next("line-1")
	require.Greater(t, second, first)

	// The older edit's persistence result must be discarded once a newer
	// edit has been issued, regardless of which write finished first.
	require.False(t, seq.isCurrent("line-1", first))
	require.True(t, seq.isCurrent("line-1", second))
}

func TestSequencerTracksLinesIndependently(t *testing.T) {
	seq := newLineSequencer()

	a := seq.next("line-a")
	b := seq.next("line-b")
	require.True(t, seq.isCurrent("line-a", a))
	require.True(t, seq.isCurrent("line-b", b))

	seq.next("line-a")
	require.False(t, seq.isCurrent("line-a", a))
	require.True(t, seq.isCurrent("line-b", b))
}

func TestSequencerForget(t *testing.T) {
	seq := newLineSequencer()
	n := seq.next("line-1")
	seq.forget("line-1")

	// After removal the line starts over; stale tokens stay stale.
	require.False(t, seq.isCurrent("line-1", n))
}

func TestSequencerConcurrentIssuance(t *testing.T) {
	seq := newLineSequencer()
	const n = 200

	tokens := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = seq.next("line-1")
		}(i)
	}
	wg.Wait()

	// Every issuance is distinct and exactly one token is still current.
	seen := make(map[int64]bool, n)
	current := 0
	for _, tok := range tokens {
		require.False(t, seen[tok])
		seen[tok] = true
		if seq.isCurrent("line-1", tok) {
			current++
		}
	}
	require.Equal(t, 1, current)
}
