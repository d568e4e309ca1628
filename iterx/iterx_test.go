package iterx_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-ext-utils/iterx"
)

func captureLogger(lines *[]string, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*lines = append(*lines, args)
	}, funcr.Options{Verbosity: verbosity})
}

func TestLog(t *testing.T) {
	var lines []string
	seq := iterx.Log(slices.Values([]string{"foo", "bar"}), captureLogger(&lines, 0), "whee")

	assert.Equal(t, []string{"foo", "bar"}, iterx.Collect(seq))
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], `"msg"="whee"`)
		assert.Contains(t, lines[0], `"items"=["foo" "bar"]`)
		assert.Contains(t, lines[0], `"count"=2`)
	}

	// the returned sequence can be replayed
	assert.Equal(t, []string{"foo", "bar"}, iterx.Collect(seq))
}

func TestLogHonoursVerbosity(t *testing.T) {
	var lines []string
	logger := captureLogger(&lines, 0)

	seq := iterx.Log(slices.Values([]int{1, 2}), logger.V(1), "hidden")
	assert.Empty(t, lines)
	assert.Equal(t, []int{1, 2}, iterx.Collect(seq))

	logger = captureLogger(&lines, 1)
	seq = iterx.Log(slices.Values([]int{1, 2}), logger.V(1), "shown")
	assert.Equal(t, []int{1, 2}, iterx.Collect(seq))
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], `"msg"="shown"`)
		assert.Contains(t, lines[0], `"items"=[1 2]`)
	}
}

func TestLogDrainsEagerly(t *testing.T) {
	calls := 0
	src := func(yield func(int) bool) {
		for i := range 3 {
			calls++
			if !yield(i) {
				return
			}
		}
	}
	seq := iterx.Log(src, logr.Discard(), "eager")
	assert.Equal(t, 3, calls)

	for v := range seq {
		if v == 0 {
			break
		}
	}
	assert.Equal(t, 3, calls)
}

func TestMapFilter(t *testing.T) {
	words := slices.Values([]string{"a", "bb", "ccc"})
	got := iterx.Collect(iterx.Map(iterx.Filter(words, func(s string) bool { return len(s) > 1 }), strings.ToUpper))
	assert.Equal(t, []string{"BB", "CCC"}, got)
}

func TestMapStopsEarly(t *testing.T) {
	seen := 0
	seq := iterx.Map(slices.Values([]int{1, 2, 3}), func(n int) int { seen++; return n })
	for range seq {
		break
	}
	assert.Equal(t, 1, seen)
}
