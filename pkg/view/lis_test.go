package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lisMembers(sources []int) []int {
	member := longestIncreasingSubsequence(sources)
	var out []int
	for i := range sources {
		if member[i] {
			out = append(out, i)
		}
	}
	return out
}

func TestLISAlreadySorted(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, lisMembers([]int{0, 1, 2, 3}))
}

func TestLISReversed(t *testing.T) {
	// Only one element can stay put.
	assert.Len(t, lisMembers([]int{3, 2, 1, 0}), 1)
}

func TestLISSingleSwap(t *testing.T) {
	// Old ranks 0,2,1,3: three positions keep relative order, one moves.
	assert.Equal(t, []int{0, 2, 3}, lisMembers([]int{0, 2, 1, 3}))
}

func TestLISSkipsNegativeSentinels(t *testing.T) {
	// Fresh items never participate in the stable run.
	assert.Equal(t, []int{1, 3}, lisMembers([]int{-1, 0, -1, 1}))
}

func TestLISStrictlyIncreasing(t *testing.T) {
	// Equal values replace rather than extend: duplicates cannot all stay.
	assert.Len(t, lisMembers([]int{1, 1, 1}), 1)
}

func TestLISEmpty(t *testing.T) {
	assert.Empty(t, lisMembers(nil))
	assert.Empty(t, lisMembers([]int{-1, -1}))
}

func TestLISInterleaved(t *testing.T) {
	// 0,4,1,5,2,6,3: longest increasing run is 0,1,2,3.
	got := lisMembers([]int{0, 4, 1, 5, 2, 6, 3})
	assert.Equal(t, []int{0, 2, 4, 6}, got)
}
