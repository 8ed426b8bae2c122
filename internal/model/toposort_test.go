package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopoSort_Deterministic(t *testing.T) {
	// 0 depends on 2, 1 has no deps, 2 has no deps.
	deps := map[int][]int{0: {2}}

	order, rest := topoSort(3, func(i int) []int { return deps[i] })
	assert.Equal(t, []int{1, 2, 0}, order)
	assert.Empty(t, rest)
}

func TestTopoSort_ChildBeforeLaterRoot(t *testing.T) {
	// 0 extends 1; 2 and 3 are roots.
	deps := map[int][]int{0: {1}}

	order, rest := topoSort(4, func(i int) []int { return deps[i] })
	assert.Equal(t, []int{1, 0, 2, 3}, order)
	assert.Empty(t, rest)
}

func TestTopoSort_Cycle(t *testing.T) {
	// 0 <-> 1, 2 behind the cycle, 3 free.
	deps := map[int][]int{0: {1}, 1: {0}, 2: {0}}

	order, rest := topoSort(4, func(i int) []int { return deps[i] })
	assert.Equal(t, []int{3}, order)
	assert.Equal(t, []int{0, 1, 2}, rest)
}

func TestTopoSort_Empty(t *testing.T) {
	order, rest := topoSort(0, nil)
	assert.Nil(t, order)
	assert.Nil(t, rest)
}
