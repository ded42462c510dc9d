package boolalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Primes 1-0, 0-1 and --1 over three variables: minterm 2 is covered by
// nothing, minterm 3 by the latter two.
func TestCoverageTable(t *testing.T) {
	primes := []Implicant{
		{Value: 4, Mask: 5}, // 1-0
		{Value: 1, Mask: 5}, // 0-1
		{Value: 1, Mask: 1}, // --1
	}
	table := NewCoverageTable(primes, []uint64{2, 3}, 3)

	assert.Equal(t, []uint64{2, 3}, table.Minterms)
	assert.Empty(t, table.Rows[2])
	assert.Equal(t, []int{1, 2}, table.Rows[3])
	assert.Equal(t, []Implicant{{Value: 1, Mask: 5}, {Value: 1, Mask: 1}}, table.Covering(3))
}

func TestCoverageTableDeduplicatesMinterms(t *testing.T) {
	primes := []Implicant{{Value: 0, Mask: 0}}
	table := NewCoverageTable(primes, []uint64{3, 1, 3}, 2)
	assert.Equal(t, []uint64{1, 3}, table.Minterms)
}

func TestPetrickEmptyTable(t *testing.T) {
	table := NewCoverageTable(nil, nil, 2)
	assert.Nil(t, Petrick(table))
}

func TestPetrickUncoverableMinterm(t *testing.T) {
	primes := []Implicant{{Value: 1, Mask: 1}} // --1
	table := NewCoverageTable(primes, []uint64{2}, 3)
	assert.Nil(t, Petrick(table))
}

// One covering prime per minterm: exactly one cover, their union.
func TestPetrickSingletonRows(t *testing.T) {
	primes := []Implicant{
		{Value: 0, Mask: 2}, // 0-
		{Value: 3, Mask: 3}, // 11
	}
	table := NewCoverageTable(primes, []uint64{0, 3}, 2)
	covers := Petrick(table)
	assert.Equal(t, [][]int{{0, 1}}, covers)
}

// Factors {p0,p1} and {p1,p2}: picking p1 alone dominates every
// two-element product that includes it.
func TestPetrickPrunesSupersets(t *testing.T) {
	primes := []Implicant{
		{Value: 0, Mask: 3}, // 00 covers 0
		{Value: 0, Mask: 2}, // 0- covers 0,1
		{Value: 1, Mask: 3}, // 01 covers 1
	}
	table := NewCoverageTable(primes, []uint64{0, 1}, 2)
	covers := Petrick(table)
	require.Len(t, covers, 2)
	assert.Equal(t, [][]int{{1}, {0, 2}}, covers)
}

// No cover may contain another cover; dropping any single implicant
// must break coverage.
func TestPetrickMinimality(t *testing.T) {
	minterms := []uint64{4, 8, 9, 10, 11, 12, 14, 15}
	primes, _ := PrimeImplicants(minterms, 4)
	table := NewCoverageTable(primes, minterms, 4)
	covers := Petrick(table)
	require.NotEmpty(t, covers)

	for _, cover := range covers {
		for drop := range cover {
			reduced := make([]int, 0, len(cover)-1)
			reduced = append(reduced, cover[:drop]...)
			reduced = append(reduced, cover[drop+1:]...)
			assert.False(t, coversAll(primes, reduced, minterms),
				"cover %v is not minimal", cover)
		}
	}

	for i, a := range covers {
		for j, b := range covers {
			if i == j {
				continue
			}
			assert.False(t, indexSubset(a, b), "cover %v contains cover %v", b, a)
		}
	}
}

func coversAll(primes []Implicant, idxs []int, minterms []uint64) bool {
	for _, m := range minterms {
		covered := false
		for _, i := range idxs {
			if primes[i].Covers(m) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func indexSubset(a, b []int) bool {
	set := make(map[int]bool, len(b))
	for _, i := range b {
		set[i] = true
	}
	for _, i := range a {
		if !set[i] {
			return false
		}
	}
	return true
}
