package boolalg

import (
	"encoding/binary"
	"math/bits"
	"sort"
)

// CoverageTable maps each minterm to the prime implicants that cover it.
// Rows hold indices into Primes. A row may be empty for arbitrary prime
// sets; after QMC the primes are a complete cover and every row is
// non-empty.
type CoverageTable struct {
	N        int
	Primes   []Implicant
	Minterms []uint64
	Rows     map[uint64][]int
}

// NewCoverageTable builds the coverage table of primes over the given
// minterms. Minterms are deduplicated and kept in ascending order.
func NewCoverageTable(primes []Implicant, minterms []uint64, n int) *CoverageTable {
	seen := make(map[uint64]bool, len(minterms))
	ms := make([]uint64, 0, len(minterms))
	for _, m := range minterms {
		if seen[m] {
			continue
		}
		seen[m] = true
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })

	rows := make(map[uint64][]int, len(ms))
	for _, m := range ms {
		var cover []int
		for pi, p := range primes {
			if p.Covers(m) {
				cover = append(cover, pi)
			}
		}
		rows[m] = cover
	}
	return &CoverageTable{N: n, Primes: primes, Minterms: ms, Rows: rows}
}

// Covering returns the implicants covering minterm m.
func (t *CoverageTable) Covering(m uint64) []Implicant {
	idxs := t.Rows[m]
	out := make([]Implicant, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, t.Primes[i])
	}
	return out
}

// Petrick expands the coverage table, read as a product of sums (one
// factor per minterm), into the list of all minimal covers. Each cover
// is a set of prime implicants given as ascending indices into
// t.Primes. Supersets are pruned after every fold step to keep the
// intermediate state from exploding. Returns nil when the table is
// empty or some minterm has no covering prime.
func Petrick(t *CoverageTable) [][]int {
	if len(t.Minterms) == 0 {
		return nil
	}
	words := (len(t.Primes) + 63) / 64

	first := t.Rows[t.Minterms[0]]
	if len(first) == 0 {
		return nil
	}
	products := make([]primeSet, 0, len(first))
	for _, idx := range first {
		products = append(products, newPrimeSet(words).with(idx))
	}

	for _, m := range t.Minterms[1:] {
		factor := t.Rows[m]
		if len(factor) == 0 {
			return nil
		}
		next := make(map[string]primeSet, len(products)*len(factor))
		for _, p := range products {
			for _, idx := range factor {
				u := p.with(idx)
				next[u.key()] = u
			}
		}
		products = pruneSupersets(setValues(next))
	}

	out := make([][]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.indices())
	}
	return out
}

// primeSet is a bitset over prime-implicant indices; one Petrick partial
// product.
type primeSet struct {
	words []uint64
}

func newPrimeSet(words int) primeSet {
	return primeSet{words: make([]uint64, words)}
}

func (s primeSet) with(i int) primeSet {
	out := primeSet{words: make([]uint64, len(s.words))}
	copy(out.words, s.words)
	out.words[i/64] |= uint64(1) << (i % 64)
	return out
}

func (s primeSet) count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// subsetOf reports s ⊆ o.
func (s primeSet) subsetOf(o primeSet) bool {
	for i, w := range s.words {
		if w&^o.words[i] != 0 {
			return false
		}
	}
	return true
}

func (s primeSet) equal(o primeSet) bool {
	for i, w := range s.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

func (s primeSet) key() string {
	b := make([]byte, 8*len(s.words))
	for i, w := range s.words {
		binary.LittleEndian.PutUint64(b[8*i:], w)
	}
	return string(b)
}

func (s primeSet) indices() []int {
	var out []int
	for wi, w := range s.words {
		for w != 0 {
			b := w & -w
			out = append(out, wi*64+bits.TrailingZeros64(w))
			w &^= b
		}
	}
	return out
}

// pruneSupersets drops every partial product strictly containing
// another, returning the survivors ordered by (size, index list).
func pruneSupersets(products []primeSet) []primeSet {
	sort.Slice(products, func(i, j int) bool {
		ci, cj := products[i].count(), products[j].count()
		if ci != cj {
			return ci < cj
		}
		return lessIndexList(products[i].indices(), products[j].indices())
	})
	kept := products[:0]
	for _, p := range products {
		dominated := false
		for _, q := range kept {
			if q.subsetOf(p) && !q.equal(p) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, p)
		}
	}
	out := make([]primeSet, len(kept))
	copy(out, kept)
	return out
}

func setValues(m map[string]primeSet) []primeSet {
	out := make([]primeSet, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
