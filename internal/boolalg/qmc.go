package boolalg

import "sort"

// Group is one popcount bucket of the QMC workspace. Implicants in
// group k only ever combine with group k+1.
type Group struct {
	Key        int
	Implicants []Implicant
}

// MergeDetail records the outcome of pairing group Key against group
// NextKey in one pass: the combined implicants produced and the members
// of group Key that combined with nothing over there.
type MergeDetail struct {
	Key      int
	NextKey  int
	Merged   []Implicant
	Unmerged []Implicant
}

type TraceKind int

const (
	TraceGrouping TraceKind = iota
	TraceMerge
)

func (k TraceKind) String() string {
	switch k {
	case TraceGrouping:
		return "grouping"
	case TraceMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// TraceStep is one entry of the minimization trace: the initial grouping
// or a single merge pass.
type TraceStep struct {
	Kind            TraceKind
	GroupsBefore    []Group
	GroupsAfter     []Group
	Merges          []MergeDetail
	UnmergedCarried []Implicant
}

// PrimeImplicants runs the Quine-McCluskey merge phase over the given
// minterms and returns every prime implicant of the function together
// with the per-pass trace. An empty minterm list yields (nil, nil).
//
// Passes iterate group keys in ascending order and implicants in
// ascending (value, mask) order inside every group, so the trace is
// reproducible. The prime set itself is canonical regardless.
func PrimeImplicants(minterms []uint64, n int) ([]Implicant, []TraceStep) {
	if len(minterms) == 0 {
		return nil, nil
	}

	seen := make(map[uint64]bool, len(minterms))
	initial := make([]Implicant, 0, len(minterms))
	for _, m := range minterms {
		if seen[m] {
			continue
		}
		seen[m] = true
		initial = append(initial, mintermImplicant(m, n))
	}

	current := groupByPopcount(initial)
	trace := []TraceStep{{Kind: TraceGrouping, GroupsAfter: cloneGroups(current)}}

	primeSeen := make(map[Implicant]bool)
	var primes []Implicant

	for {
		used := make(map[Implicant]bool)
		nextSeen := make(map[Implicant]bool)
		var next []Implicant
		var details []MergeDetail

		for gi := 0; gi < len(current); gi++ {
			g := current[gi]
			if gi+1 >= len(current) || current[gi+1].Key != g.Key+1 {
				continue
			}
			ng := current[gi+1]
			detail := MergeDetail{Key: g.Key, NextKey: ng.Key}
			mergedHere := make(map[Implicant]bool)
			for _, a := range g.Implicants {
				matched := false
				for _, b := range ng.Implicants {
					c, ok := combine(a, b)
					if !ok {
						continue
					}
					matched = true
					used[a] = true
					used[b] = true
					if !nextSeen[c] {
						nextSeen[c] = true
						next = append(next, c)
					}
					if !mergedHere[c] {
						mergedHere[c] = true
						detail.Merged = append(detail.Merged, c)
					}
				}
				if !matched {
					detail.Unmerged = append(detail.Unmerged, a)
				}
			}
			details = append(details, detail)
		}

		var carried []Implicant
		for _, g := range current {
			for _, a := range g.Implicants {
				if used[a] {
					continue
				}
				carried = append(carried, a)
				if !primeSeen[a] {
					primeSeen[a] = true
					primes = append(primes, a)
				}
			}
		}

		after := groupByPopcount(next)
		trace = append(trace, TraceStep{
			Kind:            TraceMerge,
			GroupsBefore:    cloneGroups(current),
			GroupsAfter:     cloneGroups(after),
			Merges:          details,
			UnmergedCarried: carried,
		})

		if len(next) == 0 {
			break
		}
		current = after
	}

	sort.Slice(primes, func(i, j int) bool { return lessImplicant(primes[i], primes[j]) })
	return primes, trace
}

func groupByPopcount(imps []Implicant) []Group {
	buckets := make(map[int][]Implicant)
	for _, im := range imps {
		k := im.popcount()
		buckets[k] = append(buckets[k], im)
	}
	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		g := buckets[k]
		sort.Slice(g, func(i, j int) bool { return lessImplicant(g[i], g[j]) })
		groups = append(groups, Group{Key: k, Implicants: g})
	}
	return groups
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		imps := make([]Implicant, len(g.Implicants))
		copy(imps, g.Implicants)
		out[i] = Group{Key: g.Key, Implicants: imps}
	}
	return out
}
