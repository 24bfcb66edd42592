package ir

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/kamilababayeva/crab/utils"
)

// VarSet is an immutable set of typed variables. It is the live domain
// of blocks: joins only ever grow the set.
type VarSet struct {
	*immutable.Map[Variable, struct{}]
}

// MakeVarSet creates a set from the given variables.
func MakeVarSet(vs ...Variable) VarSet {
	mp := utils.NewImmMap[Variable, struct{}]()
	for _, v := range vs {
		mp = mp.Set(v, struct{}{})
	}

	return VarSet{mp}
}

// Size returns the number of variables in the set.
func (s VarSet) Size() int {
	return s.Map.Len()
}

// Add v to s:
//
//	s ∪ {v}
func (s VarSet) Add(v Variable) VarSet {
	return VarSet{s.Map.Set(v, struct{}{})}
}

// Contains checks whether the set contains v:
//
//	v ∈ s
func (s VarSet) Contains(v Variable) bool {
	_, ok := s.Get(v)
	return ok
}

// Join computes the union of two variable sets:
//
//	s1 ∪ s2
func (s1 VarSet) Join(s2 VarSet) VarSet {
	if s1.Map == s2.Map {
		return s1
	} else if s2.Size() < s1.Size() {
		s1, s2 = s2, s1
	}

	for iter := s1.Iterator(); !iter.Done(); {
		v, _, _ := iter.Next()
		if !s2.Contains(v) {
			s2.Map = s2.Map.Set(v, struct{}{})
		}
	}

	return s2
}

// ForEach executes the given procedure for each variable in the set.
func (s VarSet) ForEach(do func(Variable)) {
	for iter := s.Iterator(); !iter.Done(); {
		v, _, _ := iter.Next()
		do(v)
	}
}

// Sorted returns the variables ordered by interning index; the order is
// deterministic for a fixed factory.
func (s VarSet) Sorted() []Variable {
	vs := make([]Variable, 0, s.Size())
	s.ForEach(func(v Variable) {
		vs = append(vs, v)
	})
	sort.Slice(vs, func(i, j int) bool {
		return vs[i].Name().Less(vs[j].Name())
	})
	return vs
}

func (s VarSet) String() string {
	strs := []string{}
	for _, v := range s.Sorted() {
		strs = append(strs, v.String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
