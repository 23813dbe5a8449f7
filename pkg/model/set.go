package model

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Set is a grow-only collection of unique values. Values are always
// reported and serialized in sorted order, so model files do not depend
// on the order in which evidence arrived.
type Set[T cmp.Ordered] struct {
	items map[T]struct{}
}

// NewSet creates a Set that contains given values.
func NewSet[T cmp.Ordered](vals ...T) Set[T] {
	var res Set[T]
	res.Add(vals...)
	return res
}

// Add inserts values into the set. Values that are already present
// are ignored.
func (s *Set[T]) Add(vals ...T) {
	if s.items == nil {
		s.items = make(map[T]struct{}, len(vals))
	}
	for _, v := range vals {
		s.items[v] = struct{}{}
	}
}

// Has returns true if the value is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Values returns sorted values of the set. The result is never nil.
func (s Set[T]) Values() []T {
	res := make([]T, 0, len(s.items))
	for k := range s.items {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// MarshalJSON renders the set as a sorted JSON array.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON reads a JSON array into the set. Values are added to
// already existing ones. JSON null is treated as an empty array.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	s.Add(vals...)
	return nil
}
