package ir

import (
	"fmt"
	"iter"
)

const (
	// RootID is reserved for the virtual root.
	RootID = 0
	// MaxID is the largest id a 4 digit field can carry.
	MaxID = 9999
)

// Record is a declared menu item. Line is the 1-based source line of the
// declaration, 0 if unknown.
type Record struct {
	ID    int
	Label string
	Line  int
}

// Registry is the insertion ordered store of declared records.
type Registry struct {
	recs []Record
	byID map[int]int
}

func NewRegistry() *Registry {
	return &Registry{byID: map[int]int{}}
}

// Add appends rec and returns its index. A duplicate id is stored, but
// Lookup keeps returning the first record declared with it.
func (r *Registry) Add(rec Record) (int, error) {
	if rec.ID <= RootID || rec.ID > MaxID {
		return -1, fmt.Errorf("%w: %d", ErrRange, rec.ID)
	}
	i := len(r.recs)
	r.recs = append(r.recs, rec)
	if _, ok := r.byID[rec.ID]; !ok {
		r.byID[rec.ID] = i
	}
	return i, nil
}

// Lookup returns the index of the first record declared with id.
func (r *Registry) Lookup(id int) (int, bool) {
	i, ok := r.byID[id]
	return i, ok
}

func (r *Registry) At(i int) Record {
	return r.recs[i]
}

func (r *Registry) Len() int {
	return len(r.recs)
}

// All iterates over records in declaration order.
func (r *Registry) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i := range r.recs {
			if !yield(i, r.recs[i]) {
				return
			}
		}
	}
}

// release drops every record and returns how many there were.
func (r *Registry) release() int {
	n := len(r.recs)
	for i := range r.recs {
		r.recs[i] = Record{}
	}
	r.recs = nil
	r.byID = nil
	return n
}
