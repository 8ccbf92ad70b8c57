// Package bloom provides duplicate detection for declaration text using
// Bloom filters.
package bloom

import (
	"slices"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Set records declaration texts and reports repeats exactly.
// The Bloom filter is a fast path: a negative answer skips hashing and the
// exact lookup. Every answer is decided by the exact set of content hashes
// and the texts that share them, so false positives never drop a text.
type Set struct {
	f     *bloom.BloomFilter
	exact map[uint64][]string
}

// NewSet creates a Set sized for n expected texts with the given false
// positive rate for the filter stage.
func NewSet(n uint, fpRate float64) *Set {
	if n == 0 {
		n = 1
	}
	return &Set{
		f:     bloom.NewWithEstimates(n, fpRate),
		exact: make(map[uint64][]string),
	}
}

// Insert adds text to the set. It returns false if text was already present.
func (s *Set) Insert(text string) bool {
	if s.Contains(text) {
		return false
	}
	h := xxhash.Sum64String(text)
	s.f.AddString(text)
	s.exact[h] = append(s.exact[h], text)
	return true
}

// Contains reports whether text has been inserted.
func (s *Set) Contains(text string) bool {
	if !s.f.TestString(text) {
		return false
	}
	return slices.Contains(s.exact[xxhash.Sum64String(text)], text)
}

// Len returns the number of distinct texts in the set.
func (s *Set) Len() int {
	n := 0
	for _, texts := range s.exact {
		n += len(texts)
	}
	return n
}

// EstimatedCount returns the filter's approximation of the number of texts.
func (s *Set) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
