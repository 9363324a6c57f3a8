// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a fixed-length bit vector type
// useful for resource-slot management (e.g., texture-unit
// allocation).
package bitvec

import (
	"unsafe"
)

// Uint represents the granularity of a bit vector.
type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// V is a fixed-length bit vector with custom granularity.
// The zero value is an empty vector; use New to create one
// with a given number of bits.
type V[T Uint] struct {
	s   []T
	n   int
	rem int
}

// nbit returns the number of bits in T.
func (*V[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// New creates a bit vector containing n unset bits.
// It panics if n is negative.
func New[T Uint](n int) *V[T] {
	if n < 0 {
		panic("bitvec: negative length")
	}
	var v V[T]
	v.s = make([]T, (n+v.nbit()-1)/v.nbit())
	v.n = n
	v.rem = n
	return &v
}

// Len returns the number of bits in the vector.
func (v *V[_]) Len() int { return v.n }

// Rem returns the number of unset bits in the vector.
func (v *V[_]) Rem() int { return v.rem }

// Set sets a given bit.
// It panics if index is out of bounds.
func (v *V[T]) Set(index int) {
	v.check(index)
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	if v.s[i]&b == 0 {
		v.s[i] |= b
		v.rem--
	}
}

// Unset unsets a given bit.
// It panics if index is out of bounds.
func (v *V[T]) Unset(index int) {
	v.check(index)
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	if v.s[i]&b != 0 {
		v.s[i] &^= b
		v.rem++
	}
}

// IsSet checks whether a given bit is set.
// It panics if index is out of bounds.
func (v *V[T]) IsSet(index int) bool {
	v.check(index)
	n := v.nbit()
	return v.s[index/n]&(T(1)<<(index&(n-1))) != 0
}

// Search attempts to locate an unset bit in the vector.
// If ok is true, then index is a value suitable for use
// in a call to v.Set.
// This method will fail only when v.Rem() == 0.
func (v *V[T]) Search() (index int, ok bool) {
	if v.rem == 0 {
		return
	}
	for i, x := range v.s {
		if x == ^T(0) {
			continue
		}
		var b int
		for ; x&(1<<b) != 0; b++ {
		}
		index = i*v.nbit() + b
		ok = index < v.n
		break
	}
	return
}

// Clear unsets every bit in the vector.
func (v *V[T]) Clear() {
	if v.rem == v.n {
		return
	}
	clear(v.s)
	v.rem = v.n
}

func (v *V[_]) check(index int) {
	if index < 0 || index >= v.n {
		panic("bitvec: index out of bounds")
	}
}
