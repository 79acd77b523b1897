// Package bitvec defines a fixed-width bit vector used for slot bookkeeping
// (free lists and live-set scans).
package bitvec

import "math/bits"

const wordBits = 64

// V is a fixed-width bit vector. The zero value has no bits; use New.
type V struct {
	w   []uint64
	n   int
	set int
}

// New returns a vector of n bits, all set if full is true and all unset
// otherwise.
func New(n int, full bool) *V {
	if n < 0 {
		panic("bitvec: negative length")
	}
	v := &V{w: make([]uint64, (n+wordBits-1)/wordBits), n: n}
	if full {
		v.Fill()
	}
	return v
}

// Len returns the number of bits in the vector.
func (v *V) Len() int { return v.n }

// Count returns the number of set bits.
func (v *V) Count() int { return v.set }

// Set sets bit i.
func (v *V) Set(i int) {
	b := uint64(1) << (i & (wordBits - 1))
	if v.w[i/wordBits]&b == 0 {
		v.w[i/wordBits] |= b
		v.set++
	}
}

// Unset clears bit i.
func (v *V) Unset(i int) {
	b := uint64(1) << (i & (wordBits - 1))
	if v.w[i/wordBits]&b != 0 {
		v.w[i/wordBits] &^= b
		v.set--
	}
}

// IsSet reports whether bit i is set.
// Indices outside [0, Len) are reported as unset.
func (v *V) IsSet(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	return v.w[i/wordBits]&(uint64(1)<<(i&(wordBits-1))) != 0
}

// Fill sets every bit.
func (v *V) Fill() {
	for i := range v.w {
		v.w[i] = ^uint64(0)
	}
	if r := v.n % wordBits; r != 0 {
		v.w[len(v.w)-1] = uint64(1)<<r - 1
	}
	v.set = v.n
}

// Clear unsets every bit.
func (v *V) Clear() {
	clear(v.w)
	v.set = 0
}

// NextSet returns the index of the first set bit at or after from,
// or -1 if there is none.
func (v *V) NextSet(from int) int {
	return v.next(from, 0)
}

// NextUnset returns the index of the first unset bit at or after from,
// or -1 if there is none.
func (v *V) NextUnset(from int) int {
	return v.next(from, ^uint64(0))
}

// next scans words xor'ed with flip so that the wanted bits read as ones.
func (v *V) next(from int, flip uint64) int {
	if from < 0 {
		from = 0
	}
	if from >= v.n {
		return -1
	}
	i := from / wordBits
	x := (v.w[i] ^ flip) &^ (uint64(1)<<(from&(wordBits-1)) - 1)
	for {
		if x != 0 {
			idx := i*wordBits + bits.TrailingZeros64(x)
			if idx >= v.n {
				return -1
			}
			return idx
		}
		i++
		if i == len(v.w) {
			return -1
		}
		x = v.w[i] ^ flip
	}
}
