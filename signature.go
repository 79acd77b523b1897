package stage

import "math/bits"

// Signature is the set of component types attached to an entity. Each bit
// corresponds to a ComponentTypeID; a set bit means the entity's slot in
// that type's pool holds live data.
type Signature [4]uint64

// Set enables the bit for the given component type.
func (m *Signature) Set(id ComponentTypeID) {
	m[id>>6] |= uint64(1) << (id & 63)
}

// Unset disables the bit for the given component type.
func (m *Signature) Unset(id ComponentTypeID) {
	m[id>>6] &^= uint64(1) << (id & 63)
}

// Has reports whether the bit for the given component type is set.
func (m Signature) Has(id ComponentTypeID) bool {
	return m[id>>6]&(uint64(1)<<(id&63)) != 0
}

// Contains reports whether every bit set in sub is also set in m, i.e.
// whether an entity with signature m satisfies a query for sub.
func (m Signature) Contains(sub Signature) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// IsEmpty reports whether no bits are set.
func (m Signature) IsEmpty() bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

// next returns the lowest set component type at or after from, or -1.
func (m Signature) next(from int) int {
	for id := from; id < MaxComponentTypes; id++ {
		w := m[id>>6] >> (id & 63)
		if w == 0 {
			id |= 63
			continue
		}
		return id + bits.TrailingZeros64(w)
	}
	return -1
}
