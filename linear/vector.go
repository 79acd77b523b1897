// Package linear implements the small amount of vector math the scene
// components need.
package linear

import "math"

// V3 is a 3-component vector of float32.
type V3 [3]float32

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v V3) float32 {
	return float32(math.Sqrt(float64(DotV3(v, v))))
}

// NormV3 returns v normalized. The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	l := LenV3(v)
	if l == 0 {
		return v
	}
	return ScaleV3(1/l, v)
}

// DistV3 returns the distance between v and w.
func DistV3(v, w V3) float32 {
	return LenV3(SubV3(v, w))
}
