package component

// Color is a 24-bit 0xRRGGBB color.
type Color uint32

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the 8-bit channels of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale multiplies every channel by f, clamping to [0, 255].
func (c Color) Scale(f float32) Color {
	r, g, b := c.RGB()
	return RGB(scale8(r, f), scale8(g, f), scale8(b, f))
}

// Modulate multiplies c by light channel-wise, treating light as a filter.
func (c Color) Modulate(light Color) Color {
	r, g, b := c.RGB()
	lr, lg, lb := light.RGB()
	return RGB(
		uint8(uint16(r)*uint16(lr)/255),
		uint8(uint16(g)*uint16(lg)/255),
		uint8(uint16(b)*uint16(lb)/255),
	)
}

func scale8(v uint8, f float32) uint8 {
	x := float32(v) * f
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x + 0.5)
}
