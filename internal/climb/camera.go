package climb

// Camera is the vertical scroll of the view. Offset is how far the view has
// moved up from the start; screen y = world y + Offset.
type Camera struct {
	Offset float64
}

// Follow scrolls up so the body never rises above the pin line
// (CameraPin * ViewportHeight in screen space). The offset never decreases.
func (c *Camera) Follow(b *Body, p Params) {
	pin := p.CameraPin * p.ViewportHeight
	if b.Y+c.Offset < pin {
		c.Offset = pin - b.Y
	}
}

// ToScreen converts a world y to screen space.
func (c Camera) ToScreen(y float64) float64 {
	return y + c.Offset
}

// Score is the climbed height in whole world units.
func (c Camera) Score() int {
	return int(c.Offset)
}
