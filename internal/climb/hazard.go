package climb

import "math"

// Hazard is the rising deadline. It sleeps until the body has climbed far
// enough, then rises faster and faster; touching it ends the run.
type Hazard struct {
	Active bool
	Y      float64 // World y of the line
	Speed  float64 // Rise per tick
}

// Update advances the hazard one tick. Returns true on the tick it wakes.
//
// A sleeping hazard wakes when the body is more than HazardActivation above
// its spawn height, appearing at the bottom edge of the viewport with the base
// speed. An active hazard gains HazardAccel of speed per tick up to
// HazardMaxSpeed and rises by its speed.
func (h *Hazard) Update(b *Body, cam Camera, p Params) bool {
	if !h.Active {
		_, spawnY := p.SpawnBody()
		if spawnY-b.Y <= p.HazardActivation {
			return false
		}
		h.Active = true
		h.Y = p.ViewportHeight - cam.Offset
		h.Speed = p.HazardBaseSpeed
		return true
	}

	h.Speed = math.Min(h.Speed+p.HazardAccel, p.HazardMaxSpeed)
	h.Y -= h.Speed
	return false
}

// Touches reports whether the body's bottom edge is below the line.
func (h *Hazard) Touches(b *Body, p Params) bool {
	return h.Active && b.Bottom(p) > h.Y
}
