package climb

// Resolve lands the body on a platform it crossed this tick.
//
// A platform qualifies when the body is falling, overlaps it horizontally,
// and the body's bottom edge went from at-or-above the platform top to
// at-or-below it during the tick. The test is swept over the whole tick so a
// fast fall cannot tunnel through a thin platform. Expired vanishing
// platforms are skipped.
//
// When several platforms qualify the first one in field order wins. Grounded
// is cleared before testing, so a body that walked off an edge is airborne.
// Returns the index of the landed platform, or -1.
func Resolve(b *Body, f *Field, p Params) int {
	b.Grounded = false
	if b.VY <= 0 {
		return -1
	}

	prevBottom := b.PrevY + p.BodySize
	bottom := b.Bottom(p)
	box := b.Box(p)

	for i := range f.Platforms {
		pl := &f.Platforms[i]
		if pl.Expired(p) {
			continue
		}
		if !box.OverlapsX(pl.Box(p)) {
			continue
		}
		if prevBottom > pl.Y || bottom < pl.Y {
			continue
		}

		b.Y = pl.Y - p.BodySize
		b.VY = 0
		b.Grounded = true
		b.JumpCount = 0
		pl.touch()
		return i
	}
	return -1
}
