package game

// Box is an axis-aligned bounding box in map units. Y grows downwards.
type Box struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// NewBox builds a box from its top-left corner and size.
func NewBox(left, top, width, height float64) Box {
	return Box{
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
		Left:   left,
	}
}

func (b Box) Width() float64 {
	return b.Right - b.Left
}

func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Shift moves the box without resizing it.
func (b *Box) Shift(dx, dy float64) {
	b.Left += dx
	b.Right += dx
	b.Top += dy
	b.Bottom += dy
}

// Expand grows the box by margin on every side.
func (b Box) Expand(margin float64) Box {
	return Box{
		Top:    b.Top - margin,
		Right:  b.Right + margin,
		Bottom: b.Bottom + margin,
		Left:   b.Left - margin,
	}
}

// Overlaps reports whether b and o share area once b is shrunk by tolX on
// each horizontal side and tolY on each vertical side. Boxes that only
// touch do not overlap.
func (b Box) Overlaps(o Box, tolX, tolY float64) bool {
	return b.Left+tolX < o.Right &&
		b.Right-tolX > o.Left &&
		b.Top+tolY < o.Bottom &&
		b.Bottom-tolY > o.Top
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Top:    min(b.Top, o.Top),
		Right:  max(b.Right, o.Right),
		Bottom: max(b.Bottom, o.Bottom),
		Left:   min(b.Left, o.Left),
	}
}
