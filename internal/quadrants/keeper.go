package quadrants

import (
	"math"

	"github.com/pixil98/go-tileworld/internal/game"
)

// DefaultQuadrantSize is the side length of a quadrant in map units.
const DefaultQuadrantSize = 128

// Keeper divides an area into a uniform grid of quadrants and keeps each
// Thing registered in every quadrant it overlaps.
type Keeper struct {
	size   float64
	bounds game.Box
	rows   int
	cols   int

	// Row-major.
	quadrants []*game.Quadrant
}

func NewKeeper(size float64) *Keeper {
	if size <= 0 {
		size = DefaultQuadrantSize
	}
	return &Keeper{size: size}
}

// Reset rebuilds the grid to cover bounds. Existing registrations are
// dropped.
func (k *Keeper) Reset(bounds game.Box) {
	k.Clear()

	k.bounds = bounds
	k.cols = max(1, int(math.Ceil(bounds.Width()/k.size)))
	k.rows = max(1, int(math.Ceil(bounds.Height()/k.size)))

	k.quadrants = make([]*game.Quadrant, 0, k.rows*k.cols)
	for row := range k.rows {
		for col := range k.cols {
			box := game.NewBox(
				bounds.Left+float64(col)*k.size,
				bounds.Top+float64(row)*k.size,
				k.size,
				k.size,
			)
			k.quadrants = append(k.quadrants, game.NewQuadrant(row, col, box))
		}
	}
}

// Clear empties every quadrant.
func (k *Keeper) Clear() {
	game.ClearQuadrants(k.quadrants)
}

// Update re-registers t in exactly the quadrants its box overlaps, in
// row-major order.
func (k *Keeper) Update(t *game.Thing) {
	t.DetachQuadrants()

	r0, r1, c0, c1, ok := k.cellRange(t.Box)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			k.quadrants[row*k.cols+col].Add(t)
		}
	}
}

// Remove detaches t from every quadrant.
func (k *Keeper) Remove(t *game.Thing) {
	t.DetachQuadrants()
}

// Quadrant returns the quadrant at row, col or nil when out of range.
func (k *Keeper) Quadrant(row, col int) *game.Quadrant {
	if row < 0 || row >= k.rows || col < 0 || col >= k.cols {
		return nil
	}
	return k.quadrants[row*k.cols+col]
}

// Quadrants returns every quadrant in row-major order.
func (k *Keeper) Quadrants() []*game.Quadrant {
	return k.quadrants
}

func (k *Keeper) Rows() int {
	return k.rows
}

func (k *Keeper) Cols() int {
	return k.cols
}

func (k *Keeper) Size() float64 {
	return k.size
}

// cellRange returns the inclusive rows and columns b overlaps. Boxes that
// only touch a quadrant's edge are not in it.
func (k *Keeper) cellRange(b game.Box) (r0, r1, c0, c1 int, ok bool) {
	if len(k.quadrants) == 0 {
		return 0, 0, 0, 0, false
	}
	if b.Right <= k.bounds.Left || b.Left >= k.bounds.Right ||
		b.Bottom <= k.bounds.Top || b.Top >= k.bounds.Bottom {
		return 0, 0, 0, 0, false
	}

	c0 = k.clamp(int(math.Floor((b.Left-k.bounds.Left)/k.size)), k.cols)
	c1 = k.clamp(int(math.Ceil((b.Right-k.bounds.Left)/k.size))-1, k.cols)
	r0 = k.clamp(int(math.Floor((b.Top-k.bounds.Top)/k.size)), k.rows)
	r1 = k.clamp(int(math.Ceil((b.Bottom-k.bounds.Top)/k.size))-1, k.rows)

	return r0, max(r0, r1), c0, max(c0, c1), true
}

func (k *Keeper) clamp(i, n int) int {
	return min(max(i, 0), n-1)
}
