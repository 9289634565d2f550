package game

import "fmt"

// Direction is a direction of travel across the map. Each direction owns
// one PreThing ordering, keyed by the edge a box presents first when
// approached from that direction.
type Direction int

const (
	DirectionYDec Direction = iota // up
	DirectionXInc                  // right
	DirectionYInc                  // down
	DirectionXDec                  // left

	numDirections
)

var directionNames = [numDirections]string{
	DirectionYDec: "yDec",
	DirectionXInc: "xInc",
	DirectionYInc: "yInc",
	DirectionXDec: "xDec",
}

// Directions returns all four directions.
func Directions() []Direction {
	return []Direction{DirectionYDec, DirectionXInc, DirectionYInc, DirectionXDec}
}

func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

func (d Direction) Valid() bool {
	return d >= 0 && d < numDirections
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(directionNames[d]), nil
}

// Opposite returns the direction of travel pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % numDirections
}

// Ascending reports whether PreThings for d are ordered by increasing key.
func (d Direction) Ascending() bool {
	return d == DirectionXInc || d == DirectionYInc
}

// Key returns the edge of b that leads when travelling in direction d:
// left for xInc, right for xDec, top for yInc and bottom for yDec.
func (d Direction) Key(b Box) float64 {
	switch d {
	case DirectionXInc:
		return b.Left
	case DirectionXDec:
		return b.Right
	case DirectionYInc:
		return b.Top
	default:
		return b.Bottom
	}
}
