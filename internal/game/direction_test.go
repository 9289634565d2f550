package game

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		name   string
		exp    Direction
		expErr bool
	}{
		"up":      {name: "yDec", exp: DirectionYDec},
		"right":   {name: "xInc", exp: DirectionXInc},
		"down":    {name: "yInc", exp: DirectionYInc},
		"left":    {name: "xDec", exp: DirectionXDec},
		"unknown": {name: "north", expErr: true},
		"empty":   {name: "", expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := ParseDirection(tt.name)
			if tt.expErr {
				if !errors.Is(err, ErrUnknownDirection) {
					t.Fatalf("expected ErrUnknownDirection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "direction", d, tt.exp)
			testutil.AssertEqual(t, "string", d.String(), tt.name)
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	testutil.AssertEqual(t, "yDec", DirectionYDec.Opposite(), DirectionYInc)
	testutil.AssertEqual(t, "xInc", DirectionXInc.Opposite(), DirectionXDec)
	testutil.AssertEqual(t, "yInc", DirectionYInc.Opposite(), DirectionYDec)
	testutil.AssertEqual(t, "xDec", DirectionXDec.Opposite(), DirectionXInc)
}

func TestDirection_Key(t *testing.T) {
	b := Box{Top: 1, Right: 2, Bottom: 3, Left: 4}

	testutil.AssertEqual(t, "xInc", DirectionXInc.Key(b), 4.0)
	testutil.AssertEqual(t, "xDec", DirectionXDec.Key(b), 2.0)
	testutil.AssertEqual(t, "yInc", DirectionYInc.Key(b), 1.0)
	testutil.AssertEqual(t, "yDec", DirectionYDec.Key(b), 3.0)
}

func TestDirection_JSON(t *testing.T) {
	var out struct {
		D Direction `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"xDec"}`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "direction", out.D, DirectionXDec)

	err := json.Unmarshal([]byte(`{"d":"sideways"}`), &out)
	testutil.AssertErrorContains(t, err, "unknown direction")
}
