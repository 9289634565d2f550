package quadrants

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-tileworld/internal/game"
)

func cells(t *game.Thing) [][2]int {
	var out [][2]int
	for _, q := range t.Quadrants() {
		out = append(out, [2]int{q.Row, q.Col})
	}
	return out
}

func TestKeeper_Reset(t *testing.T) {
	k := NewKeeper(100)
	k.Reset(game.NewBox(0, 0, 250, 100))

	testutil.AssertEqual(t, "rows", k.Rows(), 1)
	testutil.AssertEqual(t, "cols", k.Cols(), 3)
	testutil.AssertEqual(t, "quadrants", len(k.Quadrants()), 3)
	testutil.AssertEqual(t, "last box", k.Quadrant(0, 2).Box, game.NewBox(200, 0, 100, 100))
	if k.Quadrant(1, 0) != nil {
		t.Errorf("expected nil for out of range quadrant")
	}
}

func TestKeeper_Update(t *testing.T) {
	tests := map[string]struct {
		box      game.Box
		expCells [][2]int
	}{
		"inside one": {
			box:      game.NewBox(10, 10, 20, 20),
			expCells: [][2]int{{0, 0}},
		},
		"spans columns": {
			box:      game.NewBox(90, 10, 20, 20),
			expCells: [][2]int{{0, 0}, {0, 1}},
		},
		"spans four in row-major order": {
			box:      game.NewBox(90, 90, 20, 20),
			expCells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		"touching edge only": {
			box:      game.NewBox(100, 0, 100, 100),
			expCells: [][2]int{{0, 1}},
		},
		"partly outside": {
			box:      game.NewBox(-50, -50, 100, 100),
			expCells: [][2]int{{0, 0}},
		},
		"fully outside": {
			box: game.NewBox(500, 500, 10, 10),
		},
		"zero size": {
			box:      game.NewBox(150, 150, 0, 0),
			expCells: [][2]int{{1, 1}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			k := NewKeeper(100)
			k.Reset(game.NewBox(0, 0, 300, 300))
			thing := &game.Thing{ID: "a", Group: game.GroupSolid, Box: tt.box}

			k.Update(thing)

			testutil.AssertEqual(t, "cells", cells(thing), tt.expCells)
			testutil.AssertEqual(t, "count", thing.NumQuadrants(), len(tt.expCells))
			for _, q := range thing.Quadrants() {
				testutil.AssertEqual(t, "membership", q.Len(game.GroupSolid), 1)
			}
		})
	}
}

func TestKeeper_UpdateMoves(t *testing.T) {
	k := NewKeeper(100)
	k.Reset(game.NewBox(0, 0, 300, 100))
	thing := &game.Thing{ID: "a", Group: game.GroupCharacter, Box: game.NewBox(10, 10, 10, 10)}

	k.Update(thing)
	thing.Shift(200, 0)
	k.Update(thing)

	testutil.AssertEqual(t, "cells", cells(thing), [][2]int{{0, 2}})
	testutil.AssertEqual(t, "old quadrant", k.Quadrant(0, 0).Len(game.GroupCharacter), 0)

	k.Remove(thing)
	testutil.AssertEqual(t, "removed", thing.NumQuadrants(), 0)
	testutil.AssertEqual(t, "new quadrant", k.Quadrant(0, 2).Len(game.GroupCharacter), 0)
}

func TestKeeper_ClearAndReset(t *testing.T) {
	k := NewKeeper(0)
	testutil.AssertEqual(t, "default size", k.Size(), float64(DefaultQuadrantSize))

	thing := &game.Thing{ID: "a", Group: game.GroupSolid, Box: game.NewBox(0, 0, 10, 10)}
	k.Update(thing)
	testutil.AssertEqual(t, "before reset", thing.NumQuadrants(), 0)

	k.Reset(game.NewBox(0, 0, 256, 256))
	k.Update(thing)
	testutil.AssertEqual(t, "after reset", thing.NumQuadrants(), 1)

	k.Clear()
	testutil.AssertEqual(t, "after clear", thing.NumQuadrants(), 0)
	testutil.AssertEqual(t, "quadrant", k.Quadrant(0, 0).Len(game.GroupSolid), 0)
}
