package game

import (
	"fmt"
	"strings"
)

// Group is the coarse category of a Thing. Collision rules are declared
// between groups, never between concrete types.
type Group int

const (
	GroupTerrain Group = iota
	GroupSolid
	GroupScenery
	GroupCharacter
	GroupText

	numGroups
)

var groupNames = [numGroups]string{
	GroupTerrain:   "Terrain",
	GroupSolid:     "Solid",
	GroupScenery:   "Scenery",
	GroupCharacter: "Character",
	GroupText:      "Text",
}

// Groups returns every group in group order.
func Groups() []Group {
	groups := make([]Group, numGroups)
	for i := range groups {
		groups[i] = Group(i)
	}
	return groups
}

// ParseGroup returns the group with the given name. Matching ignores case.
func ParseGroup(name string) (Group, error) {
	for i, n := range groupNames {
		if strings.EqualFold(n, name) {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Valid reports whether g is one of the declared groups.
func (g Group) Valid() bool {
	return g >= 0 && g < numGroups
}

func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

func (g Group) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGroup, int(g))
	}
	return []byte(groupNames[g]), nil
}

func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
