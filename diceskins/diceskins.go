// Package diceskins defines the named color palettes a die face can
// be skinned with.
package diceskins

import (
	"fmt"
	"strings"
)

type Skin struct {
	Name string `json:"name"`
	Face string `json:"face"`
	Edge string `json:"edge"`
	Pip  string `json:"pip"`
}

const DefaultName = "bone"

var Catalog = []Skin{
	Bone,
	Obsidian,
	Jade,
	Amber,
	Glacier,
	Ember,
	RoseQuartz,
	Void,
	Gilded,
}

// Find returns the skin registered under name. Unrecognized names
// resolve to the default skin, never an error.
func Find(name string) Skin {
	for _, skin := range Catalog {
		if skin.Name == name {
			return skin
		}
	}

	return Bone
}

func CLIString() string {
	var s strings.Builder
	for _, skin := range Catalog {
		s.WriteString(fmt.Sprintf("- %s\n", skin.Name))
	}
	return s.String()
}
