package diceskins

var Ember = Skin{
	Name: "ember",
	Face: "#b33a2b",
	Edge: "#6e1f15",
	Pip:  "#ffd9b0",
}
