package diceskins

var Void = Skin{
	Name: "void",
	Face: "#0b0b12",
	Edge: "#2d2a4a",
	Pip:  "#8f7bff",
}
