package diceskins

var Gilded = Skin{
	Name: "gilded",
	Face: "#e9c46a",
	Edge: "#a8802a",
	Pip:  "#4a3203",
}
