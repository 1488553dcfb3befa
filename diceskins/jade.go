package diceskins

var Jade = Skin{
	Name: "jade",
	Face: "#2f7d5c",
	Edge: "#1d4f3a",
	Pip:  "#eafff3",
}
