package diceskins

var Bone = Skin{
	Name: "bone",
	Face: "#f5f1e6",
	Edge: "#b8ad93",
	Pip:  "#2b2620",
}
