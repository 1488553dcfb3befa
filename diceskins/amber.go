package diceskins

var Amber = Skin{
	Name: "amber",
	Face: "#f5b83d",
	Edge: "#b37d14",
	Pip:  "#3d2c05",
}
