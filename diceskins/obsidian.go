package diceskins

var Obsidian = Skin{
	Name: "obsidian",
	Face: "#1c1b22",
	Edge: "#3a3844",
	Pip:  "#e8e6f0",
}
