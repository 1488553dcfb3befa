package diceskins

var RoseQuartz = Skin{
	Name: "rose-quartz",
	Face: "#f6cfd8",
	Edge: "#d18fa2",
	Pip:  "#6e2b3d",
}
