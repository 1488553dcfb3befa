package diceskins

var Glacier = Skin{
	Name: "glacier",
	Face: "#dff2fb",
	Edge: "#9cc8dd",
	Pip:  "#1d4e66",
}
