package models

// Trip is a feasibility request: carry the cargo over Distance km.
type Trip struct {
	Cargo    []Cargo
	Distance int
}
