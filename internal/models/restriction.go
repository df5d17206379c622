package models

import "sort"

// TypeRestriction describes which cargo types a vehicle or trailer accepts.
// The zero value is unrestricted.
type TypeRestriction struct {
	types map[CargoType]struct{}
}

// Unrestricted accepts every cargo type.
func Unrestricted() TypeRestriction {
	return TypeRestriction{}
}

// RestrictedTo accepts only the listed types. An empty list is the same as
// Unrestricted.
func RestrictedTo(types ...CargoType) TypeRestriction {
	if len(types) == 0 {
		return Unrestricted()
	}
	set := make(map[CargoType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return TypeRestriction{types: set}
}

func (r TypeRestriction) IsRestricted() bool {
	return len(r.types) > 0
}

// Allows reports whether cargo of type t passes the restriction.
func (r TypeRestriction) Allows(t CargoType) bool {
	if !r.IsRestricted() {
		return true
	}
	_, ok := r.types[t]
	return ok
}

// Types returns the accepted types in sorted order, or nil when unrestricted.
func (r TypeRestriction) Types() []CargoType {
	if !r.IsRestricted() {
		return nil
	}
	out := make([]CargoType, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
