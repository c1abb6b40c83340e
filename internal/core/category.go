package core

import "strings"

// CategoryRef points a transaction at its category either through a catalog
// id or through a legacy free-text label. At most one of the two is set.
type CategoryRef struct {
	ID    int64
	Label string
}

// ResolvedCategory is a CategoryRef looked up against the catalog.
type ResolvedCategory struct {
	ID    int64 // 0 for free-text labels
	Label string
	Icon  string
	Color string
}

// CategoryByID references a catalog category.
func CategoryByID(id int64) CategoryRef {
	return CategoryRef{ID: id}
}

// CategoryByLabel references a free-text category label.
func CategoryByLabel(label string) CategoryRef {
	return CategoryRef{Label: strings.TrimSpace(label)}
}

// IsByID reports whether the ref points at a catalog category.
func (r CategoryRef) IsByID() bool { return r.ID != 0 }

// IsEmpty reports whether no category was given.
func (r CategoryRef) IsEmpty() bool { return r.ID == 0 && r.Label == "" }

// Resolve turns the ref into a display category. Unknown ids fall back to the
// stored label, or to an empty label.
func (r CategoryRef) Resolve(catalog map[int64]Category) ResolvedCategory {
	if r.ID != 0 {
		if c, ok := catalog[r.ID]; ok {
			return ResolvedCategory{ID: c.ID, Label: c.Name, Icon: c.Icon, Color: c.Color}
		}
	}
	return ResolvedCategory{Label: r.Label}
}

// Key is the case-insensitive grouping key used when comparing categories.
func (c ResolvedCategory) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Label))
}
