package origin

import "slices"

// AllowList is an ordered, immutable set of origins admitted regardless of
// runtime mode.
type AllowList struct {
	origins []string
}

// NewAllowList builds an AllowList from the given origins, dropping empty
// entries. Order is preserved and no other normalisation is applied.
func NewAllowList(origins ...string) AllowList {
	filtered := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "" {
			continue
		}
		filtered = append(filtered, o)
	}
	return AllowList{origins: filtered}
}

// Contains reports whether origin matches an entry verbatim.
func (a AllowList) Contains(origin string) bool {
	return slices.Contains(a.origins, origin)
}

// Origins returns a copy of the entries in construction order.
func (a AllowList) Origins() []string {
	return slices.Clone(a.origins)
}

// Len returns the number of entries.
func (a AllowList) Len() int {
	return len(a.origins)
}
