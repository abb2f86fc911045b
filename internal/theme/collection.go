package theme

import "sort"

// SortKey selects the order of a Collection.
type SortKey int

const (
	SortByName SortKey = iota
	SortByBackground
)

func (k SortKey) String() string {
	if k == SortByBackground {
		return "background"
	}
	return "name"
}

// Collection is the ordered set of themes shown in one session.
type Collection []*Theme

// Sort orders the collection in place. Background order is ascending by
// numeric value with the name as tie-break; themes without a readable
// background go last.
func (c Collection) Sort(key SortKey) {
	sort.SliceStable(c, func(i, j int) bool {
		a, b := c[i], c[j]
		if key == SortByBackground {
			abg, aerr := a.Background()
			bbg, berr := b.Background()
			switch {
			case aerr != nil && berr == nil:
				return false
			case aerr == nil && berr != nil:
				return true
			case aerr == nil && berr == nil && abg != bbg:
				return abg < bbg
			}
		}
		return a.Name < b.Name
	})
}

// Names returns the theme names in order.
func (c Collection) Names() []string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.Name
	}
	return names
}

// Find returns the theme with the given name.
func (c Collection) Find(name string) (*Theme, bool) {
	for _, t := range c {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}
