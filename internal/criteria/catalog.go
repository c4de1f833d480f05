package criteria

import "fmt"

// Criterion is one row of the evaluation rubric. Top-level criteria
// (Parent == "") are section headers that cap their children's sum;
// only child criteria carry user-entered scores.
type Criterion struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Max     int    `json:"max"`
	Parent  string `json:"parent,omitempty"`
}

// Group is a section of the rubric together with its scorable leaves.
// A group's Max is a cap on the leaf sum, not the sum of the leaf
// maxima; leaves may add up to more than the cap.
type Group struct {
	Criterion
	Leaves []Criterion `json:"leaves"`
}

// Catalog is the fixed rubric, ordered as printed on the official form.
type Catalog struct {
	groups []Group
	byID   map[string]Criterion
}

// New builds a catalog from a flat, ordered criterion list. Rows must
// reference a previously declared group; duplicate ids are rejected.
func New(rows []Criterion) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Criterion, len(rows))}
	idx := map[string]int{}
	for _, r := range rows {
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("criteria: duplicate id %q", r.ID)
		}
		c.byID[r.ID] = r
		if r.Parent == "" {
			idx[r.ID] = len(c.groups)
			c.groups = append(c.groups, Group{Criterion: r})
			continue
		}
		gi, ok := idx[r.Parent]
		if !ok {
			return nil, fmt.Errorf("criteria: %q references unknown group %q", r.ID, r.Parent)
		}
		c.groups[gi].Leaves = append(c.groups[gi].Leaves, r)
	}
	return c, nil
}

// Groups returns the ordered sections of the rubric.
func (c *Catalog) Groups() []Group { return c.groups }

// Lookup returns the criterion with the given id.
func (c *Catalog) Lookup(id string) (Criterion, bool) {
	cr, ok := c.byID[id]
	return cr, ok
}

// IsLeaf reports whether id names a scorable (non-group) criterion.
func (c *Catalog) IsLeaf(id string) bool {
	cr, ok := c.byID[id]
	return ok && cr.Parent != ""
}

// Rows returns the catalog flattened back to form order, groups first
// within each section.
func (c *Catalog) Rows() []Criterion {
	out := make([]Criterion, 0, len(c.byID))
	for _, g := range c.groups {
		out = append(out, g.Criterion)
		out = append(out, g.Leaves...)
	}
	return out
}
