package criteria

import (
	"fmt"
	"math"
)

// ScoreMap holds entered values keyed by leaf criterion id. A missing key
// means "not scored yet"; an explicit 0 means the reviewer scored zero.
// The two are deliberately distinct and callers must not zero-fill.
type ScoreMap map[string]int

// GrandMax is the ceiling of every grand total regardless of catalog shape.
const GrandMax = 100

// GroupTotal sums the entered values of a group's leaves without clamping,
// so a user can see by how much they exceed a section cap.
func (c *Catalog) GroupTotal(m ScoreMap, groupID string) int {
	var sum int
	for _, g := range c.groups {
		if g.ID != groupID {
			continue
		}
		for _, leaf := range g.Leaves {
			sum += m[leaf.ID]
		}
		return sum
	}
	return 0
}

// GrandTotal clamps each group's leaf sum to the group max, sums the
// clamped values and clamps the result to [0, GrandMax]. Exceeding one
// section can therefore never compensate for another.
func (c *Catalog) GrandTotal(m ScoreMap) int {
	var total int
	for _, g := range c.groups {
		sum := 0
		for _, leaf := range g.Leaves {
			sum += m[leaf.ID]
		}
		if sum > g.Max {
			sum = g.Max
		}
		total += sum
	}
	if total > GrandMax {
		return GrandMax
	}
	if total < 0 {
		return 0
	}
	return total
}

// ValidationError reports score input that fails shape validation.
type ValidationError struct {
	CriterionID string
	Msg         string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("criteria: %s: %s", e.CriterionID, e.Msg)
}

// Warning records an out-of-range value that was corrected by clamping.
type Warning struct {
	CriterionID string  `json:"criterion_id"`
	Entered     float64 `json:"entered"`
	Corrected   int     `json:"corrected"`
}

// Normalize validates a raw (wire-decoded) value map against the catalog.
// Unknown ids and direct scores on group rows are rejected; fractional
// values are rejected rather than rounded; values outside [0, max] are
// clamped to the nearest bound and reported as warnings. Explicit zeros
// survive as present keys.
func (c *Catalog) Normalize(raw map[string]float64) (ScoreMap, []Warning, error) {
	out := make(ScoreMap, len(raw))
	var warns []Warning
	for id, v := range raw {
		cr, ok := c.byID[id]
		if !ok {
			return nil, nil, &ValidationError{CriterionID: id, Msg: "unknown criterion"}
		}
		if cr.Parent == "" {
			return nil, nil, &ValidationError{CriterionID: id, Msg: "group rows are not directly scorable"}
		}
		if v != math.Trunc(v) || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, &ValidationError{CriterionID: id, Msg: "score must be a whole number"}
		}
		n := int(v)
		if n < 0 {
			warns = append(warns, Warning{CriterionID: id, Entered: v, Corrected: 0})
			n = 0
		} else if n > cr.Max {
			warns = append(warns, Warning{CriterionID: id, Entered: v, Corrected: cr.Max})
			n = cr.Max
		}
		out[id] = n
	}
	return out, warns, nil
}
