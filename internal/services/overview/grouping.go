package overview

import "github.com/pokesprite/pokesprite/internal/platform/icons"

// rowPlan tells the HTML renderer how to emit one icon's row.
type rowPlan struct {
	// N is the sequential row number.
	N int
	// First marks the first row of a group, which carries the shared cells.
	First bool
	// Span is the group size; only set on the first row.
	Span int
}

// rowGrouper walks an icon list once and groups contiguous records sharing an
// id under one row-spanning index/name cell pair.
type rowGrouper struct {
	list      []icons.Record
	pos       int
	currentID string
	remaining int
	seq       int
}

func newRowGrouper(list []icons.Record) *rowGrouper {
	return &rowGrouper{list: list}
}

// next advances past icon, which must be the record at the grouper's
// position.
func (g *rowGrouper) next(icon icons.Record) rowPlan {
	plan := rowPlan{N: g.seq}
	if g.remaining <= 0 {
		g.currentID = icon.ID
		g.remaining = g.groupSize()
		plan.First = true
		plan.Span = g.remaining
	}
	g.seq++
	g.pos++
	g.remaining--
	return plan
}

// groupSize counts the records from the current position sharing currentID.
func (g *rowGrouper) groupSize() int {
	n := 0
	for m := g.pos; m < len(g.list) && g.list[m].ID == g.currentID; m++ {
		n++
	}
	return max(n, 1)
}
