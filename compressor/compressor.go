// Package compressor stores automaton transition tables compactly. A
// compiled lexer rule has one row per state and one column per input byte,
// so most entries are empty; Compress deduplicates identical rows and
// overlays the remaining sparse rows into one shared slot array.
package compressor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is a compressed row-major table of ints. It answers the same
// lookups as the dense original; positions outside the original bounds and
// entries no row claims both read as the empty value.
type Table struct {
	rowCount int
	colCount int
	empty    int

	// canon maps each original row to the row whose placement it shares;
	// duplicate rows collapse onto one displacement.
	canon        []int
	displacement []int
	slots        []int
	owner        []int
}

// unclaimed marks a slot no row has written.
const unclaimed = -1

// Compress packs a dense row-major table. entries must be a non-empty
// multiple of colCount; empty is the value standing for "no entry".
func Compress(entries []int, colCount, empty int) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries is empty")
	}
	if colCount <= 0 {
		return nil, fmt.Errorf("colCount must be >=1")
	}
	if len(entries)%colCount != 0 {
		return nil, fmt.Errorf("entries length and column count are inconsistent; entries length: %v, column count: %v", len(entries), colCount)
	}
	rowCount := len(entries) / colCount

	t := &Table{
		rowCount:     rowCount,
		colCount:     colCount,
		empty:        empty,
		canon:        make([]int, rowCount),
		displacement: make([]int, rowCount),
		slots:        make([]int, colCount),
		owner:        make([]int, colCount),
	}
	for i := range t.slots {
		t.slots[i] = empty
		t.owner[i] = unclaimed
	}

	// Collapse duplicate rows first; only distinct rows are placed.
	distinct := t.dedupRows(entries)

	// Place the densest rows first, so they grab contiguous space while it
	// is still cheap; ties keep row order.
	cols := make([][]int, rowCount)
	for _, row := range distinct {
		cols[row] = nonEmptyCols(entries, row, colCount, empty)
	}
	sort.SliceStable(distinct, func(i, j int) bool {
		return len(cols[distinct[i]]) > len(cols[distinct[j]])
	})

	for _, row := range distinct {
		d := t.fit(cols[row])
		t.place(entries, row, d, cols[row])
	}
	for row := 0; row < rowCount; row++ {
		t.displacement[row] = t.displacement[t.canon[row]]
	}

	return t, nil
}

// Lookup reads the entry at (row, col) of the original table.
func (t *Table) Lookup(row, col int) int {
	if row < 0 || row >= t.rowCount || col < 0 || col >= t.colCount {
		return t.empty
	}
	i := t.displacement[row] + col
	if t.owner[i] != t.canon[row] {
		return t.empty
	}
	return t.slots[i]
}

// Size returns the dimensions of the original table.
func (t *Table) Size() (rowCount, colCount int) {
	return t.rowCount, t.colCount
}

// SlotCount returns the length of the shared slot array, the table's
// compressed footprint.
func (t *Table) SlotCount() int {
	return len(t.slots)
}

// dedupRows fills canon and returns the canonical rows in first-seen order.
func (t *Table) dedupRows(entries []int) []int {
	var distinct []int
	seen := map[string]int{}
	for row := 0; row < t.rowCount; row++ {
		var b strings.Builder
		for col := 0; col < t.colCount; col++ {
			b.WriteString(strconv.Itoa(entries[row*t.colCount+col]))
			b.WriteByte(',')
		}
		key := b.String()
		if c, ok := seen[key]; ok {
			t.canon[row] = c
			continue
		}
		seen[key] = row
		t.canon[row] = row
		distinct = append(distinct, row)
	}
	return distinct
}

// fit finds the smallest displacement whose slots are free for every column
// in cols. Slots past the current end are always free.
func (t *Table) fit(cols []int) int {
	for d := 0; ; d++ {
		ok := true
		for _, col := range cols {
			if d+col < len(t.owner) && t.owner[d+col] != unclaimed {
				ok = false
				break
			}
		}
		if ok {
			return d
		}
	}
}

func (t *Table) place(entries []int, row, d int, cols []int) {
	for len(t.slots) < d+t.colCount {
		t.slots = append(t.slots, t.empty)
		t.owner = append(t.owner, unclaimed)
	}
	for _, col := range cols {
		t.slots[d+col] = entries[row*t.colCount+col]
		t.owner[d+col] = row
	}
	t.displacement[row] = d
}

func nonEmptyCols(entries []int, row, colCount, empty int) []int {
	var cols []int
	for col := 0; col < colCount; col++ {
		if entries[row*colCount+col] != empty {
			cols = append(cols, col)
		}
	}
	return cols
}
