package compressor

import "testing"

func TestCompress(t *testing.T) {
	x := 0 // the empty value

	tests := []struct {
		caption  string
		original []int
		colCount int
	}{
		{
			caption: "all rows are identical",
			original: []int{
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
			},
			colCount: 5,
		},
		{
			caption: "all entries are empty",
			original: []int{
				x, x, x, x, x,
				x, x, x, x, x,
				x, x, x, x, x,
			},
			colCount: 5,
		},
		{
			caption: "empty rows between full rows",
			original: []int{
				1, 1, 1, 1, 1,
				x, x, x, x, x,
				1, 1, 1, 1, 1,
			},
			colCount: 5,
		},
		{
			caption: "staggered holes",
			original: []int{
				1, x, 1, 1, 1,
				1, 1, x, 1, 1,
				1, 1, 1, x, 1,
			},
			colCount: 5,
		},
		{
			caption: "sparse rows overlay into shared slots",
			original: []int{
				1, x, x, x, x,
				x, 2, x, x, x,
				x, x, x, 3, x,
			},
			colCount: 5,
		},
		{
			caption: "distinct dense rows",
			original: []int{
				1, 2, 3, 4, 5,
				5, 4, 3, 2, 1,
				1, 3, 5, 2, 4,
			},
			colCount: 5,
		},
		{
			caption:  "a single row",
			original: []int{1, x, 2, x, 3},
			colCount: 5,
		},
		{
			caption:  "a single column",
			original: []int{1, x, 2},
			colCount: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			tab, err := Compress(tt.original, tt.colCount, x)
			if err != nil {
				t.Fatal(err)
			}

			rowCount, colCount := tab.Size()
			if colCount != tt.colCount || rowCount != len(tt.original)/tt.colCount {
				t.Fatalf("unexpected table size: %vx%v", rowCount, colCount)
			}
			for row := 0; row < rowCount; row++ {
				for col := 0; col < colCount; col++ {
					want := tt.original[row*colCount+col]
					if got := tab.Lookup(row, col); got != want {
						t.Errorf("unexpected entry at [%v, %v]: want: %v, got: %v", row, col, want, got)
					}
				}
			}
		})
	}
}

func TestCompress_DeduplicatesRows(t *testing.T) {
	x := 0
	tab, err := Compress([]int{
		1, x, 2,
		1, x, 2,
		1, x, 2,
		x, 3, x,
	}, 3, x)
	if err != nil {
		t.Fatal(err)
	}

	// Three identical rows share one placement; the sparse fourth row fits
	// into the holes, so the slot array stays at one row's width.
	if got := tab.SlotCount(); got != 3 {
		t.Fatalf("unexpected slot count: want: 3, got: %v", got)
	}
	for _, row := range []int{0, 1, 2} {
		if tab.Lookup(row, 0) != 1 || tab.Lookup(row, 2) != 2 {
			t.Fatalf("row %v lost its entries", row)
		}
	}
	if tab.Lookup(3, 1) != 3 {
		t.Fatal("the overlaid row lost its entry")
	}
}

func TestCompress_Invalid(t *testing.T) {
	if _, err := Compress(nil, 5, 0); err == nil {
		t.Fatal("expected an error for empty entries")
	}
	if _, err := Compress([]int{1, 2, 3}, 0, 0); err == nil {
		t.Fatal("expected an error for a zero column count")
	}
	if _, err := Compress([]int{1, 2, 3}, 2, 0); err == nil {
		t.Fatal("expected an error for a ragged table")
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	x := -7
	tab, err := Compress([]int{1, 2, 3, 4}, 2, x)
	if err != nil {
		t.Fatal(err)
	}

	// Out-of-range positions read as the empty value.
	if got := tab.Lookup(2, 0); got != x {
		t.Errorf("unexpected entry below the table: %v", got)
	}
	if got := tab.Lookup(0, 2); got != x {
		t.Errorf("unexpected entry right of the table: %v", got)
	}
	if got := tab.Lookup(-1, 0); got != x {
		t.Errorf("unexpected entry above the table: %v", got)
	}
}
