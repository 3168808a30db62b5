package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		current    int
		width      int
		wantWindow []int
		wantPrev   bool
		wantNext   bool
	}{
		{
			name:  "first page of ten",
			count: 10, current: 1, width: 5,
			wantWindow: []int{1, 2, 3, 4, 5},
			wantPrev:   false, wantNext: true,
		},
		{
			name:  "last page of ten",
			count: 10, current: 10, width: 5,
			wantWindow: []int{6, 7, 8, 9, 10},
			wantPrev:   true, wantNext: false,
		},
		{
			name:  "middle page centers window",
			count: 10, current: 5, width: 5,
			wantWindow: []int{3, 4, 5, 6, 7},
			wantPrev:   true, wantNext: true,
		},
		{
			name:  "near left edge shifts inward",
			count: 10, current: 2, width: 5,
			wantWindow: []int{1, 2, 3, 4, 5},
			wantPrev:   true, wantNext: true,
		},
		{
			name:  "near right edge shifts inward",
			count: 10, current: 9, width: 5,
			wantWindow: []int{6, 7, 8, 9, 10},
			wantPrev:   true, wantNext: true,
		},
		{
			name:  "fewer pages than width",
			count: 3, current: 2, width: 5,
			wantWindow: []int{1, 2, 3},
			wantPrev:   true, wantNext: true,
		},
		{
			name:  "single page",
			count: 1, current: 1, width: 5,
			wantWindow: []int{1},
			wantPrev:   false, wantNext: false,
		},
		{
			name:  "current clamped into range",
			count: 4, current: 99, width: 5,
			wantWindow: []int{1, 2, 3, 4},
			wantPrev:   true, wantNext: false,
		},
		{
			name:  "zero count treated as one page",
			count: 0, current: 1, width: 5,
			wantWindow: []int{1},
			wantPrev:   false, wantNext: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.count, tt.current, tt.width)
			assert.Equal(t, tt.wantWindow, p.Window)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.wantNext, p.HasNext)
		})
	}
}

func TestPaginateWindowWidthNeverExceedsPageCount(t *testing.T) {
	for count := 1; count <= 12; count++ {
		for current := 1; current <= count; current++ {
			p := Paginate(count, current, 5)
			want := 5
			if count < want {
				want = count
			}
			assert.Len(t, p.Window, want, "count=%d current=%d", count, current)
			assert.Contains(t, p.Window, current)
		}
	}
}
