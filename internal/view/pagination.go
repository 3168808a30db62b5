package view

// DefaultWindowWidth is the number of page buttons shown at once.
const DefaultWindowWidth = 5

// Pagination describes the navigation controls for one rendered page:
// which edge buttons are enabled and which page numbers are visible.
type Pagination struct {
	Current   int
	PageCount int
	// HasPrev is false exactly on the first page; it gates both the
	// "first" and "previous" buttons. HasNext mirrors it for
	// "next"/"last".
	HasPrev bool
	HasNext bool
	// Window is the sliding run of visible page numbers, width
	// min(width, PageCount), centered on Current and shifted inward at
	// the edges rather than shrunk.
	Window []int
}

// Paginate computes the control state for the given page count and
// current page. Inputs are clamped to sane values first, so callers can
// pass raw state.
func Paginate(count, current, width int) Pagination {
	if count < 1 {
		count = 1
	}
	current = clamp(current, 1, count)
	if width < 1 {
		width = DefaultWindowWidth
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > count {
		end = count
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	window := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}

	return Pagination{
		Current:   current,
		PageCount: count,
		HasPrev:   current > 1,
		HasNext:   current < count,
		Window:    window,
	}
}
