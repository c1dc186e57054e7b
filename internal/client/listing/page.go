package listing

import "slices"

// Window returns the half-open slice [page*size, page*size+size) of items,
// clamped to the collection. Out-of-range pages yield an empty window, never
// an error. The result shares memory with items but cannot grow into it.
func Window[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 || len(items) == 0 {
		return []T{}
	}
	// compare before multiplying so huge pages or sizes cannot overflow
	if page > (len(items)-1)/size {
		return []T{}
	}
	start := page * size
	end := start + min(size, len(items)-start)
	return slices.Clip(items[start:end])
}

// PageCount is the number of pages needed for total items.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Pager holds a page index and size. Changing either does not re-validate
// the other: a page beyond the collection simply shows an empty window.
type Pager struct {
	Page int
	Size int
}

func NewPager(size int) Pager {
	return Pager{Size: size}
}

func (p *Pager) SetPage(page int) { p.Page = page }

func (p *Pager) SetSize(size int) { p.Size = size }

// Reset returns to the first page.
func (p *Pager) Reset() { p.Page = 0 }

// Apply is Window(items, p.Page, p.Size).
func Apply[T any](p Pager, items []T) []T {
	return Window(items, p.Page, p.Size)
}
