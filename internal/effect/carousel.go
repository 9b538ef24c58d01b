package effect

// Carousel rotates an index over a fixed number of items.
type Carousel struct {
	size  int
	index int
}

// NewCarousel starts at index 0.
func NewCarousel(size int) *Carousel {
	return &Carousel{size: max(size, 0)}
}

// Advance moves to the next item, wrapping at the end.
func (c *Carousel) Advance() int {
	if c.size > 0 {
		c.index = (c.index + 1) % c.size
	}
	return c.index
}

// Select jumps to i. Out-of-range indexes are ignored.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= c.size {
		return false
	}
	c.index = i
	return true
}

// Index is the current item.
func (c *Carousel) Index() int { return c.index }

// Len is the number of items.
func (c *Carousel) Len() int { return c.size }
