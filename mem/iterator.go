package mem

// ReaderIter and WriterIter are cheap value types that advance through a
// view one pixel or one line at a time. They hold only the current pixel
// position: each Get or Set computes the channel's byte offset from that
// position, the same way ReaderView.Px and WriterView.Set do.

// ReaderIter walks a ReaderView.
type ReaderIter struct {
	view   ReaderView
	ix, iy int
}

// Get returns channel c's raw value at the iterator's current position.
func (it ReaderIter) Get(c Channel) float64 { return it.view.Px(c, it.ix, it.iy) }

// Next advances the iterator by one pixel in x.
func (it *ReaderIter) Next() { it.ix++ }

// NextLine advances the iterator to the start of the next line.
func (it *ReaderIter) NextLine() {
	it.ix = 0
	it.iy++
}

// Pos returns the iterator's current pixel coordinate.
func (it ReaderIter) Pos() (ix, iy int) { return it.ix, it.iy }

// WriterIter walks a WriterView.
type WriterIter struct {
	view   WriterView
	ix, iy int
}

// Set writes channel c's raw value at the iterator's current position.
func (it WriterIter) Set(c Channel, value float64) { it.view.Set(c, it.ix, it.iy, value) }

// SetTuple writes every channel of t at the iterator's current position.
func (it WriterIter) SetTuple(t ColourTuple) {
	for c := 0; c < t.Channels(); c++ {
		it.view.Set(Channel(c), it.ix, it.iy, t.Get(c))
	}
}

// Next advances the iterator by one pixel in x.
func (it *WriterIter) Next() { it.ix++ }

// NextLine advances the iterator to the start of the next line.
func (it *WriterIter) NextLine() {
	it.ix = 0
	it.iy++
}

// Pos returns the iterator's current pixel coordinate.
func (it WriterIter) Pos() (ix, iy int) { return it.ix, it.iy }
