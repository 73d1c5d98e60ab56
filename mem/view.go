package mem

import (
	"encoding/binary"

	"github.com/ausocean/lenscorr/errkind"
)

// ReaderView is a read-only, non-owning window over a caller-allocated pixel
// buffer under a Storage descriptor. Its lifetime is bounded by the
// caller's buffer; the view itself owns nothing.
type ReaderView struct {
	buf     []byte
	width   int
	height  int
	storage Storage
	aspect  float64
}

// WriterView is the write-only counterpart of ReaderView.
type WriterView struct {
	buf     []byte
	width   int
	height  int
	storage Storage
	aspect  float64
}

func validateView(buf []byte, width, height int, s Storage) error {
	if width <= 0 || height <= 0 {
		return errkind.NewIllegalArgument("mem: view dimensions must be positive, got %dx%d", width, height)
	}
	need := requiredBytes(width, height, s)
	if len(buf) < need {
		return errkind.NewIllegalArgument("mem: buffer too small: need %d bytes, got %d", need, len(buf))
	}
	return nil
}

func requiredBytes(width, height int, s Storage) int {
	if s.Planar() {
		return s.PlaneBytes(width, height) * s.Channels()
	}
	return s.LineBytes(width) * height
}

// NewReaderView wraps buf as a read-only view. The aspect ratio defaults to
// width/height; override it with WithAspect to model non-square sensor
// pixels.
func NewReaderView(buf []byte, width, height int, s Storage) (ReaderView, error) {
	if err := validateView(buf, width, height, s); err != nil {
		return ReaderView{}, err
	}
	return ReaderView{buf: buf, width: width, height: height, storage: s, aspect: float64(width) / float64(height)}, nil
}

// NewWriterView wraps buf as a write-only view.
func NewWriterView(buf []byte, width, height int, s Storage) (WriterView, error) {
	if err := validateView(buf, width, height, s); err != nil {
		return WriterView{}, err
	}
	return WriterView{buf: buf, width: width, height: height, storage: s, aspect: float64(width) / float64(height)}, nil
}

// WithAspect returns a copy of v with the aspect ratio overridden.
func (v ReaderView) WithAspect(aspect float64) ReaderView { v.aspect = aspect; return v }

// WithAspect returns a copy of v with the aspect ratio overridden.
func (v WriterView) WithAspect(aspect float64) WriterView { v.aspect = aspect; return v }

func (v ReaderView) Width() int       { return v.width }
func (v ReaderView) Height() int      { return v.height }
func (v ReaderView) Storage() Storage { return v.storage }
func (v ReaderView) Aspect() float64  { return v.aspect }

func (v WriterView) Width() int       { return v.width }
func (v WriterView) Height() int      { return v.height }
func (v WriterView) Storage() Storage { return v.storage }
func (v WriterView) Aspect() float64  { return v.aspect }

// offset computes the byte offset of channel c at pixel (ix, iy) under s.
func offset(s Storage, width, height int, c Channel, ix, iy int) int {
	if s.Planar() {
		plane := int(c) * s.PlaneBytes(width, height)
		return plane + iy*s.LineBytes(width) + ix*s.ChannelBytes()
	}
	return iy*s.LineBytes(width) + ix*s.PixelStride() + s.Offset(c)
}

func decode(buf []byte, off int, depth Depth) float64 {
	switch depth {
	case Depth8:
		return float64(buf[off])
	case Depth16:
		return float64(binary.LittleEndian.Uint16(buf[off : off+2]))
	default:
		return float64(binary.LittleEndian.Uint32(buf[off : off+4]))
	}
}

func encode(buf []byte, off int, depth Depth, v float64) {
	switch depth {
	case Depth8:
		buf[off] = byte(v)
	case Depth16:
		binary.LittleEndian.PutUint16(buf[off:off+2], uint16(v))
	default:
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(v))
	}
}

// Px returns the raw channel value at (ix, iy) as a float64.
func (v ReaderView) Px(c Channel, ix, iy int) float64 {
	off := offset(v.storage, v.width, v.height, c, ix, iy)
	return decode(v.buf, off, v.storage.Depth())
}

// Set writes the raw channel value at (ix, iy).
func (v WriterView) Set(c Channel, ix, iy int, value float64) {
	off := offset(v.storage, v.width, v.height, c, ix, iy)
	encode(v.buf, off, v.storage.Depth(), value)
}

// Iter returns a scanline iterator positioned at (ix, iy).
func (v ReaderView) Iter(ix, iy int) ReaderIter {
	return ReaderIter{view: v, ix: ix, iy: iy}
}

// Iter returns a scanline iterator positioned at (ix, iy).
func (v WriterView) Iter(ix, iy int) WriterIter {
	return WriterIter{view: v, ix: ix, iy: iy}
}
