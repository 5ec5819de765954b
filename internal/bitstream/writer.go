package bitstream

// Writer appends big-endian bit fields to a growing buffer.
type Writer struct {
	buf    []byte
	bitPos int
}

// WriteBits writes the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		bytePos := w.bitPos >> 3
		if bytePos >= len(w.buf) {
			w.buf = append(w.buf, 0)
		}
		if (v>>uint(i))&1 == 1 {
			w.buf[bytePos] |= 1 << uint(7-(w.bitPos&7))
		}
		w.bitPos++
	}
}

func (w *Writer) WriteBit(v bool) {
	if v {
		w.WriteBits(1, 1)
		return
	}
	w.WriteBits(0, 1)
}

// Pad extends the buffer with zero bytes until it is at least size bytes long.
func (w *Writer) Pad(size int) {
	for len(w.buf) < size {
		w.buf = append(w.buf, 0)
	}
	if w.bitPos < len(w.buf)*8 {
		w.bitPos = len(w.buf) * 8
	}
}

// Bytes returns the written data; a trailing partial byte is zero-filled.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return w.bitPos
}
