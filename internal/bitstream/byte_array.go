package bitstream

import "fmt"

// ByteArray is a byte cursor over a byte slice.
type ByteArray struct {
	data []byte
	pos  int
	err  error
}

func NewByteArray(data []byte) *ByteArray {
	return &ByteArray{data: data}
}

func (b *ByteArray) Position() int {
	return b.pos
}

func (b *ByteArray) BytesLeft() int {
	return len(b.data) - b.pos
}

func (b *ByteArray) Err() error {
	return b.err
}

// ReadUnsignedByte returns the next byte as 0..255.
func (b *ByteArray) ReadUnsignedByte() int {
	if b.err != nil {
		return 0
	}
	if b.pos >= len(b.data) {
		b.overrun(1)
		return 0
	}
	v := b.data[b.pos]
	b.pos++
	return int(v)
}

func (b *ByteArray) SkipBytes(n int) {
	if b.err != nil || n <= 0 {
		return
	}
	if n > b.BytesLeft() {
		b.overrun(n)
		return
	}
	b.pos += n
}

func (b *ByteArray) overrun(n int) {
	b.err = fmt.Errorf("%w: need %d bytes at byte %d of %d", ErrOverrun, n, b.pos, len(b.data))
	b.pos = len(b.data)
}
