package bitstream

import (
	"errors"
	"fmt"

	"github.com/bluenviron/mediacommon/pkg/bits"
)

// ErrOverrun is returned by Err after a read past the end of the data.
var ErrOverrun = errors.New("bitstream: read past end of data")

// BitArray is a big-endian bit cursor over a byte slice.
type BitArray struct {
	data []byte
	pos  int
	err  error
}

func NewBitArray(data []byte) *BitArray {
	return &BitArray{data: data}
}

// Reset points the cursor at the start of data and clears any error.
func (b *BitArray) Reset(data []byte) {
	b.data = data
	b.pos = 0
	b.err = nil
}

// Position returns the current bit offset.
func (b *BitArray) Position() int {
	return b.pos
}

func (b *BitArray) BitsLeft() int {
	return len(b.data)*8 - b.pos
}

func (b *BitArray) Err() error {
	return b.err
}

func (b *BitArray) ReadBit() bool {
	if b.err != nil {
		return false
	}
	v, err := bits.ReadFlag(b.data, &b.pos)
	if err != nil {
		b.overrun(1)
		return false
	}
	return v
}

// ReadBits reads n bits (0-32) as an unsigned value.
func (b *BitArray) ReadBits(n int) uint32 {
	if b.err != nil || n == 0 {
		return 0
	}
	if n < 0 || n > 32 {
		b.err = fmt.Errorf("bitstream: invalid read width %d", n)
		return 0
	}
	v, err := bits.ReadBits(b.data, &b.pos, n)
	if err != nil {
		b.overrun(n)
		return 0
	}
	return uint32(v)
}

func (b *BitArray) SkipBits(n int) {
	if b.err != nil || n <= 0 {
		return
	}
	if n > b.BitsLeft() {
		b.overrun(n)
		return
	}
	b.pos += n
}

func (b *BitArray) overrun(n int) {
	b.err = fmt.Errorf("%w: need %d bits at bit %d of %d", ErrOverrun, n, b.pos, len(b.data)*8)
	b.pos = len(b.data) * 8
}
