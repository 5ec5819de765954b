package bitstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitArray_ReadBits(t *testing.T) {
	b := NewBitArray([]byte{0x0B, 0x77, 0xA5, 0xF0})

	require.Equal(t, uint32(0x0B77), b.ReadBits(16))
	require.Equal(t, uint32(0x2), b.ReadBits(2))
	require.True(t, b.ReadBit())
	require.False(t, b.ReadBit())
	require.Equal(t, uint32(0x5), b.ReadBits(4))
	require.Equal(t, 24, b.Position())
	require.Equal(t, 8, b.BitsLeft())
	require.Equal(t, uint32(0xF0), b.ReadBits(8))
	require.NoError(t, b.Err())
}

func TestBitArray_Read32(t *testing.T) {
	b := NewBitArray([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Equal(t, uint32(0xDEADBEEF), b.ReadBits(32))
	require.NoError(t, b.Err())
}

func TestBitArray_SkipBits(t *testing.T) {
	b := NewBitArray([]byte{0x00, 0x0F})
	b.SkipBits(12)
	require.Equal(t, uint32(0xF), b.ReadBits(4))
	require.NoError(t, b.Err())
}

func TestBitArray_OverrunIsSticky(t *testing.T) {
	b := NewBitArray([]byte{0xFF})
	require.Equal(t, uint32(0x7), b.ReadBits(3))
	require.Equal(t, uint32(0), b.ReadBits(6))
	require.True(t, errors.Is(b.Err(), ErrOverrun))
	require.Equal(t, 0, b.BitsLeft())

	require.False(t, b.ReadBit())
	require.Equal(t, uint32(0), b.ReadBits(1))
	require.True(t, errors.Is(b.Err(), ErrOverrun))
}

func TestBitArray_SkipPastEnd(t *testing.T) {
	b := NewBitArray([]byte{0xFF, 0xFF})
	b.SkipBits(17)
	require.ErrorIs(t, b.Err(), ErrOverrun)
}

func TestBitArray_InvalidWidth(t *testing.T) {
	b := NewBitArray(make([]byte, 8))
	require.Equal(t, uint32(0), b.ReadBits(33))
	require.Error(t, b.Err())
}

func TestBitArray_Reset(t *testing.T) {
	b := NewBitArray(nil)
	b.ReadBit()
	require.Error(t, b.Err())

	b.Reset([]byte{0x80})
	require.NoError(t, b.Err())
	require.True(t, b.ReadBit())
}

func TestByteArray(t *testing.T) {
	b := NewByteArray([]byte{0x10, 0x20, 0x30, 0xFF})
	require.Equal(t, 0x10, b.ReadUnsignedByte())
	b.SkipBytes(2)
	require.Equal(t, 255, b.ReadUnsignedByte())
	require.Equal(t, 0, b.BytesLeft())
	require.NoError(t, b.Err())

	require.Equal(t, 0, b.ReadUnsignedByte())
	require.ErrorIs(t, b.Err(), ErrOverrun)
}

func TestByteArray_SkipPastEnd(t *testing.T) {
	b := NewByteArray([]byte{0x01})
	b.SkipBytes(2)
	require.ErrorIs(t, b.Err(), ErrOverrun)
	require.Equal(t, 0, b.ReadUnsignedByte())
}

func TestWriter_RoundTrip(t *testing.T) {
	var w Writer
	w.WriteBits(0x0B77, 16)
	w.WriteBits(0x2, 2)
	w.WriteBit(true)
	w.WriteBits(0x1F, 5)
	require.Equal(t, 24, w.Len())
	require.Equal(t, []byte{0x0B, 0x77, 0xBF}, w.Bytes())

	w.WriteBits(1, 1)
	w.Pad(6)
	require.Equal(t, []byte{0x0B, 0x77, 0xBF, 0x80, 0x00, 0x00}, w.Bytes())
	require.Equal(t, 48, w.Len())

	b := NewBitArray(w.Bytes())
	require.Equal(t, uint32(0x0B77), b.ReadBits(16))
	require.Equal(t, uint32(0x2), b.ReadBits(2))
	require.True(t, b.ReadBit())
	require.Equal(t, uint32(0x1F), b.ReadBits(5))
	require.True(t, b.ReadBit())
}
