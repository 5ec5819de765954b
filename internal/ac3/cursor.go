package ac3

// BitReader is a big-endian bit cursor. Implementations must not read past
// their window; an overrun is reported through Err.
type BitReader interface {
	ReadBit() bool
	ReadBits(n int) uint32
	SkipBits(n int)
	Err() error
}

// ByteReader is a byte cursor with the same overrun contract as BitReader.
type ByteReader interface {
	ReadUnsignedByte() int
	SkipBytes(n int)
	Err() error
}

func lookupSampleRate(fscod int) (int, error) {
	rate, ok := SampleRate(fscod)
	if !ok {
		return 0, &DecodeError{Field: "fscod", Value: fscod}
	}
	return rate, nil
}

func lookupReducedSampleRate(fscod2 int) (int, error) {
	rate, ok := ReducedSampleRate(fscod2)
	if !ok {
		return 0, &DecodeError{Field: "fscod2", Value: fscod2}
	}
	return rate, nil
}

func lookupChannelCount(acmod int, lfeon bool) (int, error) {
	n, ok := ChannelCount(acmod, lfeon)
	if !ok {
		return 0, &DecodeError{Field: "acmod", Value: acmod}
	}
	return n, nil
}
