package ac3

import "github.com/autobrr/go-ac3info/internal/bitstream"

type ac3Header struct {
	fscod      uint32
	frmsizecod uint32
	bsid       uint32
	bsmod      uint32
	acmod      uint32
	lfeon      bool
}

// buildAc3Syncframe writes an AC-3 syncinfo and bsi prefix and pads it to
// size bytes (at least 8). The optional mix level fields are written as 0b01
// so that a parser skipping the wrong set misreads lfeon.
func buildAc3Syncframe(h ac3Header, size int) []byte {
	var w bitstream.Writer
	w.WriteBits(Syncword, 16)
	w.WriteBits(0, 16) // crc1
	w.WriteBits(h.fscod, 2)
	w.WriteBits(h.frmsizecod, 6)
	w.WriteBits(h.bsid, 5)
	w.WriteBits(h.bsmod, 3)
	w.WriteBits(h.acmod, 3)
	if h.acmod&1 != 0 && h.acmod != 1 {
		w.WriteBits(1, 2) // cmixlev
	}
	if h.acmod&4 != 0 {
		w.WriteBits(1, 2) // surmixlev
	}
	if h.acmod == 2 {
		w.WriteBits(1, 2) // dsurmod
	}
	w.WriteBit(h.lfeon)
	w.Pad(max(size, 8))
	return w.Bytes()
}

type eac3Header struct {
	strmtype    uint32
	substreamid uint32
	frmsiz      uint32
	fscod       uint32
	// fscod2 when fscod is 3, numblkscod otherwise.
	fscod2OrNumblkscod uint32
	acmod              uint32
	lfeon              bool
}

// buildEAc3Syncframe writes an E-AC-3 header (bsid 16) padded to the size
// signalled by frmsiz.
func buildEAc3Syncframe(h eac3Header) []byte {
	var w bitstream.Writer
	w.WriteBits(Syncword, 16)
	w.WriteBits(h.strmtype, 2)
	w.WriteBits(h.substreamid, 3)
	w.WriteBits(h.frmsiz, 11)
	w.WriteBits(h.fscod, 2)
	w.WriteBits(h.fscod2OrNumblkscod, 2)
	w.WriteBits(h.acmod, 3)
	w.WriteBit(h.lfeon)
	w.WriteBits(16, 5) // bsid
	w.Pad(2 * int(h.frmsiz+1))
	return w.Bytes()
}
