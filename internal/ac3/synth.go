package ac3

import (
	"fmt"

	"github.com/autobrr/go-ac3info/internal/bitstream"
)

// SyncframeParams describes a syncframe header for BuildSyncframe.
type SyncframeParams struct {
	Codec Codec
	Fscod int
	// Fscod2 is used by E-AC-3 when Fscod is 3, Numblkscod otherwise.
	Fscod2     int
	Numblkscod int
	// Frmsizecod sizes AC-3 frames, Frmsiz E-AC-3 frames.
	Frmsizecod int
	Frmsiz     int
	Acmod      int
	Lfeon      bool
	// Bsid and Bsmod are AC-3 only. A zero Bsid is written as 8.
	Bsid  int
	Bsmod int
}

// BuildSyncframe returns a zero-payload syncframe whose header carries p and
// whose length matches the size the header signals. CRC fields are zero.
func BuildSyncframe(p SyncframeParams) ([]byte, error) {
	if p.Acmod < 0 || p.Acmod > 7 {
		return nil, &DecodeError{Field: "acmod", Value: p.Acmod}
	}
	switch p.Codec {
	case CodecAC3:
		return writeAc3Syncframe(p)
	case CodecEAC3:
		return writeEAc3Syncframe(p)
	default:
		return nil, fmt.Errorf("ac3: cannot build syncframe for codec %s", p.Codec)
	}
}

func writeAc3Syncframe(p SyncframeParams) ([]byte, error) {
	if _, err := lookupSampleRate(p.Fscod); err != nil {
		return nil, err
	}
	size := ac3SyncframeSize(p.Fscod, p.Frmsizecod)
	if size == LengthUnset {
		return nil, &DecodeError{Field: "frmsizecod", Value: p.Frmsizecod}
	}

	bsid := p.Bsid
	if bsid == 0 {
		bsid = 8
	}
	if bsid < 0 || bsid > 10 {
		return nil, &DecodeError{Field: "bsid", Value: bsid}
	}
	if p.Bsmod < 0 || p.Bsmod > 7 {
		return nil, &DecodeError{Field: "bsmod", Value: p.Bsmod}
	}

	var w bitstream.Writer
	w.WriteBits(Syncword, 16)
	w.WriteBits(0, 16) // crc1
	w.WriteBits(uint32(p.Fscod), 2)
	w.WriteBits(uint32(p.Frmsizecod), 6)
	w.WriteBits(uint32(bsid), 5)
	w.WriteBits(uint32(p.Bsmod), 3)
	w.WriteBits(uint32(p.Acmod), 3)
	if p.Acmod&0x01 != 0 && p.Acmod != 1 {
		w.WriteBits(0, 2) // cmixlev -3 dB
	}
	if p.Acmod&0x04 != 0 {
		w.WriteBits(0, 2) // surmixlev -3 dB
	}
	if p.Acmod == 2 {
		w.WriteBits(0, 2) // dsurmod not indicated
	}
	w.WriteBit(p.Lfeon)
	w.WriteBits(27, 5) // dialnorm -27 dB
	w.Pad(size)
	return w.Bytes(), nil
}

func writeEAc3Syncframe(p SyncframeParams) ([]byte, error) {
	code := p.Numblkscod
	if p.Fscod == 3 {
		if _, err := lookupReducedSampleRate(p.Fscod2); err != nil {
			return nil, err
		}
		code = p.Fscod2
	} else {
		if _, err := lookupSampleRate(p.Fscod); err != nil {
			return nil, err
		}
		if _, ok := BlocksPerSyncframe(p.Numblkscod); !ok {
			return nil, &DecodeError{Field: "numblkscod", Value: p.Numblkscod}
		}
	}
	// The header alone takes 6 bytes.
	if p.Frmsiz < 2 || p.Frmsiz > 0x7FF {
		return nil, &DecodeError{Field: "frmsiz", Value: p.Frmsiz}
	}

	var w bitstream.Writer
	w.WriteBits(Syncword, 16)
	w.WriteBits(0, 2) // strmtype: independent
	w.WriteBits(0, 3) // substreamid
	w.WriteBits(uint32(p.Frmsiz), 11)
	w.WriteBits(uint32(p.Fscod), 2)
	w.WriteBits(uint32(code), 2)
	w.WriteBits(uint32(p.Acmod), 3)
	w.WriteBit(p.Lfeon)
	w.WriteBits(16, 5) // bsid
	w.Pad(2 * (p.Frmsiz + 1))
	return w.Bytes(), nil
}
