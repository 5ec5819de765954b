package ac3

import (
	"bytes"
	"io"
)

// ParseAc3SyncframeSize returns the size in bytes of the AC-3 syncframe that
// starts data, or LengthUnset if data is shorter than 5 bytes or fscod and
// frmsizecod hold reserved values.
func ParseAc3SyncframeSize(data []byte) int {
	if len(data) < 5 {
		return LengthUnset
	}
	fscod := int(data[4]&0xC0) >> 6
	frmsizecod := int(data[4] & 0x3F)
	return ac3SyncframeSize(fscod, frmsizecod)
}

func ac3SyncframeSize(fscod, frmsizecod int) int {
	half := frmsizecod / 2
	if fscod < 0 || fscod >= len(sampleRateByFscod) || frmsizecod < 0 ||
		half >= len(syncframeSizeWordsByHalfFrmsizecod44_1) {
		return LengthUnset
	}
	switch sampleRateByFscod[fscod] {
	case 44100:
		// Odd codes carry one extra word to absorb the fractional frame.
		return 2 * (syncframeSizeWordsByHalfFrmsizecod44_1[half] + frmsizecod%2)
	case 32000:
		return 6 * bitrateByHalfFrmsizecod[half]
	default: // 48000
		return 4 * bitrateByHalfFrmsizecod[half]
	}
}

// ParseEAc3SyncframeSize returns the size in bytes of the E-AC-3 syncframe
// that starts data, from its 11-bit frmsiz field. Input shorter than 4 bytes
// yields LengthUnset.
func ParseEAc3SyncframeSize(data []byte) int {
	if len(data) < 4 {
		return LengthUnset
	}
	frmsiz := int(data[2]&0x07)<<8 | int(data[3])
	return 2 * (frmsiz + 1)
}

// Ac3SyncframeAudioSampleCount returns the number of samples in any AC-3
// syncframe.
func Ac3SyncframeAudioSampleCount() int {
	return SamplesPerAc3Syncframe
}

// ParseEAc3SyncframeAudioSampleCount returns the number of samples in the
// E-AC-3 syncframe that starts data, or LengthUnset if data is shorter than
// 5 bytes.
func ParseEAc3SyncframeAudioSampleCount(data []byte) int {
	return ParseEAc3SyncframeAudioSampleCountAt(bytes.NewReader(data), 0)
}

// ParseEAc3SyncframeAudioSampleCountAt is ParseEAc3SyncframeAudioSampleCount
// for a syncframe starting at off in r. r is not otherwise consumed.
func ParseEAc3SyncframeAudioSampleCountAt(r io.ReaderAt, off int64) int {
	var b [1]byte
	if n, _ := r.ReadAt(b[:], off+4); n != 1 {
		return LengthUnset
	}
	// TS 102 366 E.1.2.2: reduced sample rates always carry 6 blocks.
	fscod := int(b[0]&0xC0) >> 6
	if fscod == 0x03 {
		return 6 * AudioSamplesPerAudioBlock
	}
	numblkscod := int(b[0]&0x30) >> 4
	return blocksPerSyncframeByNumblkscod[numblkscod] * AudioSamplesPerAudioBlock
}
