package ac3

const (
	// AudioSamplesPerAudioBlock is the number of new samples per audio block.
	AudioSamplesPerAudioBlock = 256
	// SamplesPerAc3Syncframe is the sample count of every AC-3
	// syncframe: 6 blocks of 256 samples.
	SamplesPerAc3Syncframe = 6 * AudioSamplesPerAudioBlock
)

// Indexed by numblkscod.
var blocksPerSyncframeByNumblkscod = [4]int{1, 2, 3, 6}

// Indexed by fscod.
var sampleRateByFscod = [3]int{48000, 44100, 32000}

// Indexed by fscod2 (E-AC-3 reduced sample rates).
var sampleRateByFscod2 = [3]int{24000, 22050, 16000}

// Full-bandwidth channels, indexed by acmod.
var channelCountByAcmod = [8]int{2, 1, 2, 3, 3, 4, 4, 5}

// Nominal bitrates in kbps, indexed by frmsizecod / 2 (TS 102 366 table 4.13).
var bitrateByHalfFrmsizecod = [19]int{32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 448, 512, 576, 640}

// 16-bit words per syncframe at 44.1 kHz, indexed by frmsizecod / 2
// (TS 102 366 table 4.13).
var syncframeSizeWordsByHalfFrmsizecod44_1 = [19]int{69, 87, 104, 121, 139, 174, 208, 243, 278, 348, 417, 487, 557, 696, 835, 975, 1114, 1253, 1393}

// SampleRate returns the sample rate for fscod.
func SampleRate(fscod int) (int, bool) {
	if fscod < 0 || fscod >= len(sampleRateByFscod) {
		return 0, false
	}
	return sampleRateByFscod[fscod], true
}

// ReducedSampleRate returns the E-AC-3 sample rate for fscod2, used when
// fscod is 3.
func ReducedSampleRate(fscod2 int) (int, bool) {
	if fscod2 < 0 || fscod2 >= len(sampleRateByFscod2) {
		return 0, false
	}
	return sampleRateByFscod2[fscod2], true
}

// ChannelCount returns the channel count for acmod, plus one when the LFE
// channel is present.
func ChannelCount(acmod int, lfeon bool) (int, bool) {
	if acmod < 0 || acmod >= len(channelCountByAcmod) {
		return 0, false
	}
	n := channelCountByAcmod[acmod]
	if lfeon {
		n++
	}
	return n, true
}

func BlocksPerSyncframe(numblkscod int) (int, bool) {
	if numblkscod < 0 || numblkscod >= len(blocksPerSyncframeByNumblkscod) {
		return 0, false
	}
	return blocksPerSyncframeByNumblkscod[numblkscod], true
}

// NominalBitrateKbps returns the AC-3 bitrate signalled by frmsizecod.
func NominalBitrateKbps(frmsizecod int) (int, bool) {
	half := frmsizecod / 2
	if frmsizecod < 0 || half >= len(bitrateByHalfFrmsizecod) {
		return 0, false
	}
	return bitrateByHalfFrmsizecod[half], true
}
