package ac3

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autobrr/go-ac3info/internal/bitstream"
)

func TestParseAc3SyncframeFormat_RoundTrip(t *testing.T) {
	for fscod := uint32(0); fscod < 3; fscod++ {
		for acmod := uint32(0); acmod < 8; acmod++ {
			for _, lfeon := range []bool{false, true} {
				name := fmt.Sprintf("fscod=%d/acmod=%d/lfeon=%v", fscod, acmod, lfeon)
				t.Run(name, func(t *testing.T) {
					frame := buildAc3Syncframe(ac3Header{fscod: fscod, frmsizecod: 8, bsid: 8, acmod: acmod, lfeon: lfeon}, 0)
					f, err := ParseAc3SyncframeFormat(bitstream.NewBitArray(frame), "", "", nil)
					require.NoError(t, err)

					wantRate, _ := SampleRate(int(fscod))
					wantChannels, _ := ChannelCount(int(acmod), lfeon)
					require.Equal(t, wantRate, f.SampleRate)
					require.Equal(t, wantChannels, f.ChannelCount)
					require.Equal(t, MimeTypeAC3, f.SampleMimeType)
				})
			}
		}
	}
}

func TestParseAc3SyncframeFormat_AdvancesCursor(t *testing.T) {
	frame := buildAc3Syncframe(ac3Header{fscod: 0, acmod: 2, bsid: 8, lfeon: true}, 0)
	br := bitstream.NewBitArray(frame)
	_, err := ParseAc3SyncframeFormat(br, "", "", nil)
	require.NoError(t, err)
	// syncinfo 40 + bsid/bsmod 8 + acmod 3 + dsurmod 2 + lfeon 1
	require.Equal(t, 54, br.Position())
}

func TestParseAc3SyncframeFormat_ReservedFscod(t *testing.T) {
	frame := buildAc3Syncframe(ac3Header{fscod: 3, acmod: 2, bsid: 8}, 0)
	_, err := ParseAc3SyncframeFormat(bitstream.NewBitArray(frame), "", "", nil)
	require.ErrorIs(t, err, ErrReservedCode)
}

func TestParseAc3SyncframeFormat_Truncated(t *testing.T) {
	frame := buildAc3Syncframe(ac3Header{fscod: 0, acmod: 7, bsid: 8}, 0)
	_, err := ParseAc3SyncframeFormat(bitstream.NewBitArray(frame[:6]), "", "", nil)
	require.ErrorIs(t, err, ErrShortHeader)
}

func TestParseEAc3SyncframeFormat_RoundTrip(t *testing.T) {
	for fscod := uint32(0); fscod < 3; fscod++ {
		for acmod := uint32(0); acmod < 8; acmod++ {
			for _, lfeon := range []bool{false, true} {
				frame := buildEAc3Syncframe(eac3Header{frmsiz: 5, fscod: fscod, fscod2OrNumblkscod: 3, acmod: acmod, lfeon: lfeon})
				f, err := ParseEAc3SyncframeFormat(bitstream.NewBitArray(frame), "", "", nil)
				require.NoError(t, err)

				wantRate, _ := SampleRate(int(fscod))
				wantChannels, _ := ChannelCount(int(acmod), lfeon)
				require.Equal(t, wantRate, f.SampleRate, "fscod=%d", fscod)
				require.Equal(t, wantChannels, f.ChannelCount, "acmod=%d lfeon=%v", acmod, lfeon)
				require.Equal(t, MimeTypeEAC3, f.SampleMimeType)
				require.Equal(t, CodecEAC3, f.Codec)
			}
		}
	}
}

func TestParseEAc3SyncframeFormat_ReducedSampleRate(t *testing.T) {
	for fscod2, want := range []int{24000, 22050, 16000} {
		frame := buildEAc3Syncframe(eac3Header{frmsiz: 5, fscod: 3, fscod2OrNumblkscod: uint32(fscod2), acmod: 2})
		f, err := ParseEAc3SyncframeFormat(bitstream.NewBitArray(frame), "7", "deu", nil)
		require.NoError(t, err)
		require.Equal(t, want, f.SampleRate)
		require.Equal(t, 2, f.ChannelCount)
		require.Equal(t, "7", f.ID)
		require.Equal(t, "deu", f.Language)
	}

	frame := buildEAc3Syncframe(eac3Header{frmsiz: 5, fscod: 3, fscod2OrNumblkscod: 3, acmod: 2})
	_, err := ParseEAc3SyncframeFormat(bitstream.NewBitArray(frame), "", "", nil)
	require.ErrorIs(t, err, ErrReservedCode)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "fscod2", decodeErr.Field)
}

func TestParseEAc3SyncframeFormat_Truncated(t *testing.T) {
	frame := buildEAc3Syncframe(eac3Header{frmsiz: 5, acmod: 7, lfeon: true})
	_, err := ParseEAc3SyncframeFormat(bitstream.NewBitArray(frame[:4]), "", "", nil)
	require.ErrorIs(t, err, ErrShortHeader)
}
