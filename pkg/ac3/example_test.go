package ac3_test

import (
	"fmt"

	"github.com/autobrr/go-ac3info/pkg/ac3"
)

func ExampleParseAc3SyncframeFormat() {
	frame, err := ac3.BuildSyncframe(ac3.SyncframeParams{
		Codec:      ac3.CodecAC3,
		Fscod:      1,
		Frmsizecod: 1,
		Acmod:      7,
		Lfeon:      true,
	})
	if err != nil {
		panic(err)
	}

	format, err := ac3.ParseAc3SyncframeFormat(ac3.NewBitArray(frame), "1", "eng", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(format.SampleMimeType, format.SampleRate, format.ChannelCount)
	fmt.Println(ac3.ParseAc3SyncframeSize(frame), ac3.Ac3SyncframeAudioSampleCount())
	// Output:
	// audio/ac3 44100 6
	// 140 1536
}

func ExampleParseEAc3AnnexFFormat() {
	dec3 := []byte{0x0C, 0x00, 0x20, 0x0F, 0x00}
	format, err := ac3.ParseEAc3AnnexFFormat(ac3.NewByteArray(dec3), "", "und", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(format.SampleMimeType, format.SampleRate, format.ChannelCount)
	// Output: audio/eac3 48000 6
}
