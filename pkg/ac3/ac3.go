// Package ac3 is the public surface of go-ac3info: decoding of (E-)AC-3
// Annex F configuration boxes and syncframe headers, syncframe sizing and a
// frame scanner for elementary streams.
package ac3

import (
	"io"

	"github.com/autobrr/go-ac3info/internal/ac3"
	"github.com/autobrr/go-ac3info/internal/bitstream"
)

// Types
type Codec = ac3.Codec
type Format = ac3.Format
type DrmInitData = ac3.DrmInitData
type DecodeError = ac3.DecodeError
type BitReader = ac3.BitReader
type ByteReader = ac3.ByteReader
type Frame = ac3.Frame
type Scanner = ac3.Scanner
type Summary = ac3.Summary
type ChannelConfig = ac3.ChannelConfig
type SyncframeParams = ac3.SyncframeParams
type BitArray = bitstream.BitArray
type ByteArray = bitstream.ByteArray

// Constants
const (
	CodecUnknown = ac3.CodecUnknown
	CodecAC3     = ac3.CodecAC3
	CodecEAC3    = ac3.CodecEAC3

	MimeTypeAC3  = ac3.MimeTypeAC3
	MimeTypeEAC3 = ac3.MimeTypeEAC3

	NoValue     = ac3.NoValue
	LengthUnset = ac3.LengthUnset
	Syncword    = ac3.Syncword

	AudioSamplesPerAudioBlock = ac3.AudioSamplesPerAudioBlock
	SamplesPerAc3Syncframe    = ac3.SamplesPerAc3Syncframe
)

// Errors
var (
	ErrReservedCode = ac3.ErrReservedCode
	ErrShortHeader  = ac3.ErrShortHeader
	ErrOverrun      = bitstream.ErrOverrun
)

// Cursors
func NewBitArray(data []byte) *BitArray {
	return bitstream.NewBitArray(data)
}

func NewByteArray(data []byte) *ByteArray {
	return bitstream.NewByteArray(data)
}

// Header decoding
func ParseAc3AnnexFFormat(data ByteReader, trackID, language string, drm DrmInitData) (Format, error) {
	return ac3.ParseAc3AnnexFFormat(data, trackID, language, drm)
}

func ParseEAc3AnnexFFormat(data ByteReader, trackID, language string, drm DrmInitData) (Format, error) {
	return ac3.ParseEAc3AnnexFFormat(data, trackID, language, drm)
}

func ParseAc3AnnexFConfig(payload []byte) (ChannelConfig, bool) {
	return ac3.ParseAc3AnnexFConfig(payload)
}

func ParseEAc3AnnexFConfig(payload []byte) (ChannelConfig, bool) {
	return ac3.ParseEAc3AnnexFConfig(payload)
}

func ParseAc3SyncframeFormat(data BitReader, trackID, language string, drm DrmInitData) (Format, error) {
	return ac3.ParseAc3SyncframeFormat(data, trackID, language, drm)
}

func ParseEAc3SyncframeFormat(data BitReader, trackID, language string, drm DrmInitData) (Format, error) {
	return ac3.ParseEAc3SyncframeFormat(data, trackID, language, drm)
}

// Sizes and sample counts
func ParseAc3SyncframeSize(data []byte) int {
	return ac3.ParseAc3SyncframeSize(data)
}

func ParseEAc3SyncframeSize(data []byte) int {
	return ac3.ParseEAc3SyncframeSize(data)
}

func Ac3SyncframeAudioSampleCount() int {
	return ac3.Ac3SyncframeAudioSampleCount()
}

func ParseEAc3SyncframeAudioSampleCount(data []byte) int {
	return ac3.ParseEAc3SyncframeAudioSampleCount(data)
}

func ParseEAc3SyncframeAudioSampleCountAt(r io.ReaderAt, off int64) int {
	return ac3.ParseEAc3SyncframeAudioSampleCountAt(r, off)
}

// Tables
func SampleRate(fscod int) (int, bool) {
	return ac3.SampleRate(fscod)
}

func ReducedSampleRate(fscod2 int) (int, bool) {
	return ac3.ReducedSampleRate(fscod2)
}

func ChannelCount(acmod int, lfeon bool) (int, bool) {
	return ac3.ChannelCount(acmod, lfeon)
}

// Streams
func DetectCodec(header []byte) (Codec, bool) {
	return ac3.DetectCodec(header)
}

func NewScanner(r io.Reader) *Scanner {
	return ac3.NewScanner(r)
}

func Summarize(r io.Reader) (Summary, error) {
	return ac3.Summarize(r)
}

func BuildSyncframe(p SyncframeParams) ([]byte, error) {
	return ac3.BuildSyncframe(p)
}
