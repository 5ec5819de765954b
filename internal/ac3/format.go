package ac3

const (
	// NoValue marks a Format field that the decoded header does not carry.
	NoValue = -1
	// LengthUnset is returned by size and sample count queries on short or
	// reserved input.
	LengthUnset = -1
)

const (
	MimeTypeAC3  = "audio/ac3"
	MimeTypeEAC3 = "audio/eac3"
)

type Codec int

const (
	CodecUnknown Codec = iota
	CodecAC3
	CodecEAC3
)

func (c Codec) String() string {
	switch c {
	case CodecAC3:
		return "AC-3"
	case CodecEAC3:
		return "E-AC-3"
	default:
		return "unknown"
	}
}

func (c Codec) MimeType() string {
	switch c {
	case CodecAC3:
		return MimeTypeAC3
	case CodecEAC3:
		return MimeTypeEAC3
	default:
		return ""
	}
}

// DrmInitData is opaque DRM metadata. Decoders copy it into the Format
// without looking at it.
type DrmInitData any

// Format describes an audio track as far as its (E-)AC-3 header allows.
type Format struct {
	ID             string
	SampleMimeType string
	Codec          Codec
	// Bitrate and MaxInputSize are NoValue: neither box nor syncframe header
	// shape carries them in a form these decoders interpret.
	Bitrate        int
	MaxInputSize   int
	ChannelCount   int
	SampleRate     int
	DrmInitData    DrmInitData
	SelectionFlags int
	Language       string
}

func newAudioSampleFormat(codec Codec, trackID string, channelCount, sampleRate int, drm DrmInitData, language string) Format {
	return Format{
		ID:             trackID,
		SampleMimeType: codec.MimeType(),
		Codec:          codec,
		Bitrate:        NoValue,
		MaxInputSize:   NoValue,
		ChannelCount:   channelCount,
		SampleRate:     sampleRate,
		DrmInitData:    drm,
		Language:       language,
	}
}
