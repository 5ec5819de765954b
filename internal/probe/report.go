package probe

import (
	"github.com/autobrr/go-ac3info/internal/ac3"
)

type Field struct {
	Name  string
	Value string
}

// Report describes one analyzed file.
type Report struct {
	Ref      string
	FileSize int64
	// BoxType is "dac3" or "dec3" for Annex F input, empty for streams.
	BoxType string
	Format  ac3.Format
	// Summary is nil for Annex F input.
	Summary *ac3.Summary
	// Config is nil when the channel configuration is unknown.
	Config *ac3.ChannelConfig
	Fields  []Field
}

func findField(fields []Field, name string) string {
	for _, field := range fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

func codecInfo(codec ac3.Codec) string {
	switch codec {
	case ac3.CodecAC3:
		return "Audio Coding 3"
	case ac3.CodecEAC3:
		return "Enhanced AC-3"
	default:
		return ""
	}
}

func buildFields(report Report) []Field {
	format := report.Format
	fields := []Field{{Name: "Complete name", Value: report.Ref}}
	if report.FileSize > 0 {
		fields = append(fields, Field{Name: "File size", Value: formatBytes(report.FileSize)})
	}
	fields = append(fields,
		Field{Name: "Format", Value: format.Codec.String()},
		Field{Name: "Format/Info", Value: codecInfo(format.Codec)},
	)
	if report.BoxType != "" {
		fields = append(fields, Field{Name: "Codec configuration box", Value: report.BoxType})
	}
	if format.ID != "" {
		fields = append(fields, Field{Name: "ID", Value: format.ID})
	}
	if s := report.Summary; s != nil {
		if d := s.Duration(); d > 0 {
			fields = append(fields, Field{Name: "Duration", Value: formatDuration(d.Seconds())})
		}
		if s.NominalBitrateKbps > 0 {
			fields = append(fields,
				Field{Name: "Bit rate mode", Value: "Constant"},
				Field{Name: "Bit rate", Value: formatBitrateKbps(int64(s.NominalBitrateKbps))},
			)
		} else if br := s.Bitrate(); br > 0 {
			fields = append(fields, Field{Name: "Bit rate", Value: formatBitrate(br)})
		}
	}
	fields = append(fields, Field{Name: "Channel(s)", Value: formatChannels(format.ChannelCount)})
	if cfg := report.Config; cfg != nil {
		if layout := channelLayout(*cfg); layout != "" {
			fields = append(fields, Field{Name: "Channel layout", Value: layout})
		}
		if kind, code := serviceKind(*cfg); kind != "" {
			fields = append(fields, Field{Name: "Service kind", Value: kind + " (" + code + ")"})
		}
	}
	fields = append(fields, Field{Name: "Sampling rate", Value: formatSampleRate(format.SampleRate)})
	if s := report.Summary; s != nil {
		if rate := s.FrameRate(); rate > 0 {
			fields = append(fields, Field{Name: "Frame rate", Value: formatFrameRate(rate) + formatSPF(s.SamplesPerFrame())})
		}
		fields = append(fields, Field{Name: "Frame count", Value: formatThousands(int64(s.Frames))})
		fields = append(fields, Field{Name: "Stream size", Value: formatBytes(s.StreamBytes)})
		if s.Skipped > 0 {
			fields = append(fields, Field{Name: "Skipped bytes", Value: formatThousands(s.Skipped)})
		}
	}
	if format.Language != "" {
		fields = append(fields, Field{Name: "Language", Value: format.Language})
	}
	return fields
}
