package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type jsonKV struct {
	Key string
	Val string
	Raw bool
}

func RenderJSON(reports []Report) string {
	if len(reports) == 1 {
		return renderJSONPayload(reports[0]) + "\n"
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, report := range reports {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(renderJSONPayload(report))
	}
	buf.WriteString("\n]\n")
	return buf.String()
}

func renderJSONPayload(report Report) string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	writeJSONField(&buf, "creatingLibrary", renderJSONObject(jsonCreatingLibraryFields(), false), true)
	buf.WriteString(",\n")
	media := []jsonKV{
		{Key: "@ref", Val: report.Ref},
		{Key: "track", Val: "[" + renderJSONObject(buildJSONTrackFields(report), true) + "]", Raw: true},
	}
	writeJSONField(&buf, "media", renderJSONObject(media, false), true)
	buf.WriteString("\n}")
	return buf.String()
}

func jsonCreatingLibraryFields() []jsonKV {
	return []jsonKV{
		{Key: "name", Val: AppName},
		{Key: "version", Val: FormatVersion(AppVersion)},
		{Key: "url", Val: AppURL},
	}
}

func buildJSONTrackFields(report Report) []jsonKV {
	format := report.Format
	fields := []jsonKV{
		{Key: "@type", Val: "Audio"},
		{Key: "Format", Val: format.Codec.String()},
		{Key: "MimeType", Val: format.SampleMimeType},
	}
	if report.BoxType != "" {
		fields = append(fields, jsonKV{Key: "CodecConfigurationBox", Val: report.BoxType})
	}
	if format.ID != "" {
		fields = append(fields, jsonKV{Key: "ID", Val: format.ID})
	}
	fields = append(fields,
		jsonKV{Key: "Channels", Val: strconv.Itoa(format.ChannelCount)},
		jsonKV{Key: "SamplingRate", Val: strconv.Itoa(format.SampleRate)},
	)
	if cfg := report.Config; cfg != nil {
		if layout := channelLayout(*cfg); layout != "" {
			fields = append(fields, jsonKV{Key: "ChannelLayout", Val: layout})
		}
		if _, code := serviceKind(*cfg); code != "" {
			fields = append(fields, jsonKV{Key: "ServiceKind", Val: code})
		}
	}
	if s := report.Summary; s != nil {
		fields = append(fields,
			jsonKV{Key: "FrameCount", Val: strconv.Itoa(s.Frames)},
			jsonKV{Key: "SamplesPerFrame", Val: strconv.Itoa(s.SamplesPerFrame())},
			jsonKV{Key: "SamplingCount", Val: strconv.FormatInt(s.Samples, 10)},
			jsonKV{Key: "Duration", Val: fmt.Sprintf("%.3f", s.Duration().Seconds())},
			jsonKV{Key: "StreamSize", Val: strconv.FormatInt(s.StreamBytes, 10)},
		)
		if s.NominalBitrateKbps > 0 {
			fields = append(fields,
				jsonKV{Key: "BitRate_Mode", Val: "CBR"},
				jsonKV{Key: "BitRate", Val: strconv.Itoa(s.NominalBitrateKbps * 1000)},
			)
		} else if br := s.Bitrate(); br > 0 {
			fields = append(fields, jsonKV{Key: "BitRate", Val: strconv.FormatFloat(br, 'f', 0, 64)})
		}
	}
	if format.Language != "" {
		fields = append(fields, jsonKV{Key: "Language", Val: format.Language})
	}
	return fields
}

func renderJSONObject(fields []jsonKV, multiline bool) string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, field := range fields {
		if i > 0 {
			if multiline {
				buf.WriteString(",\n")
			} else {
				buf.WriteString(",")
			}
		}
		writeJSONField(&buf, field.Key, field.Val, field.Raw)
	}
	buf.WriteString("}")
	return buf.String()
}

func writeJSONField(buf *bytes.Buffer, key, value string, raw bool) {
	buf.WriteString(renderJSONString(key))
	buf.WriteString(":")
	if raw {
		buf.WriteString(value)
		return
	}
	buf.WriteString(renderJSONString(value))
}

func renderJSONString(value string) string {
	data, _ := json.Marshal(value)
	return string(data)
}
