package ac3

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/autobrr/go-ac3info/internal/bitstream"
)

// Syncword starts every (E-)AC-3 syncframe.
const Syncword = 0x0B77

// Bytes needed to tell AC-3 from E-AC-3 and size the frame.
const probeLength = 6

// Largest syncframe: E-AC-3 frmsiz is 11 bits of 16-bit words.
const maxSyncframeSize = 2 * (0x7FF + 1)

// DetectCodec inspects bsid (the top 5 bits of byte 5) of the syncframe
// starting header. bsid 0..10 is AC-3 and 11..16 is E-AC-3. AC-3 bsid 9 and
// 10 are the half and quarter sample rate variants; the Scanner scales their
// rates, the header decoders do not.
func DetectCodec(header []byte) (Codec, bool) {
	if len(header) < probeLength || header[0] != Syncword>>8 || header[1] != Syncword&0xFF {
		return CodecUnknown, false
	}
	bsid := header[5] >> 3
	switch {
	case bsid <= 10:
		return CodecAC3, true
	case bsid <= 16:
		return CodecEAC3, true
	default:
		return CodecUnknown, false
	}
}

// Frame is one syncframe found by a Scanner.
type Frame struct {
	Codec  Codec
	Offset int64
	Size   int
	// SampleCount is the number of samples the frame contributes.
	SampleCount int
	// SubstreamID and Dependent are only meaningful for E-AC-3.
	SubstreamID int
	Dependent   bool
	// NominalBitrateKbps is the frmsizecod bitrate; zero for E-AC-3.
	NominalBitrateKbps int
	Format             Format
	Config             ChannelConfig
}

// Independent reports whether the frame carries samples of the main
// program, as opposed to a dependent or secondary E-AC-3 substream.
func (f Frame) Independent() bool {
	return !f.Dependent && f.SubstreamID == 0
}

// Scanner walks the syncframes of an (E-)AC-3 elementary stream. Bytes that
// do not start a decodable syncframe are skipped one at a time until the
// next syncword.
type Scanner struct {
	r       *bufio.Reader
	br      bitstream.BitArray
	offset  int64
	skipped int64
	frame   Frame
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 4*maxSyncframeSize)}
}

// Next advances to the next syncframe. It returns false at the end of the
// stream or on a read error, which Err reports.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for {
		head, err := s.r.Peek(probeLength)
		if len(head) < probeLength {
			s.finish(len(head), err)
			return false
		}
		codec, ok := DetectCodec(head)
		if !ok {
			s.skip(1)
			continue
		}
		size := syncframeSize(codec, head)
		if size < probeLength {
			s.skip(1)
			continue
		}
		data, err := s.r.Peek(size)
		if len(data) < size {
			// Truncated final frame.
			s.finish(len(data), err)
			return false
		}
		frame, ok := s.decode(codec, data)
		if !ok {
			s.skip(1)
			continue
		}
		frame.Offset = s.offset
		s.frame = frame
		if _, err := s.r.Discard(size); err != nil {
			s.err = err
			return false
		}
		s.offset += int64(size)
		return true
	}
}

func (s *Scanner) decode(codec Codec, data []byte) (Frame, bool) {
	frame := Frame{Codec: codec, Size: len(data)}
	s.br.Reset(data)
	var err error
	var ok bool
	switch codec {
	case CodecAC3:
		frame.Format, err = ParseAc3SyncframeFormat(&s.br, "", "", nil)
		frame.SampleCount = SamplesPerAc3Syncframe
		frame.NominalBitrateKbps, _ = NominalBitrateKbps(int(data[4] & 0x3F))
		frame.Config, ok = ac3SyncframeConfig(data)
		if shift := reducedRateShift(data[5] >> 3); shift > 0 {
			frame.Format.SampleRate >>= shift
			frame.NominalBitrateKbps >>= shift
		}
	default:
		frame.Format, err = ParseEAc3SyncframeFormat(&s.br, "", "", nil)
		frame.SampleCount = ParseEAc3SyncframeAudioSampleCount(data)
		frame.Dependent = data[2]>>6 == 1
		frame.SubstreamID = int(data[2]>>3) & 0x07
		frame.Config, ok = eac3SyncframeConfig(data)
	}
	if err != nil || !ok {
		return Frame{}, false
	}
	return frame, true
}

// reducedRateShift returns how far AC-3 bsid 9 (half rate) and 10 (quarter
// rate) scale the fscod sample rate and bitrate.
func reducedRateShift(bsid byte) uint {
	if bsid <= 8 {
		return 0
	}
	return uint(bsid - 8)
}

func (s *Scanner) skip(n int) {
	discarded, err := s.r.Discard(n)
	s.offset += int64(discarded)
	s.skipped += int64(discarded)
	if err != nil {
		s.err = err
	}
}

func (s *Scanner) finish(remaining int, err error) {
	s.offset += int64(remaining)
	s.skipped += int64(remaining)
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	if s.err == nil {
		s.err = io.EOF
	}
}

// Frame returns the syncframe found by the last successful call to Next.
func (s *Scanner) Frame() Frame {
	return s.frame
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}

// Skipped returns the number of bytes that were not part of any syncframe.
func (s *Scanner) Skipped() int64 {
	return s.skipped
}

func syncframeSize(codec Codec, header []byte) int {
	if codec == CodecAC3 {
		return ParseAc3SyncframeSize(header)
	}
	return ParseEAc3SyncframeSize(header)
}

// Summary aggregates the frames of one elementary stream.
type Summary struct {
	Codec Codec
	// Format and Config are taken from the first independent frame.
	Format      Format
	Config      ChannelConfig
	Frames      int
	Samples     int64
	StreamBytes int64
	Skipped     int64
	// NominalBitrateKbps is taken from the first frame; zero for E-AC-3.
	NominalBitrateKbps int
}

// Add accounts for f. Only independent frames contribute samples.
func (s *Summary) Add(f Frame) {
	s.StreamBytes += int64(f.Size)
	if !f.Independent() {
		return
	}
	if s.Frames == 0 {
		s.Codec = f.Codec
		s.Format = f.Format
		s.Config = f.Config
		s.NominalBitrateKbps = f.NominalBitrateKbps
	}
	s.Frames++
	s.Samples += int64(f.SampleCount)
}

func (s Summary) SamplesPerFrame() int {
	if s.Frames == 0 {
		return 0
	}
	return int(s.Samples / int64(s.Frames))
}

func (s Summary) Duration() time.Duration {
	if s.Format.SampleRate <= 0 {
		return 0
	}
	rate := int64(s.Format.SampleRate)
	whole := time.Duration(s.Samples/rate) * time.Second
	return whole + time.Duration(s.Samples%rate)*time.Second/time.Duration(rate)
}

// Bitrate returns the average bitrate in bits per second.
func (s Summary) Bitrate() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.StreamBytes*8) / d.Seconds()
}

func (s Summary) FrameRate() float64 {
	spf := s.SamplesPerFrame()
	if spf == 0 {
		return 0
	}
	return float64(s.Format.SampleRate) / float64(spf)
}

// Summarize scans r to the end.
func Summarize(r io.Reader) (Summary, error) {
	var summary Summary
	sc := NewScanner(r)
	for sc.Next() {
		summary.Add(sc.Frame())
	}
	summary.Skipped = sc.Skipped()
	if err := sc.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
