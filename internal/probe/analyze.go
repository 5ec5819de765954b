package probe

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/autobrr/go-ac3info/internal/ac3"
	"github.com/autobrr/go-ac3info/internal/bitstream"
)

// Annex F boxes are a handful of bytes; anything larger is not one.
const maxAnnexFBoxSize = 4096

var (
	ErrNoSyncframes  = errors.New("no (E-)AC-3 syncframes found")
	ErrUnknownBox    = errors.New("annex f payload has no dac3/dec3 box header")
	ErrAnnexFTooLong = errors.New("annex f box too large")
)

func AnalyzeFile(ctx context.Context, path string, opts AnalyzeOptions) (Report, error) {
	opts = normalizeAnalyzeOptions(opts)
	file, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Report{}, err
	}
	opts.Logger.Debug("analyze", "path", path, "size", info.Size(), "annexf", opts.AnnexF)

	var report Report
	if opts.AnnexF {
		report, err = analyzeAnnexF(file, opts)
	} else {
		report, err = analyzeStream(ctx, file, opts)
	}
	if err != nil {
		return Report{}, err
	}
	report.Ref = path
	report.FileSize = info.Size()
	report.Fields = buildFields(report)
	return report, nil
}

func AnalyzeFiles(ctx context.Context, paths []string, opts AnalyzeOptions) ([]Report, int, error) {
	opts = normalizeAnalyzeOptions(opts)
	expanded, err := expandPaths(paths)
	if err != nil {
		return nil, 0, err
	}

	reports := make([]Report, len(expanded))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i, path := range expanded {
		g.Go(func() error {
			report, err := AnalyzeFile(ctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return reports, len(reports), nil
}

func analyzeStream(ctx context.Context, r io.Reader, opts AnalyzeOptions) (Report, error) {
	summary, err := ac3.Summarize(&contextReader{ctx: ctx, r: r})
	if err != nil {
		return Report{}, err
	}
	if summary.Frames == 0 {
		return Report{}, ErrNoSyncframes
	}
	if summary.Skipped > 0 {
		opts.Logger.Warn("skipped bytes outside syncframes", "bytes", summary.Skipped)
	}
	format := summary.Format
	format.ID = opts.TrackID
	format.Language = opts.Language
	return Report{Format: format, Summary: &summary, Config: &summary.Config}, nil
}

func analyzeAnnexF(r io.Reader, opts AnalyzeOptions) (Report, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxAnnexFBoxSize+1))
	if err != nil {
		return Report{}, err
	}
	if len(data) > maxAnnexFBoxSize {
		return Report{}, ErrAnnexFTooLong
	}
	payload, boxType, err := splitAnnexFBox(data, opts.AnnexFCodec)
	if err != nil {
		return Report{}, err
	}

	cursor := bitstream.NewByteArray(payload)
	var format ac3.Format
	var cfg ac3.ChannelConfig
	if boxType == "dec3" {
		format, err = ac3.ParseEAc3AnnexFFormat(cursor, opts.TrackID, opts.Language, nil)
		cfg, _ = ac3.ParseEAc3AnnexFConfig(payload)
	} else {
		format, err = ac3.ParseAc3AnnexFFormat(cursor, opts.TrackID, opts.Language, nil)
		cfg, _ = ac3.ParseAc3AnnexFConfig(payload)
	}
	if err != nil {
		return Report{}, err
	}
	return Report{BoxType: boxType, Format: format, Config: &cfg}, nil
}

// splitAnnexFBox strips an optional size+type box header. Without one, codec
// decides how the payload is read.
func splitAnnexFBox(data []byte, codec ac3.Codec) ([]byte, string, error) {
	if len(data) >= 8 {
		size := int(binary.BigEndian.Uint32(data[0:4]))
		boxType := string(data[4:8])
		if (boxType == "dac3" || boxType == "dec3") && size >= 8 && size <= len(data) {
			return data[8:size], boxType, nil
		}
	}
	switch codec {
	case ac3.CodecAC3:
		return data, "dac3", nil
	case ac3.CodecEAC3:
		return data, "dec3", nil
	default:
		return nil, "", ErrUnknownBox
	}
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func expandPaths(paths []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			expanded = append(expanded, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			expanded = append(expanded, filepath.Join(path, name))
		}
	}
	return expanded, nil
}
