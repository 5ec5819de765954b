package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/autobrr/go-ac3info/internal/ac3"
	"github.com/autobrr/go-ac3info/internal/probe"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	Output   string
	AnnexF   string
	TrackID  string
	Language string
	LogFile  string
	Parallel int
	Verbose  bool
	Bom      bool
}

func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Output, "output", "o", "text", "output format: text or json")
	fs.StringVar(&opts.AnnexF, "annexf", "", "read files as dac3/dec3 boxes: auto, ac3 or eac3")
	fs.StringVar(&opts.TrackID, "track-id", "", "track id to attach to the reported format")
	fs.StringVar(&opts.Language, "language", "", "language tag to attach to the reported format")
	fs.StringVar(&opts.LogFile, "logfile", "", "also write the output to this file")
	fs.IntVarP(&opts.Parallel, "parallel", "j", runtime.GOMAXPROCS(0), "number of files analyzed at once")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&opts.Bom, "bom", false, "byte order mark for UTF-8 output (Windows only)")
}

func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Run(ctx context.Context, opts Options, files []string, stdout, stderr io.Writer) int {
	logger := NewLogger(stderr, opts.Verbose)
	if len(files) == 0 {
		fmt.Fprintln(stderr, "no input files")
		return exitError
	}

	if opts.Bom {
		writeBOM(stdout, stderr)
	}

	output, filesCount, err := runCore(ctx, opts, files, logger)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	fmt.Fprint(stdout, output)

	if opts.LogFile != "" {
		if err := writeLogFile(opts.LogFile, output, opts.Bom); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return exitError
		}
	}

	if filesCount > 0 {
		return exitOK
	}
	return exitError
}

func analyzeOptions(opts Options, logger *slog.Logger) (probe.AnalyzeOptions, error) {
	out := probe.AnalyzeOptions{
		TrackID:  opts.TrackID,
		Language: opts.Language,
		Parallel: opts.Parallel,
		Logger:   logger,
	}
	switch strings.ToLower(opts.AnnexF) {
	case "":
	case "auto":
		out.AnnexF = true
	case "ac3", "ac-3", "dac3":
		out.AnnexF = true
		out.AnnexFCodec = ac3.CodecAC3
	case "eac3", "e-ac-3", "ec3", "dec3":
		out.AnnexF = true
		out.AnnexFCodec = ac3.CodecEAC3
	default:
		return out, fmt.Errorf("unknown annexf mode: %s", opts.AnnexF)
	}
	return out, nil
}

func runCore(ctx context.Context, opts Options, files []string, logger *slog.Logger) (string, int, error) {
	if !strings.EqualFold(opts.Output, "text") && !strings.EqualFold(opts.Output, "json") {
		return "", 0, fmt.Errorf("output format not implemented: %s", opts.Output)
	}
	analyze, err := analyzeOptions(opts, logger)
	if err != nil {
		return "", 0, err
	}

	reports, count, err := probe.AnalyzeFiles(ctx, files, analyze)
	if err != nil {
		return "", 0, err
	}
	logger.Debug("analyzed", "files", count)

	if strings.EqualFold(opts.Output, "json") {
		return probe.RenderJSON(reports), count, nil
	}
	return probe.RenderText(reports), count, nil
}

// SynthOptions describes the frames written by Synth.
type SynthOptions struct {
	Codec  string
	Params ac3.SyncframeParams
	Frames int
	Out    string
}

func BindSynthFlags(fs *pflag.FlagSet, opts *SynthOptions) {
	fs.StringVar(&opts.Codec, "codec", "ac3", "ac3 or eac3")
	fs.IntVar(&opts.Params.Fscod, "fscod", 0, "sample rate code")
	fs.IntVar(&opts.Params.Fscod2, "fscod2", 0, "reduced sample rate code (E-AC-3, fscod 3)")
	fs.IntVar(&opts.Params.Numblkscod, "numblkscod", 3, "blocks per frame code (E-AC-3)")
	fs.IntVar(&opts.Params.Frmsizecod, "frmsizecod", 28, "frame size code (AC-3)")
	fs.IntVar(&opts.Params.Frmsiz, "frmsiz", 767, "frame size in words minus one (E-AC-3)")
	fs.IntVar(&opts.Params.Acmod, "acmod", 7, "audio coding mode")
	fs.BoolVar(&opts.Params.Lfeon, "lfeon", true, "LFE channel present")
	fs.IntVar(&opts.Params.Bsid, "bsid", 8, "bitstream id (AC-3, 9 and 10 halve and quarter the rate)")
	fs.IntVar(&opts.Params.Bsmod, "bsmod", 0, "bitstream mode (AC-3)")
	fs.IntVarP(&opts.Frames, "frames", "n", 1, "number of frames")
	fs.StringVar(&opts.Out, "out", "", "write raw frames to this file instead of hex to stdout")
}

// Synth writes synthetic syncframes, hex encoded to stdout or raw to a file.
func Synth(opts SynthOptions, stdout io.Writer) error {
	switch strings.ToLower(opts.Codec) {
	case "ac3", "ac-3":
		opts.Params.Codec = ac3.CodecAC3
	case "eac3", "e-ac-3", "ec3":
		opts.Params.Codec = ac3.CodecEAC3
	default:
		return fmt.Errorf("unknown codec: %s", opts.Codec)
	}
	if opts.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}
	frame, err := ac3.BuildSyncframe(opts.Params)
	if err != nil {
		return err
	}

	if opts.Out == "" {
		for range opts.Frames {
			fmt.Fprintln(stdout, hex.EncodeToString(frame))
		}
		return nil
	}

	file, err := os.Create(opts.Out)
	if err != nil {
		return err
	}
	for range opts.Frames {
		if _, err := file.Write(frame); err != nil {
			file.Close()
			return err
		}
	}
	return file.Close()
}

func writeBOM(stdout, stderr io.Writer) {
	if runtime.GOOS != "windows" {
		return
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	_, _ = stdout.Write(bom)
	_, _ = stderr.Write(bom)
}

func writeLogFile(path, output string, includeBOM bool) error {
	data := []byte(output)
	if includeBOM && runtime.GOOS == "windows" {
		data = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	return nil
}
