package probe

import (
	"log/slog"
	"runtime"

	"github.com/autobrr/go-ac3info/internal/ac3"
)

type AnalyzeOptions struct {
	// AnnexF treats each file as a dac3/dec3 configuration box instead of
	// an elementary stream.
	AnnexF bool
	// AnnexFCodec selects the box layout for payloads that lack the 8-byte
	// size+type box header. Ignored when the header is present.
	AnnexFCodec ac3.Codec
	// TrackID and Language are copied into every decoded format.
	TrackID  string
	Language string
	// Parallel bounds the number of files analyzed at once.
	Parallel int
	Logger   *slog.Logger
}

func normalizeAnalyzeOptions(opts AnalyzeOptions) AnalyzeOptions {
	if opts.Parallel <= 0 {
		opts.Parallel = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}
