package memfit

import "log/slog"

// Options controls simulation behavior.
type Options struct {
	// Logger receives one record per run and one warning per unplaced
	// process. If nil, logging is discarded.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}
