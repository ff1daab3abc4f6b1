package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/vantis-uk/vantis/pkg/utils/logging"
)

// Close closes closer and logs any error. A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Drain reads r to EOF so the underlying connection can be reused, then closes it.
// At most limit bytes are read.
func Drain(ctx context.Context, r io.ReadCloser, limit int64) {
	if r == nil {
		return
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(r, limit)); err != nil {
		logging.From(ctx).Debug("Failed to drain", slog.Any("error", err))
	}
	Close(ctx, r)
}
