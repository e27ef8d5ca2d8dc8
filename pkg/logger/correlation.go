package logger

import (
	"context"
	"log/slog"

	"challengecart/pkg/correlation"
)

// correlationHandler stamps every record with the correlation_id from the
// context, so one webhook delivery's lines can be joined across the handler,
// the dispatch steps and the outbound clients.
type correlationHandler struct {
	slog.Handler
}

func withCorrelation(inner slog.Handler) slog.Handler {
	return correlationHandler{Handler: inner}
}

func (h correlationHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := correlation.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String("correlation_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h correlationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return correlationHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h correlationHandler) WithGroup(name string) slog.Handler {
	return correlationHandler{Handler: h.Handler.WithGroup(name)}
}
