package logging

import (
	"context"
	"log/slog"
)

// AccountKey is the attribute carrying the authenticated account email.
const AccountKey = "account"

type accountCtxKey struct{}

// WithAccount returns ctx tagged with the caller's account email. Every
// record logged with that ctx carries it under AccountKey.
func WithAccount(ctx context.Context, email string) context.Context {
	if email == "" {
		return ctx
	}
	return context.WithValue(ctx, accountCtxKey{}, email)
}

// AccountFrom returns the email set by WithAccount, if any.
func AccountFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	email, ok := ctx.Value(accountCtxKey{}).(string)
	return email, ok && email != ""
}

// accountHandler adds the account attribute from the record's context.
type accountHandler struct {
	slog.Handler
}

func (h accountHandler) Handle(ctx context.Context, r slog.Record) error {
	if email, ok := AccountFrom(ctx); ok {
		r = r.Clone()
		r.AddAttrs(slog.String(AccountKey, email))
	}
	return h.Handler.Handle(ctx, r)
}

func (h accountHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return accountHandler{h.Handler.WithAttrs(attrs)}
}

func (h accountHandler) WithGroup(name string) slog.Handler {
	return accountHandler{h.Handler.WithGroup(name)}
}

// SlogLogger adapts *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. Records logged with a WithAccount context get the
// account attribute.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if _, ok := l.Handler().(accountHandler); !ok {
		l = slog.New(accountHandler{l.Handler()})
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
