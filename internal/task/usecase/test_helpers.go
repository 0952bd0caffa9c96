package usecase

import (
	"context"
	"time"

	"duedate-service/pkg/duedate"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingRecognizer records how many times Detect ran; it never matches,
// which forces the phrase fallback and makes cache behavior observable.
type countingRecognizer struct {
	calls int
}

func (r *countingRecognizer) Detect(text string, now time.Time) []duedate.Match {
	r.calls++
	return nil
}

// newTestParser builds a parser with a deterministic UTC Monday-first
// calendar and the given recognizer.
func newTestParser(rec duedate.Recognizer) *duedate.Parser {
	cal := duedate.Calendar{Location: time.UTC, FirstWeekday: time.Monday}
	return duedate.NewParser(cal, duedate.WithRecognizer(rec))
}
