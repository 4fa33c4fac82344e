package recorder

import "github.com/rajeshacpt/Invest-Guru/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ *model.Quote) error { return nil }

func (n *NoopRecorder) RecordJob(_, _ string) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
