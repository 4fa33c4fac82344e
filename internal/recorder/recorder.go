package recorder

import "github.com/rajeshacpt/Invest-Guru/internal/model"

// Recorder keeps a local, write-only history of fetched quotes and submitted
// jobs for later analysis. It is never read back to serve data.
type Recorder interface {
	RecordQuote(q *model.Quote) error
	RecordJob(symbol, jobID string) error
	Close() error
}
