package trace

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dflowlabs/reactor-go/reactor"
)

// SQLRecorder persists PropagationRecords to a relational database.
// Seeds and Executed are stored as JSON text; callers open db themselves
// (with modernc.org/sqlite or github.com/go-sql-driver/mysql blank-
// imported as appropriate) so SQLRecorder stays agnostic to connection
// lifecycle and pooling.
//
// Example:
//
//	db, _ := sql.Open("sqlite", "./audit.db")
//	recorder, err := trace.NewSQLRecorder(db, trace.DialectSQLite)
//	eng := reactor.New(reactor.WithRecorder(recorder))
type SQLRecorder struct {
	db      *sql.DB
	dialect Dialect
	retry   retryPolicy
}

// NewSQLRecorder opens (creating if necessary) the propagation_records
// table in db and returns a ready-to-use SQLRecorder.
func NewSQLRecorder(db *sql.DB, dialect Dialect) (*SQLRecorder, error) {
	r := &SQLRecorder{db: db, dialect: dialect, retry: defaultRetryPolicy()}
	if _, err := db.ExecContext(context.Background(), dialect.createTableSQL()); err != nil {
		return nil, fmt.Errorf("trace: create propagation_records table: %w", err)
	}
	return r, nil
}

// RecordPropagation writes rec, retrying transient failures with jittered
// exponential backoff. It is always called from a detached goroutine by
// Engine, so a slow retry sequence here never blocks a Launch.
func (r *SQLRecorder) RecordPropagation(ctx context.Context, rec reactor.PropagationRecord) error {
	seedsJSON, err := json.Marshal(rec.Seeds)
	if err != nil {
		return fmt.Errorf("trace: marshal seeds: %w", err)
	}
	executedJSON, err := json.Marshal(rec.Executed)
	if err != nil {
		return fmt.Errorf("trace: marshal executed: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < r.retry.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(computeBackoff(attempt-1, r.retry.baseDelay, r.retry.maxDelay)):
			}
		}

		_, execErr := r.db.ExecContext(ctx, r.dialect.upsertSQL(),
			rec.PropagationID, string(seedsJSON), string(executedJSON),
			rec.BarrierCoalesced, rec.Failures, rec.Duration.Nanoseconds())
		if execErr == nil {
			return nil
		}
		lastErr = execErr
	}
	return fmt.Errorf("trace: record propagation %s after %d attempts: %w", rec.PropagationID, r.retry.maxAttempts, lastErr)
}
