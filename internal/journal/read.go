package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/wire"
)

// ErrNotFound reports a lookup that matched no journal row.
var ErrNotFound = errors.New("journal: not found")

// CommandRecord is one journaled command with its identity metadata.
type CommandRecord struct {
	Fingerprint string
	CmdID       string
	Tag         string
	Seq         int64
	RecordedAt  time.Time
	Envelope    wire.Envelope
}

// PlanRecord is one journaled plan.
type PlanRecord struct {
	ID           string
	Slots        int
	Instructions int
	RecordedAt   time.Time
}

// ListCommands returns every journaled command in sequence order,
// decoding each stored envelope.
func (j *Journal) ListCommands(ctx context.Context) ([]CommandRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT fingerprint, cmd_id, tag, payload, seq, recorded_at
		FROM commands
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()

	var records []CommandRecord
	for rows.Next() {
		var (
			rec        CommandRecord
			payload    []byte
			recordedAt string
		)
		if err := rows.Scan(&rec.Fingerprint, &rec.CmdID, &rec.Tag, &payload, &rec.Seq, &recordedAt); err != nil {
			return nil, fmt.Errorf("list commands: %w", err)
		}
		rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("list commands: recorded_at: %w", err)
		}
		rec.Envelope, err = wire.DecodeEnvelope(payload)
		if err != nil {
			return nil, fmt.Errorf("list commands: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	return records, nil
}

// ListPlans returns journaled plan metadata, newest first.
func (j *Journal) ListPlans(ctx context.Context) ([]PlanRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, slots, instructions, recorded_at
		FROM plans
		ORDER BY recorded_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var (
			rec        PlanRecord
			recordedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Slots, &rec.Instructions, &recordedAt); err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		rec.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("list plans: recorded_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return records, nil
}

// GetPlan decodes the journaled plan with the given content id.
func (j *Journal) GetPlan(ctx context.Context, id string) (*plan.Plan, error) {
	var payload []byte
	err := j.db.QueryRowContext(ctx, `
		SELECT payload FROM plans WHERE id = ?
	`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	p, err := wire.DecodePlan(payload)
	if err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	return p, nil
}

// GetResponse decodes the journaled response for a command id.
func (j *Journal) GetResponse(ctx context.Context, cmdID string) (wire.ResponseEnvelope, error) {
	var payload []byte
	err := j.db.QueryRowContext(ctx, `
		SELECT payload FROM responses WHERE cmd_id = ?
	`, cmdID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return wire.ResponseEnvelope{}, fmt.Errorf("get response %s: %w", cmdID, ErrNotFound)
	}
	if err != nil {
		return wire.ResponseEnvelope{}, fmt.Errorf("get response %s: %w", cmdID, err)
	}
	env, err := wire.DecodeResponse(payload)
	if err != nil {
		return wire.ResponseEnvelope{}, fmt.Errorf("get response %s: %w", cmdID, err)
	}
	return env, nil
}
