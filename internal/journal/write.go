package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/wire"
)

// AppendCommand records a command envelope. Re-appending an envelope
// with the same cmd_id is a silent no-op, so producers can retry
// without duplicating history.
func (j *Journal) AppendCommand(ctx context.Context, env wire.Envelope) (seq int64, err error) {
	payload, err := wire.EncodeEnvelope(env)
	if err != nil {
		return 0, fmt.Errorf("append command: %w", err)
	}
	fingerprint, err := wire.CommandFingerprint(env.Cmd)
	if err != nil {
		return 0, fmt.Errorf("append command: %w", err)
	}

	seq = j.clock.next()
	_, err = j.db.ExecContext(ctx, `
		INSERT INTO commands
		(fingerprint, cmd_id, tag, payload, seq, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(cmd_id) DO NOTHING
	`,
		fingerprint,
		env.CmdID.String(),
		env.Cmd.ModelingCmdName(),
		payload,
		seq,
		j.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("append command: %w", err)
	}
	return seq, nil
}

// AppendPlan records a compiled plan keyed by its content id. The same
// plan appended twice stores one row; the id is returned either way.
func (j *Journal) AppendPlan(ctx context.Context, p *plan.Plan) (id string, err error) {
	payload, err := wire.EncodePlan(p)
	if err != nil {
		return "", fmt.Errorf("append plan: %w", err)
	}
	id, err = wire.PlanID(p)
	if err != nil {
		return "", fmt.Errorf("append plan: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO plans
		(id, payload, slots, instructions, recorded_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		payload,
		p.Slots,
		len(p.Instructions),
		j.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("append plan: %w", err)
	}
	return id, nil
}

// AppendResponse records a reply, correlated to its command by cmd_id.
// The command must already be journaled; each command takes exactly
// one response, and duplicate appends are silently ignored.
func (j *Journal) AppendResponse(ctx context.Context, env wire.ResponseEnvelope) error {
	payload, err := wire.EncodeResponse(env)
	if err != nil {
		return fmt.Errorf("append response: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO responses
		(cmd_id, of_tag, payload, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(cmd_id) DO NOTHING
	`,
		env.CmdID.String(),
		env.Of,
		payload,
		j.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append response: %w", err)
	}
	return nil
}
