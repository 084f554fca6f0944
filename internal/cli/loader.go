package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chiselcad/chisel/internal/plan"
	"github.com/chiselcad/chisel/internal/wire"
)

// Sequence is a named command sequence loaded from YAML, ready for the
// plan compiler.
type Sequence struct {
	// Name of the sequence, for diagnostics and journal context.
	Name string
	// Steps in declaration order.
	Steps []plan.Step
}

// sequenceFile is the YAML shape of a sequence definition.
type sequenceFile struct {
	Name  string         `yaml:"name"`
	Steps []sequenceStep `yaml:"steps"`
}

// sequenceStep carries exactly one of cmd, value, or compute.
type sequenceStep struct {
	// Bind optionally names the step's result.
	Bind string `yaml:"bind,omitempty"`
	// Cmd is a tagged command object, same layout as the JSON wire form.
	Cmd map[string]any `yaml:"cmd,omitempty"`
	// Value binds a literal number.
	Value *float64 `yaml:"value,omitempty"`
	// Compute binds an arithmetic result.
	Compute *computeYAML `yaml:"compute,omitempty"`
}

type computeYAML struct {
	Op  string      `yaml:"op"`
	LHS operandYAML `yaml:"lhs"`
	RHS operandYAML `yaml:"rhs"`
}

type operandYAML struct {
	Literal *float64 `yaml:"literal,omitempty"`
	Ref     string   `yaml:"ref,omitempty"`
	Slot    *int     `yaml:"slot,omitempty"`
}

func (o operandYAML) toOperand() plan.Operand {
	return plan.Operand{Literal: o.Literal, Ref: o.Ref, Slot: o.Slot}
}

// LoadSequence reads a YAML sequence file into compiler steps.
func LoadSequence(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence: %w", err)
	}
	return ParseSequence(data)
}

// ParseSequence parses YAML sequence bytes into compiler steps.
func ParseSequence(data []byte) (*Sequence, error) {
	var file sequenceFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse sequence: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse sequence: no steps")
	}

	seq := &Sequence{Name: file.Name}
	for i, raw := range file.Steps {
		step, err := convertStep(i, raw)
		if err != nil {
			return nil, err
		}
		seq.Steps = append(seq.Steps, step)
	}
	return seq, nil
}

func convertStep(i int, raw sequenceStep) (plan.Step, error) {
	set := 0
	if raw.Cmd != nil {
		set++
	}
	if raw.Value != nil {
		set++
	}
	if raw.Compute != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("step %d: exactly one of cmd, value, compute is required", i)
	}

	switch {
	case raw.Cmd != nil:
		// The YAML command layout matches the JSON wire form, so the
		// wire decoder gives tag dispatch and strictness for free.
		encoded, err := json.Marshal(raw.Cmd)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		cmd, err := wire.DecodeCommand(encoded)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		return plan.CommandStep{Cmd: cmd, Bind: raw.Bind}, nil
	case raw.Value != nil:
		return plan.ValueStep{Bind: raw.Bind, Value: *raw.Value}, nil
	default:
		return plan.ComputeStep{
			Bind: raw.Bind,
			Op:   plan.Op(raw.Compute.Op),
			LHS:  raw.Compute.LHS.toOperand(),
			RHS:  raw.Compute.RHS.toOperand(),
		}, nil
	}
}
