package wire

import (
	"bytes"
	"encoding/json"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/plan"
)

// PlanVersion is the wire version of the plan document format.
const PlanVersion = cmds.ProtocolVersion

// DecodeOption configures plan decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	allowUnknown bool
	onUnknown    func(tag string)
}

// AllowUnknown makes the decoder skip instructions with unrecognized
// tags instead of failing, calling report for each skipped tag when
// report is non-nil. This is the explicit forward-compatibility mode;
// without it unknown tags are an error.
func AllowUnknown(report func(tag string)) DecodeOption {
	return func(o *decodeOptions) {
		o.allowUnknown = true
		o.onUnknown = report
	}
}

type planJSON struct {
	Version      string            `json:"version"`
	Slots        int               `json:"slots"`
	Instructions []json.RawMessage `json:"instructions"`
}

type runCommandJSON struct {
	Cmd         json.RawMessage `json:"cmd"`
	StoreResult bool            `json:"store_result"`
	Slot        int             `json:"slot"`
}

// EncodePlan renders a compiled plan as a versioned JSON document with
// one tagged object per instruction, in execution order.
func EncodePlan(p *plan.Plan) ([]byte, error) {
	if p == nil {
		return nil, &EncodingError{Message: "nil plan"}
	}
	doc := planJSON{Version: PlanVersion, Slots: p.Slots}
	for _, instr := range p.Instructions {
		enc, err := encodeInstruction(instr)
		if err != nil {
			return nil, err
		}
		doc.Instructions = append(doc.Instructions, enc)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, encodingErrorf(err, "encode plan")
	}
	return out, nil
}

func encodeInstruction(instr plan.Instruction) ([]byte, error) {
	switch v := instr.(type) {
	case plan.RunCommand:
		cmdBody, err := EncodeCommand(v.Cmd)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(runCommandJSON{Cmd: cmdBody, StoreResult: v.StoreResult, Slot: v.Slot})
		if err != nil {
			return nil, encodingErrorf(err, "encode run_command")
		}
		return injectTag(v.InstructionName(), body)
	case plan.SetValue, plan.Arithmetic:
		body, err := json.Marshal(v)
		if err != nil {
			return nil, encodingErrorf(err, "encode %s", instr.InstructionName())
		}
		return injectTag(instr.InstructionName(), body)
	default:
		return nil, &UnknownVariantError{Kind: "instruction", Tag: instr.InstructionName()}
	}
}

// DecodePlan parses a plan document. Version mismatches and malformed
// instructions fail with EncodingError; unrecognized instruction or
// command tags fail with UnknownVariantError unless AllowUnknown was
// given, in which case those instructions are skipped and reported.
func DecodePlan(data []byte, opts ...DecodeOption) (*plan.Plan, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	var doc planJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, encodingErrorf(err, "decode plan")
	}
	if doc.Version != PlanVersion {
		return nil, &EncodingError{Message: "unsupported plan version " + doc.Version}
	}

	p := &plan.Plan{Slots: doc.Slots}
	for _, raw := range doc.Instructions {
		instr, err := decodeInstruction(raw)
		if err != nil {
			if uve, ok := AsUnknownVariant(err); ok && o.allowUnknown {
				if o.onUnknown != nil {
					o.onUnknown(uve.Tag)
				}
				continue
			}
			return nil, err
		}
		p.Instructions = append(p.Instructions, instr)
	}
	return p, nil
}

func decodeInstruction(data []byte) (plan.Instruction, error) {
	tag, rest, err := splitTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "run_command":
		var raw runCommandJSON
		dec := json.NewDecoder(bytes.NewReader(rest))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, encodingErrorf(err, "decode run_command")
		}
		cmd, err := DecodeCommand(raw.Cmd)
		if err != nil {
			return nil, err
		}
		return plan.RunCommand{Cmd: cmd, StoreResult: raw.StoreResult, Slot: raw.Slot}, nil
	case "set_value":
		var v plan.SetValue
		if err := strictDecode(rest, &v); err != nil {
			return nil, encodingErrorf(err, "decode set_value")
		}
		return v, nil
	case "arithmetic":
		var v plan.Arithmetic
		if err := strictDecode(rest, &v); err != nil {
			return nil, encodingErrorf(err, "decode arithmetic")
		}
		if !v.Op.Valid() {
			return nil, encodingErrorf(nil, "unknown operation %q", v.Op)
		}
		return v, nil
	default:
		return nil, &UnknownVariantError{Kind: "instruction", Tag: tag}
	}
}

func strictDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
