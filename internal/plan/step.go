package plan

import (
	"github.com/chiselcad/chisel/internal/cmds"
)

// Step is one entry of a plan compiler input sequence. The sum is
// sealed; each variant says what the step runs and what name, if any,
// it binds the result to.
type Step interface {
	// BindName returns the name this step binds, or "" for none.
	BindName() string

	step()
}

// CommandStep runs one modeling command. If Bind is non-empty the
// command's result slot is registered under that name for later steps.
type CommandStep struct {
	// Cmd to execute.
	Cmd cmds.Command
	// Bind optionally names the command's result.
	Bind string
}

// BindName returns the name this step binds, or "" for none.
func (s CommandStep) BindName() string { return s.Bind }

func (CommandStep) step() {}

// ValueStep binds a literal numeric value to a name.
type ValueStep struct {
	// Bind names the value. Required.
	Bind string
	// Value stored in the binding's slot.
	Value float64
}

// BindName returns the name this step binds.
func (s ValueStep) BindName() string { return s.Bind }

func (ValueStep) step() {}

// ComputeStep binds the result of an arithmetic operation over two
// operands, each a literal or a reference to an earlier binding.
type ComputeStep struct {
	// Bind names the result. Required.
	Bind string
	// Op is the operation to apply.
	Op Op
	// LHS is the left operand.
	LHS Operand
	// RHS is the right operand.
	RHS Operand
}

// BindName returns the name this step binds.
func (s ComputeStep) BindName() string { return s.Bind }

func (ComputeStep) step() {}

// Op is a binary arithmetic operation.
type Op string

// The arithmetic operations.
const (
	OpAdd Op = "add"
	OpMul Op = "mul"
	OpSub Op = "sub"
	OpDiv Op = "div"
)

var validOps = map[Op]bool{OpAdd: true, OpMul: true, OpSub: true, OpDiv: true}

// Valid reports whether the value is a known operation.
func (o Op) Valid() bool { return validOps[o] }

// Operand is a literal value or a reference to a binding. In compiler
// input, references carry names; in compiled instructions they carry
// slots. Exactly one of the three fields is set.
type Operand struct {
	// Literal value, when the operand is a constant.
	Literal *float64 `json:"literal,omitempty"`
	// Ref names an earlier binding. Only valid in compiler input.
	Ref string `json:"ref,omitempty"`
	// Slot addresses an earlier result. Only valid in compiled plans.
	Slot *int `json:"slot,omitempty"`
}

// Lit makes a literal operand.
func Lit(v float64) Operand { return Operand{Literal: &v} }

// NameRef makes an operand referencing a named binding.
func NameRef(name string) Operand { return Operand{Ref: name} }

// SlotRef makes an operand addressing a result slot.
func SlotRef(slot int) Operand {
	return Operand{Slot: &slot}
}
