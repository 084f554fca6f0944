package plan

import (
	"github.com/chiselcad/chisel/internal/cmds"
)

// Instruction is one entry of a compiled plan. The sum is sealed.
// Instructions address results by slot: slot i holds the result of the
// i-th slot-producing instruction, and every slot reference points at
// a strictly earlier slot.
type Instruction interface {
	// InstructionName returns the instruction's stable wire tag.
	InstructionName() string

	instruction()
}

// RunCommand executes one modeling command. Every symbolic ObjectID in
// Cmd has been resolved to a slot reference by the compiler.
type RunCommand struct {
	// Cmd to execute.
	Cmd cmds.Command
	// StoreResult says whether the executor keeps the response.
	StoreResult bool
	// Slot receiving the result when StoreResult is set.
	Slot int
}

// InstructionName returns the instruction's stable wire tag.
func (RunCommand) InstructionName() string { return "run_command" }

func (RunCommand) instruction() {}

// SetValue writes a literal into a slot.
type SetValue struct {
	// Slot written.
	Slot int `json:"slot"`
	// Value stored.
	Value float64 `json:"value"`
}

// InstructionName returns the instruction's stable wire tag.
func (SetValue) InstructionName() string { return "set_value" }

func (SetValue) instruction() {}

// Arithmetic computes a binary operation into a slot. Operands are
// literals or slot references, never names.
type Arithmetic struct {
	// Op applied to the operands.
	Op Op `json:"op"`
	// LHS is the left operand.
	LHS Operand `json:"lhs"`
	// RHS is the right operand.
	RHS Operand `json:"rhs"`
	// Slot receiving the result.
	Slot int `json:"slot"`
}

// InstructionName returns the instruction's stable wire tag.
func (Arithmetic) InstructionName() string { return "arithmetic" }

func (Arithmetic) instruction() {}

// Plan is a compiled, linear instruction list. Instructions execute in
// order. A Plan is immutable once compiled.
type Plan struct {
	// Instructions in execution order.
	Instructions []Instruction
	// Slots is the number of result slots the plan uses.
	Slots int
}
