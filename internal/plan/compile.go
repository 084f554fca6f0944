package plan

import (
	"fmt"

	"github.com/chiselcad/chisel/internal/cmds"
)

// Compile lowers an ordered step sequence into a Plan.
//
// Steps are walked in order; order is the execution contract and is
// preserved. Each step's references resolve against bindings made by
// strictly earlier steps, and a step's own binding registers only
// after its instruction is emitted, so no step can reference its own
// result. Duplicate bind names shadow the earlier binding. An empty
// sequence compiles to an empty valid plan.
//
// Any unresolved reference, invalid command, or malformed step aborts
// the compile; Compile never returns a partial Plan alongside an
// error.
func Compile(steps []Step) (*Plan, error) {
	p := &Plan{}
	bindings := make(map[string]int)

	for i, step := range steps {
		switch s := step.(type) {
		case CommandStep:
			if err := compileCommand(p, bindings, i, s); err != nil {
				return nil, err
			}
		case ValueStep:
			if s.Bind == "" {
				return nil, compileErrorf(i, "value step requires a bind name")
			}
			slot := p.Slots
			p.Slots++
			p.Instructions = append(p.Instructions, SetValue{Slot: slot, Value: s.Value})
			bindings[s.Bind] = slot
		case ComputeStep:
			if err := compileCompute(p, bindings, i, s); err != nil {
				return nil, err
			}
		default:
			return nil, compileErrorf(i, "unknown step type %T", step)
		}
	}
	return p, nil
}

func compileCommand(p *Plan, bindings map[string]int, pos int, s CommandStep) error {
	if s.Cmd == nil {
		return compileErrorf(pos, "command step requires a command")
	}

	resolved := s.Cmd
	if rb, ok := s.Cmd.(cmds.RefBearing); ok {
		mapped, err := rb.MapObjectIDs(func(id cmds.ObjectID) (cmds.ObjectID, error) {
			return resolveObjectID(bindings, p.Slots, pos, id)
		})
		if err != nil {
			return err
		}
		resolved = mapped
	}

	if err := resolved.Validate(); err != nil {
		return fmt.Errorf("step %d: %w", pos, err)
	}

	instr := RunCommand{Cmd: resolved}
	if s.Bind != "" {
		instr.StoreResult = true
		instr.Slot = p.Slots
		p.Slots++
	}
	p.Instructions = append(p.Instructions, instr)
	if s.Bind != "" {
		bindings[s.Bind] = instr.Slot
	}
	return nil
}

// resolveObjectID rewrites name references to slot references and
// bounds-checks explicit slots. Concrete UUIDs pass through untouched.
func resolveObjectID(bindings map[string]int, slots, pos int, id cmds.ObjectID) (cmds.ObjectID, error) {
	if name, ok := id.RefName(); ok {
		slot, bound := bindings[name]
		if !bound {
			return id, &UnresolvedBindingError{Name: name, Step: pos}
		}
		return cmds.Slot(slot), nil
	}
	if slot, ok := id.SlotIndex(); ok && slot >= slots {
		return id, compileErrorf(pos, "slot %d references a result the plan has not produced", slot)
	}
	return id, nil
}

func compileCompute(p *Plan, bindings map[string]int, pos int, s ComputeStep) error {
	if s.Bind == "" {
		return compileErrorf(pos, "compute step requires a bind name")
	}
	if !s.Op.Valid() {
		return compileErrorf(pos, "unknown operation %q", s.Op)
	}

	lhs, err := resolveOperand(bindings, p.Slots, pos, s.LHS)
	if err != nil {
		return err
	}
	rhs, err := resolveOperand(bindings, p.Slots, pos, s.RHS)
	if err != nil {
		return err
	}

	slot := p.Slots
	p.Slots++
	p.Instructions = append(p.Instructions, Arithmetic{Op: s.Op, LHS: lhs, RHS: rhs, Slot: slot})
	bindings[s.Bind] = slot
	return nil
}

// resolveOperand turns a name reference into a slot reference.
// Literals and in-range slot references pass through.
func resolveOperand(bindings map[string]int, slots, pos int, o Operand) (Operand, error) {
	set := 0
	if o.Literal != nil {
		set++
	}
	if o.Ref != "" {
		set++
	}
	if o.Slot != nil {
		set++
	}
	if set != 1 {
		return Operand{}, compileErrorf(pos, "operand must be exactly one of literal, ref, slot")
	}

	switch {
	case o.Ref != "":
		slot, bound := bindings[o.Ref]
		if !bound {
			return Operand{}, &UnresolvedBindingError{Name: o.Ref, Step: pos}
		}
		return SlotRef(slot), nil
	case o.Slot != nil:
		if *o.Slot < 0 || *o.Slot >= slots {
			return Operand{}, compileErrorf(pos, "slot %d references a result the plan has not produced", *o.Slot)
		}
	}
	return o, nil
}
