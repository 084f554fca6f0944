package cmds

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type idForm uint8

const (
	formNone idForm = iota
	formUUID
	formRef
	formSlot
)

// ObjectID identifies a scene entity in a command parameter.
//
// Exactly one of three forms is populated:
//   - a concrete entity UUID, for commands addressed to known entities;
//   - a symbolic reference name, for commands inside a sequence that
//     consume an earlier step's result (resolved at plan compile time);
//   - a plan slot index, the compiled form, pointing at the instruction
//     whose result supplies the entity.
//
// Wire forms: "<uuid>" (string), {"ref":"name"}, {"slot":N}.
// The zero ObjectID is invalid and fails Validate.
type ObjectID struct {
	form idForm
	uuid uuid.UUID
	ref  string
	slot int
}

// ID builds a concrete ObjectID from an entity UUID.
func ID(id uuid.UUID) ObjectID {
	return ObjectID{form: formUUID, uuid: id}
}

// NewID builds a concrete ObjectID with a fresh time-ordered UUID.
func NewID() ObjectID {
	return ID(uuid.Must(uuid.NewV7()))
}

// Ref builds a symbolic ObjectID naming an earlier step's binding.
func Ref(name string) ObjectID {
	return ObjectID{form: formRef, ref: name}
}

// Slot builds a compiled ObjectID pointing at a plan slot.
func Slot(n int) ObjectID {
	return ObjectID{form: formSlot, slot: n}
}

// UUID returns the concrete entity id, if this is the UUID form.
func (o ObjectID) UUID() (uuid.UUID, bool) {
	return o.uuid, o.form == formUUID
}

// RefName returns the symbolic name, if this is the reference form.
func (o ObjectID) RefName() (string, bool) {
	return o.ref, o.form == formRef
}

// SlotIndex returns the plan slot, if this is the compiled form.
func (o ObjectID) SlotIndex() (int, bool) {
	return o.slot, o.form == formSlot
}

// IsZero reports whether no form has been set.
func (o ObjectID) IsZero() bool { return o.form == formNone }

// Validate checks that some form is populated and well-formed.
func (o ObjectID) Validate() error {
	switch o.form {
	case formUUID:
		return nil
	case formRef:
		if o.ref == "" {
			return fmt.Errorf("object reference name must be non-empty")
		}
		return nil
	case formSlot:
		if o.slot < 0 {
			return fmt.Errorf("object slot must be non-negative, got %d", o.slot)
		}
		return nil
	default:
		return fmt.Errorf("object id is unset")
	}
}

// String renders the id for diagnostics.
func (o ObjectID) String() string {
	switch o.form {
	case formUUID:
		return o.uuid.String()
	case formRef:
		return "$" + o.ref
	case formSlot:
		return fmt.Sprintf("slot(%d)", o.slot)
	default:
		return "<unset>"
	}
}

type refJSON struct {
	Ref string `json:"ref"`
}

type slotJSON struct {
	Slot int `json:"slot"`
}

// MarshalJSON encodes the populated form.
func (o ObjectID) MarshalJSON() ([]byte, error) {
	switch o.form {
	case formUUID:
		return json.Marshal(o.uuid.String())
	case formRef:
		return json.Marshal(refJSON{Ref: o.ref})
	case formSlot:
		return json.Marshal(slotJSON{Slot: o.slot})
	default:
		return nil, fmt.Errorf("cannot encode unset object id")
	}
}

// UnmarshalJSON decodes any of the three wire forms. Objects with keys
// other than exactly "ref" or exactly "slot" are rejected.
func (o *ObjectID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty object id")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("object id is not a valid uuid: %w", err)
		}
		*o = ID(id)
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if len(raw) != 1 {
			return fmt.Errorf("object id must have exactly one of ref or slot")
		}
		if r, ok := raw["ref"]; ok {
			var name string
			if err := json.Unmarshal(r, &name); err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("object reference name must be non-empty")
			}
			*o = Ref(name)
			return nil
		}
		if s, ok := raw["slot"]; ok {
			var n int
			if err := json.Unmarshal(s, &n); err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("object slot must be non-negative, got %d", n)
			}
			*o = Slot(n)
			return nil
		}
		return fmt.Errorf("object id object must contain ref or slot")
	default:
		return fmt.Errorf("object id must be a uuid string or a ref/slot object")
	}
}
