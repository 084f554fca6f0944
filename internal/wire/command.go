package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/chiselcad/chisel/internal/cmds"
)

// EncodeCommand renders a command as an internally tagged JSON object:
// the command's wire tag under "type", then its fields.
func EncodeCommand(cmd cmds.Command) ([]byte, error) {
	if cmd == nil {
		return nil, &EncodingError{Message: "nil command"}
	}
	tag := cmd.ModelingCmdName()
	if _, ok := cmds.Lookup(tag); !ok {
		return nil, &UnknownVariantError{Kind: "command", Tag: tag}
	}
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, encodingErrorf(err, "encode %s", tag)
	}
	return injectTag(tag, body)
}

// DecodeCommand parses an internally tagged command object. Unknown
// tags fail with UnknownVariantError; syntax problems and unknown
// fields fail with EncodingError.
func DecodeCommand(data []byte) (cmds.Command, error) {
	tag, rest, err := splitTag(data)
	if err != nil {
		return nil, err
	}
	codec, ok := cmds.Lookup(tag)
	if !ok {
		return nil, &UnknownVariantError{Kind: "command", Tag: tag}
	}
	cmd, err := codec.DecodeCommand(rest)
	if err != nil {
		return nil, encodingErrorf(err, "decode %s", tag)
	}
	return cmd, nil
}

// Envelope pairs a command with the client-chosen id its response will
// be correlated by.
type Envelope struct {
	// CmdID identifies this command instance.
	CmdID uuid.UUID
	// Cmd carried by the envelope.
	Cmd cmds.Command
}

// NewEnvelope wraps a command with a fresh time-ordered id.
func NewEnvelope(cmd cmds.Command) Envelope {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		id = uuid.New()
	}
	return Envelope{CmdID: id, Cmd: cmd}
}

type envelopeJSON struct {
	CmdID uuid.UUID       `json:"cmd_id"`
	Cmd   json.RawMessage `json:"cmd"`
}

// EncodeEnvelope renders the envelope as {"cmd_id":..., "cmd":{...}}.
func EncodeEnvelope(env Envelope) ([]byte, error) {
	if env.CmdID == uuid.Nil {
		return nil, &EncodingError{Message: "envelope requires a cmd_id"}
	}
	body, err := EncodeCommand(env.Cmd)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(envelopeJSON{CmdID: env.CmdID, Cmd: body})
	if err != nil {
		return nil, encodingErrorf(err, "encode envelope")
	}
	return out, nil
}

// DecodeEnvelope parses an envelope and its command.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var raw envelopeJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Envelope{}, encodingErrorf(err, "decode envelope")
	}
	if raw.CmdID == uuid.Nil {
		return Envelope{}, &EncodingError{Message: "envelope requires a cmd_id"}
	}
	if len(raw.Cmd) == 0 {
		return Envelope{}, &EncodingError{Message: "envelope requires a cmd"}
	}
	cmd, err := DecodeCommand(raw.Cmd)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{CmdID: raw.CmdID, Cmd: cmd}, nil
}

// injectTag prepends {"type":tag, ...} to an already-encoded object.
func injectTag(tag string, body []byte) ([]byte, error) {
	if len(body) < 2 || body[0] != '{' {
		return nil, &EncodingError{Message: fmt.Sprintf("%s must encode as an object", tag)}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"type":%q`, tag)
	if !bytes.Equal(body, []byte("{}")) {
		buf.WriteByte(',')
		buf.Write(body[1 : len(body)-1])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// splitTag pops the "type" field off a tagged object and re-encodes
// the remaining fields.
func splitTag(data []byte) (string, []byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, encodingErrorf(err, "decode tagged object")
	}
	tagRaw, ok := raw["type"]
	if !ok {
		return "", nil, &EncodingError{Message: "missing type tag"}
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return "", nil, encodingErrorf(err, "type tag must be a string")
	}
	delete(raw, "type")
	rest, err := json.Marshal(raw)
	if err != nil {
		return "", nil, encodingErrorf(err, "re-encode tagged object")
	}
	return tag, rest, nil
}
