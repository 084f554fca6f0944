package wire

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/chiselcad/chisel/internal/cmds"
)

// ResponseEnvelope carries a reply back to the client. Of names the
// originating command's tag, which fixes the payload's shape; CmdID
// echoes the request envelope's id.
type ResponseEnvelope struct {
	// CmdID of the request this answers.
	CmdID uuid.UUID
	// Of is the originating command's wire tag.
	Of string
	// Resp payload, shaped per the registry entry for Of.
	Resp cmds.Response
}

type responseJSON struct {
	CmdID uuid.UUID       `json:"cmd_id"`
	Of    string          `json:"of"`
	Data  json.RawMessage `json:"data"`
}

// EncodeResponse renders a response envelope.
func EncodeResponse(env ResponseEnvelope) ([]byte, error) {
	if env.CmdID == uuid.Nil {
		return nil, &EncodingError{Message: "response requires a cmd_id"}
	}
	if _, ok := cmds.Lookup(env.Of); !ok {
		return nil, &UnknownVariantError{Kind: "command", Tag: env.Of}
	}
	if env.Resp == nil {
		return nil, &EncodingError{Message: "response requires a payload"}
	}
	data, err := json.Marshal(env.Resp)
	if err != nil {
		return nil, encodingErrorf(err, "encode response for %s", env.Of)
	}
	out, err := json.Marshal(responseJSON{CmdID: env.CmdID, Of: env.Of, Data: data})
	if err != nil {
		return nil, encodingErrorf(err, "encode response envelope")
	}
	return out, nil
}

// DecodeResponse parses a response envelope, decoding the payload into
// the shape registered for the originating command.
func DecodeResponse(data []byte) (ResponseEnvelope, error) {
	var raw responseJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return ResponseEnvelope{}, encodingErrorf(err, "decode response envelope")
	}
	if raw.CmdID == uuid.Nil {
		return ResponseEnvelope{}, &EncodingError{Message: "response requires a cmd_id"}
	}
	codec, ok := cmds.Lookup(raw.Of)
	if !ok {
		return ResponseEnvelope{}, &UnknownVariantError{Kind: "command", Tag: raw.Of}
	}
	if len(raw.Data) == 0 {
		return ResponseEnvelope{}, &EncodingError{Message: "response requires a payload"}
	}
	resp, err := codec.DecodeResponse(raw.Data)
	if err != nil {
		return ResponseEnvelope{}, encodingErrorf(err, "decode response for %s", raw.Of)
	}
	return ResponseEnvelope{CmdID: raw.CmdID, Of: raw.Of, Resp: resp}, nil
}
