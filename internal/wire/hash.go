package wire

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/chiselcad/chisel/internal/cmds"
	"github.com/chiselcad/chisel/internal/plan"
)

// Domain prefixes for content-addressed identity. The version suffix
// leaves room for an algorithm migration.
const (
	DomainCommand = "chisel/command/v1"
	DomainPlan    = "chisel/plan/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data). The null byte
// separator removes domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CommandFingerprint is the content-addressed identity of a command:
// the hex SHA-256 of its canonical encoding under the command domain.
// Structurally equal commands always fingerprint identically.
func CommandFingerprint(cmd cmds.Command) (string, error) {
	enc, err := EncodeCommand(cmd)
	if err != nil {
		return "", err
	}
	canonical, err := Canonicalize(enc)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainCommand, canonical), nil
}

// PlanID is the content-addressed identity of a compiled plan.
func PlanID(p *plan.Plan) (string, error) {
	enc, err := EncodePlan(p)
	if err != nil {
		return "", err
	}
	canonical, err := Canonicalize(enc)
	if err != nil {
		return "", err
	}
	return hashWithDomain(DomainPlan, canonical), nil
}
