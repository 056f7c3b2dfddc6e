package raiko

import (
	"github.com/pkg/errors"
)

// ProofType identifies a guest proving backend the host can dispatch
// proof requests to.
type ProofType string

const (
	// ProofTypeNative is the native execution backend without a proof system.
	ProofTypeNative ProofType = "native"
	// ProofTypeSgx is the Intel SGX based proving backend.
	ProofTypeSgx ProofType = "sgx"
	// ProofTypeSp1 is the SP1 zkVM proving backend.
	ProofTypeSp1 ProofType = "sp1"
	// ProofTypeRisc0 is the RISC Zero zkVM proving backend.
	ProofTypeRisc0 ProofType = "risc0"
)

// String returns the canonical display name of the proof type.
// It is the only string form that may be used wherever a proof type
// appears as a metric label value.
func (t ProofType) String() string {
	return string(t)
}

// ParseProofType converts the given string into a ProofType.
// Only canonical display names are accepted.
func ParseProofType(value string) (ProofType, error) {
	switch t := ProofType(value); t {
	case ProofTypeNative, ProofTypeSgx, ProofTypeSp1, ProofTypeRisc0:
		return t, nil
	}
	return "", errors.Errorf("unknown proof type: %q", value)
}
