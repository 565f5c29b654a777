package ecdsa

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidSignature is returned when a signature encoding cannot be
// decoded.
var ErrInvalidSignature = errors.New("ecdsa: invalid signature encoding")

// SignatureSize is the length of the r||s encoding.
const SignatureSize = 64

// Signature is an (r, s) pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// Bytes returns r||s, each as 32 big-endian bytes. R and S must be set
// and fit in 32 bytes.
func (sig *Signature) Bytes() [SignatureSize]byte {
	var out [SignatureSize]byte
	sig.R.FillBytes(out[:SignatureSize/2])
	sig.S.FillBytes(out[SignatureSize/2:])
	return out
}

// ParseSignature decodes the r||s encoding. Range checks are left to
// Verify.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(b))
	}
	return &Signature{
		R: new(big.Int).SetBytes(b[:SignatureSize/2]),
		S: new(big.Int).SetBytes(b[SignatureSize/2:]),
	}, nil
}

func (sig *Signature) String() string {
	return fmt.Sprintf("(0x%s, 0x%s)", sig.R.Text(16), sig.S.Text(16))
}
