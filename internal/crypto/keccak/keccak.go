// Package keccak provides the 250-bit truncated Keccak-256 used by
// Starknet, and the entry point selectors derived from it.
package keccak

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// MaskBits is the number of low bits kept from the Keccak-256 digest.
const MaskBits = 250

// Entry point names whose selector is zero.
const (
	DefaultEntryPoint   = "__default__"
	L1DefaultEntryPoint = "__l1_default__"
)

var mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaskBits), big.NewInt(1))

// Sum256 returns the legacy (pre-FIPS padding) Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var out [32]byte
	h.Sum(out[:0])
	return out
}

// StarknetKeccak returns Keccak-256(data) truncated to its low 250 bits.
// The result always fits in a field element.
func StarknetKeccak(data []byte) field.Element {
	digest := Sum256(data)
	v := new(big.Int).SetBytes(digest[:])
	return field.New(v.And(v, mask))
}

// SelectorFromName returns the selector of a contract entry point.
func SelectorFromName(name string) field.Element {
	if name == DefaultEntryPoint || name == L1DefaultEntryPoint {
		return field.Element{}
	}
	return StarknetKeccak([]byte(name))
}
