// Package stark is the public API for STARK curve cryptography: field
// elements, the Pedersen hash, and deterministic ECDSA signatures as used
// by Starknet.
//
// All functions are pure and safe for concurrent use.
package stark

import (
	"io"
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/curves"
	"github.com/smallyu/go-stark-crypto/internal/crypto/ecdsa"
	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
	"github.com/smallyu/go-stark-crypto/internal/crypto/keccak"
	"github.com/smallyu/go-stark-crypto/internal/crypto/pedersen"
)

type (
	// FieldElement is an integer modulo the STARK field prime P.
	FieldElement = field.Element
	// CurvePoint is an affine point on the STARK curve or the point at
	// infinity.
	CurvePoint = curves.Point
	// Signature is an (r, s) pair.
	Signature = ecdsa.Signature
	// CurveParams holds the curve constants.
	CurveParams = curves.Params
)

// MessageBits bounds the hashes that can be signed.
const MessageBits = ecdsa.ElementBits

// Parameters returns the STARK curve constants.
func Parameters() *CurveParams {
	return curves.Stark()
}

// NewFieldElement reduces v modulo P.
func NewFieldElement(v *big.Int) FieldElement {
	return field.New(v)
}

// ParseFieldElement parses a 0x-prefixed hex or decimal string. The value
// must already be below P.
func ParseFieldElement(s string) (FieldElement, error) {
	return field.Parse(s)
}

// PedersenHash hashes a pair of field elements.
func PedersenHash(a, b FieldElement) FieldElement {
	return pedersen.Hash(a, b)
}

// ComputeHashOnElements is the chained Pedersen hash of xs followed by
// their count.
func ComputeHashOnElements(xs ...FieldElement) FieldElement {
	return pedersen.HashElements(xs...)
}

// SelectorFromName returns the selector of a contract entry point.
func SelectorFromName(name string) FieldElement {
	return keccak.SelectorFromName(name)
}

// DerivePublicKey returns privateKey * G.
func DerivePublicKey(privateKey FieldElement) (CurvePoint, error) {
	priv, err := ecdsa.NewPrivateKey(privateKey.BigInt())
	if err != nil {
		return CurvePoint{}, err
	}
	return priv.Point, nil
}

// StarkKey returns the x-coordinate of the public key of privateKey.
func StarkKey(privateKey FieldElement) (FieldElement, error) {
	pub, err := DerivePublicKey(privateKey)
	if err != nil {
		return FieldElement{}, err
	}
	return pub.X(), nil
}

// GeneratePrivateKey draws a private key from random, or from crypto/rand
// when random is nil.
func GeneratePrivateKey(random io.Reader) (FieldElement, error) {
	priv, err := ecdsa.GenerateKey(random)
	if err != nil {
		return FieldElement{}, err
	}
	return field.New(priv.D), nil
}

// Sign signs messageHash with privateKey. The same inputs always produce
// the same signature.
func Sign(messageHash, privateKey FieldElement) (*Signature, error) {
	return SignWithSeed(messageHash, privateKey, nil)
}

// SignWithSeed is Sign with extra entropy mixed into the nonce.
func SignWithSeed(messageHash, privateKey FieldElement, seed *big.Int) (*Signature, error) {
	priv, err := ecdsa.NewPrivateKey(privateKey.BigInt())
	if err != nil {
		return nil, err
	}
	return ecdsa.SignWithSeed(priv, messageHash.BigInt(), seed)
}

// Verify reports whether signature is valid for messageHash under
// publicKey. It returns false rather than an error for malformed input.
func Verify(messageHash FieldElement, signature *Signature, publicKey CurvePoint) bool {
	return ecdsa.Verify(&ecdsa.PublicKey{Point: publicKey}, messageHash.BigInt(), signature)
}

// VerifyStarkKey is Verify for a public key given by its x-coordinate.
func VerifyStarkKey(messageHash FieldElement, signature *Signature, starkKey FieldElement) bool {
	return ecdsa.VerifyStarkKey(starkKey, messageHash.BigInt(), signature)
}

// ParseSignature decodes a 64-byte r||s encoding.
func ParseSignature(b []byte) (*Signature, error) {
	return ecdsa.ParseSignature(b)
}

// ParsePublicKey decodes a 64-byte x||y point encoding and rejects points
// that are off the curve or at infinity.
func ParsePublicKey(b []byte) (CurvePoint, error) {
	p, err := curves.ParsePoint(b)
	if err != nil {
		return CurvePoint{}, err
	}
	if p.IsInfinity() {
		return CurvePoint{}, ErrInvalidPoint
	}
	return p, nil
}
