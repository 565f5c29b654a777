// Package ecdsa implements deterministic ECDSA over the STARK curve as used
// by Starknet: RFC 6979 nonces, signable hashes limited to 251 bits and
// public keys that may be given as their x-coordinate only.
package ecdsa

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/curves"
	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// Common errors returned by key handling and signing.
var (
	ErrInvalidPrivateKey  = errors.New("ecdsa: private key must be in [1, N)")
	ErrMessageNotSignable = errors.New("ecdsa: message hash must be below 2^251")
	ErrNonceExhausted     = errors.New("ecdsa: no usable nonce found")
	ErrDivisionByZero     = field.ErrDivisionByZero
)

// ElementBits bounds message hashes and the r and w = s^-1 signature
// values.
const ElementBits = 251

// maxSignAttempts bounds the nonce resampling loop in Sign. A nonce is
// rejected with negligible probability.
const maxSignAttempts = 64

var (
	errRNotInRange = errors.New("ecdsa: r out of range")
	errWNotInRange = errors.New("ecdsa: s^-1 out of range")
)

// nonceFunc derives the nonce for each signing attempt.
var nonceFunc = starkNonce

var (
	n          = curves.Order()
	elementMax = new(big.Int).Lsh(big.NewInt(1), ElementBits)
	one        = big.NewInt(1)
)

// PublicKey is a point on the STARK curve derived from a private key.
type PublicKey struct {
	Point curves.Point
}

// PrivateKey holds the secret scalar D together with its public key.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// NewPrivateKey validates d and derives its public key.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if !inRange(d, n) {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{
		PublicKey: PublicKey{Point: curves.ScalarBaseMult(d)},
		D:         new(big.Int).Set(d),
	}, nil
}

// GenerateKey draws a private key uniformly from [1, N).
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = crand.Reader
	}
	d, err := crand.Int(random, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(d.Add(d, one))
}

// StarkKey returns the x-coordinate of the public key, the form in which
// Starknet accounts store keys.
func (pub *PublicKey) StarkKey() field.Element {
	return pub.Point.X()
}

// Sign produces a deterministic signature of msgHash.
func Sign(priv *PrivateKey, msgHash *big.Int) (*Signature, error) {
	return SignWithSeed(priv, msgHash, nil)
}

// SignWithSeed is Sign with extra entropy mixed into the nonce. A nil seed
// gives the same result as Sign.
func SignWithSeed(priv *PrivateKey, msgHash, seed *big.Int) (*Signature, error) {
	if priv == nil || !inRange(priv.D, n) {
		return nil, ErrInvalidPrivateKey
	}
	if msgHash == nil || msgHash.Sign() < 0 || msgHash.Cmp(elementMax) >= 0 {
		return nil, ErrMessageNotSignable
	}

	if seed != nil {
		seed = new(big.Int).Set(seed)
	}
	var lastErr error
	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k := nonceFunc(priv.D, msgHash, seed)
		if seed == nil {
			seed = big.NewInt(1)
		} else {
			seed.Add(seed, one)
		}

		sig, err := signWithNonce(priv.D, msgHash, k)
		if err != nil {
			lastErr = err
			continue
		}
		return sig, nil
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrNonceExhausted, maxSignAttempts, lastErr)
}

// signWithNonce computes r = (k*G).x mod N and s = k^-1 * (z + r*d) mod N,
// rejecting nonces that give r or s^-1 outside [1, 2^251).
func signWithNonce(d, z, k *big.Int) (*Signature, error) {
	R := curves.ScalarBaseMult(k)
	r := R.X().BigInt()
	r.Mod(r, n)
	if !inRange(r, elementMax) {
		return nil, errRNotInRange
	}

	e := new(big.Int).Mul(r, d)
	e.Add(e, z)
	e.Mod(e, n)

	kInv, err := invert(k)
	if err != nil {
		return nil, err
	}
	s := e.Mul(e, kInv)
	s.Mod(s, n)

	w, err := invert(s)
	if err != nil {
		return nil, err
	}
	if !inRange(w, elementMax) {
		return nil, errWNotInRange
	}
	return &Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid signature of msgHash under pub.
// Malformed inputs are rejected rather than reported as errors.
func Verify(pub *PublicKey, msgHash *big.Int, sig *Signature) bool {
	if pub == nil || sig == nil || sig.R == nil || sig.S == nil || msgHash == nil {
		return false
	}
	if pub.Point.IsInfinity() || !pub.Point.IsOnCurve() {
		return false
	}
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}
	if sig.R.Cmp(elementMax) >= 0 || msgHash.Sign() < 0 || msgHash.Cmp(elementMax) >= 0 {
		return false
	}

	w, err := invert(sig.S)
	if err != nil || w.Cmp(elementMax) >= 0 {
		return false
	}

	u1 := new(big.Int).Mul(msgHash, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	X := curves.ScalarBaseMult(u1).Add(pub.Point.ScalarMult(u2))
	if X.IsInfinity() {
		return false
	}

	x := X.X().BigInt()
	x.Mod(x, n)
	return x.Cmp(sig.R) == 0
}

// VerifyStarkKey verifies sig against a public key given only by its
// x-coordinate, accepting if either of the two matching points verifies.
func VerifyStarkKey(starkKey field.Element, msgHash *big.Int, sig *Signature) bool {
	p, err := curves.PointFromX(starkKey)
	if err != nil {
		return false
	}
	return Verify(&PublicKey{Point: p}, msgHash, sig) ||
		Verify(&PublicKey{Point: p.Neg()}, msgHash, sig)
}

// invert returns a^-1 mod N.
func invert(a *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(a, n).Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).ModInverse(a, n), nil
}

// inRange reports whether 1 <= x < limit.
func inRange(x, limit *big.Int) bool {
	return x != nil && x.Sign() > 0 && x.Cmp(limit) < 0
}
