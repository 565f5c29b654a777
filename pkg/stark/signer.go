package stark

import (
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/ecdsa"
)

// Signer holds a private key together with its public key, which is
// derived once when the Signer is created.
type Signer struct {
	priv *ecdsa.PrivateKey
}

// NewSigner validates privateKey and derives its public key.
func NewSigner(privateKey FieldElement) (*Signer, error) {
	priv, err := ecdsa.NewPrivateKey(privateKey.BigInt())
	if err != nil {
		return nil, err
	}
	return &Signer{priv: priv}, nil
}

// PublicKey returns the signer's public key.
func (s *Signer) PublicKey() CurvePoint {
	return s.priv.Point
}

// StarkKey returns the x-coordinate of the signer's public key.
func (s *Signer) StarkKey() FieldElement {
	return s.priv.StarkKey()
}

// Sign signs messageHash.
func (s *Signer) Sign(messageHash FieldElement) (*Signature, error) {
	return ecdsa.Sign(s.priv, messageHash.BigInt())
}

// SignWithSeed signs messageHash with extra nonce entropy.
func (s *Signer) SignWithSeed(messageHash FieldElement, seed *big.Int) (*Signature, error) {
	return ecdsa.SignWithSeed(s.priv, messageHash.BigInt(), seed)
}

// SignBatch signs every hash, running at most parallelism signings at
// once. Signatures come back in input order.
func (s *Signer) SignBatch(messageHashes []FieldElement, parallelism int) ([]*Signature, error) {
	return ecdsa.SignBatch(s.priv, toInts(messageHashes), parallelism)
}

// Verify checks a signature against the signer's own public key.
func (s *Signer) Verify(messageHash FieldElement, signature *Signature) bool {
	return ecdsa.Verify(&s.priv.PublicKey, messageHash.BigInt(), signature)
}

// VerifyBatch checks signatures[i] against messageHashes[i] under
// publicKey.
func VerifyBatch(messageHashes []FieldElement, signatures []*Signature, publicKey CurvePoint, parallelism int) ([]bool, error) {
	return ecdsa.VerifyBatch(&ecdsa.PublicKey{Point: publicKey}, toInts(messageHashes), signatures, parallelism)
}

func toInts(xs []FieldElement) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = x.BigInt()
	}
	return out
}
