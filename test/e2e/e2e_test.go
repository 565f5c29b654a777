package e2e

import (
	"math/big"
	"testing"

	"github.com/smallyu/go-stark-crypto/pkg/stark"
)

func TestSignFlowIntegration(t *testing.T) {
	// 1. Key Phase
	privateKey := stark.NewFieldElement(big.NewInt(12345))
	signer, err := stark.NewSigner(privateKey)
	if err != nil {
		t.Fatalf("Failed to create signer: %v", err)
	}

	// 2. Hash Phase
	// pedersen(pedersen(0, 4321), 123)
	var zero stark.FieldElement
	inner := stark.PedersenHash(zero, stark.NewFieldElement(big.NewInt(4321)))
	msgHash := stark.PedersenHash(inner, stark.NewFieldElement(big.NewInt(123)))

	wantHash := "2753398579065999868676648154858535505114210338751586815177195686448743411473"
	if got := msgHash.Text(10); got != wantHash {
		t.Fatalf("Message hash mismatch. Got %s, want %s", got, wantHash)
	}

	// 3. Sign Phase
	sig, err := signer.Sign(msgHash)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	again, err := stark.Sign(msgHash, privateKey)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if sig.R.Cmp(again.R) != 0 || sig.S.Cmp(again.S) != 0 {
		t.Errorf("Signing is not deterministic: %s vs %s", sig, again)
	}

	// 4. Transport Phase (Simulated)
	// The verifier only sees the stark key, the hash and the encoded signature.
	encoded := sig.Bytes()
	received, err := stark.ParseSignature(encoded[:])
	if err != nil {
		t.Fatalf("Failed to decode signature: %v", err)
	}
	pubBytes := signer.PublicKey().Bytes()
	pub, err := stark.ParsePublicKey(pubBytes[:])
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}

	// 5. Verify Phase
	if !stark.Verify(msgHash, received, pub) {
		t.Error("Signature failed to verify against public key")
	}
	if !stark.VerifyStarkKey(msgHash, received, signer.StarkKey()) {
		t.Error("Signature failed to verify against stark key")
	}

	// 6. Negative Checks
	other, err := stark.DerivePublicKey(stark.NewFieldElement(big.NewInt(54321)))
	if err != nil {
		t.Fatalf("Failed to derive public key: %v", err)
	}
	if stark.Verify(msgHash, received, other) {
		t.Error("Signature verified against the wrong key")
	}
	if stark.Verify(inner, received, pub) {
		t.Error("Signature verified for the wrong message")
	}
}

func TestCalldataHashIntegration(t *testing.T) {
	// A transfer call: selector followed by its arguments, hashed the way
	// account contracts hash calldata.
	selector := stark.SelectorFromName("transfer")
	calldata := []stark.FieldElement{
		selector,
		stark.NewFieldElement(big.NewInt(0x1234)),
		stark.NewFieldElement(big.NewInt(1000)),
	}
	msgHash := stark.ComputeHashOnElements(calldata...)

	signer, err := stark.NewSigner(stark.NewFieldElement(big.NewInt(777)))
	if err != nil {
		t.Fatalf("Failed to create signer: %v", err)
	}
	sig, err := signer.Sign(msgHash)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !signer.Verify(msgHash, sig) {
		t.Error("Calldata signature failed to verify")
	}

	// Changing any element changes the hash.
	calldata[2] = stark.NewFieldElement(big.NewInt(1001))
	if stark.ComputeHashOnElements(calldata...).Equal(msgHash) {
		t.Error("Calldata hash did not change")
	}
}
