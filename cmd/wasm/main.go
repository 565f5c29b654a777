//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-stark-crypto/pkg/stark"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go STARK crypto WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoStark", map[string]interface{}{
		"pedersen":              js.FuncOf(Pedersen),
		"computeHashOnElements": js.FuncOf(ComputeHashOnElements),
		"getStarkKey":           js.FuncOf(GetStarkKey),
		"sign":                  js.FuncOf(Sign),
		"verify":                js.FuncOf(Verify),
		"getSelectorFromName":   js.FuncOf(GetSelectorFromName),
	})

	<-c
}

// Numbers cross the JS boundary as 0x-hex or decimal strings, since JS
// numbers cannot hold 252-bit values.

// Pedersen hashes two field elements.
// Arguments: a, b
// Returns: hex string
func Pedersen(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (a, b)"
	}
	xs, err := parseArgs(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return stark.PedersenHash(xs[0], xs[1]).String()
}

// ComputeHashOnElements hashes a list of field elements.
// Arguments: JSON array of strings
// Returns: hex string
func ComputeHashOnElements(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonArray)"
	}
	var raw []string
	if err := json.Unmarshal([]byte(args[0].String()), &raw); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	xs := make([]stark.FieldElement, len(raw))
	for i, s := range raw {
		x, err := stark.ParseFieldElement(s)
		if err != nil {
			return fmt.Sprintf("error: element %d: %v", i, err)
		}
		xs[i] = x
	}
	return stark.ComputeHashOnElements(xs...).String()
}

// GetStarkKey derives the stark key of a private key.
// Arguments: privateKey
// Returns: hex string
func GetStarkKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privateKey)"
	}
	xs, err := parseArgs(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	key, err := stark.StarkKey(xs[0])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return key.String()
}

// Sign signs a message hash.
// Arguments: privateKey, messageHash
// Returns: JSON string {"r": "0x...", "s": "0x..."}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (privateKey, messageHash)"
	}
	xs, err := parseArgs(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sig, err := stark.Sign(xs[1], xs[0])
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	resp := map[string]string{
		"r": "0x" + sig.R.Text(16),
		"s": "0x" + sig.S.Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks a signature against a stark key.
// Arguments: starkKey, messageHash, r, s
// Returns: bool
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (starkKey, messageHash, r, s)"
	}
	xs, err := parseArgs(args[:2])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	r, okR := new(big.Int).SetString(args[2].String(), 0)
	s, okS := new(big.Int).SetString(args[3].String(), 0)
	if !okR || !okS {
		return false
	}
	return stark.VerifyStarkKey(xs[1], &stark.Signature{R: r, S: s}, xs[0])
}

// GetSelectorFromName returns the selector of an entry point name.
// Arguments: name
// Returns: hex string
func GetSelectorFromName(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (name)"
	}
	return stark.SelectorFromName(args[0].String()).String()
}

// Helpers

func parseArgs(args []js.Value) ([]stark.FieldElement, error) {
	xs := make([]stark.FieldElement, len(args))
	for i, a := range args {
		x, err := stark.ParseFieldElement(a.String())
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		xs[i] = x
	}
	return xs, nil
}
