// Package pedersen implements the two-input Pedersen hash over the STARK
// curve.
package pedersen

import (
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/curves"
	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// LowBits is the size of the low chunk of each input. The remaining
// high bits (at most 4, since P < 2^252) use a separate generator.
const LowBits = 248

var lowMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), LowBits), big.NewInt(1))

// HashPoint returns
//
//	P0 + a_low*P1 + a_high*P2 + b_low*P3 + b_high*P4
//
// where x_low is the 248 least significant bits of x and x_high the rest.
func HashPoint(a, b field.Element) curves.Point {
	acc := shiftPoint
	for i, x := range []field.Element{a, b} {
		low, high := split(x)
		acc = acc.Add(inputPoints[2*i].ScalarMult(low))
		acc = acc.Add(inputPoints[2*i+1].ScalarMult(high))
	}
	return acc
}

// Hash compresses a and b into a single field element, the x-coordinate
// of HashPoint(a, b).
func Hash(a, b field.Element) field.Element {
	return HashPoint(a, b).X()
}

// HashElements folds xs with Hash starting from 0 and finally hashes in
// the number of elements:
//
//	h(h(...h(h(0, x1), x2)..., xn), n)
func HashElements(xs ...field.Element) field.Element {
	var acc field.Element
	for _, x := range xs {
		acc = Hash(acc, x)
	}
	return Hash(acc, field.NewFromUint64(uint64(len(xs))))
}

// split returns the low and high chunks of x's canonical representative.
func split(x field.Element) (*big.Int, *big.Int) {
	v := x.BigInt()
	low := new(big.Int).And(v, lowMask)
	high := v.Rsh(v, LowBits)
	return low, high
}
