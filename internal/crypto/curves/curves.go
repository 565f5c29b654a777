package curves

import (
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// Params holds the constants of the STARK curve
// y^2 = x^3 + Alpha*x + Beta over the field of order P.
type Params struct {
	P       *big.Int // field prime
	N       *big.Int // order of the generator
	Alpha   *big.Int
	Beta    *big.Int
	Gx, Gy  *big.Int // generator
	BitSize int      // bit length of N
}

var (
	alpha = field.NewFromUint64(1)
	beta  = mustElement("0x6f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89")

	n, _ = new(big.Int).SetString("800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f", 16)

	generator = Point{
		x:      mustElement("0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"),
		y:      mustElement("0x5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f"),
		finite: true,
	}
)

// Stark returns a copy of the curve parameters.
func Stark() *Params {
	return &Params{
		P:       field.Modulus(),
		N:       Order(),
		Alpha:   alpha.BigInt(),
		Beta:    beta.BigInt(),
		Gx:      generator.x.BigInt(),
		Gy:      generator.y.BigInt(),
		BitSize: n.BitLen(),
	}
}

// Order returns a copy of the group order N.
func Order() *big.Int {
	return new(big.Int).Set(n)
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}

// ScalarBaseMult computes k * G.
func ScalarBaseMult(k *big.Int) Point {
	return generator.ScalarMult(k)
}

func mustElement(s string) field.Element {
	e, err := field.Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}
