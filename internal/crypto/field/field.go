package field

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Common errors returned by field operations.
var (
	ErrDivisionByZero = errors.New("field: division by zero")
	ErrOutOfRange     = errors.New("field: value out of range")
)

// ByteSize is the length of the canonical big-endian encoding of an Element.
const ByteSize = 32

var (
	// p = 2^251 + 17 * 2^192 + 1
	p, _ = new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)

	pMinus2 = new(big.Int).Sub(p, big.NewInt(2))
	zero    = new(big.Int)
)

// Modulus returns a copy of the field prime P.
func Modulus() *big.Int {
	return new(big.Int).Set(p)
}

// Element is an integer modulo P. The wrapped value is always in [0, P)
// and is never mutated once the Element is built, so Elements can be
// copied and shared freely. The zero value is 0.
type Element struct {
	v *big.Int
}

// New reduces v modulo P. Negative values wrap around.
func New(v *big.Int) Element {
	if v == nil {
		return Element{}
	}
	return Element{v: new(big.Int).Mod(v, p)}
}

// NewFromUint64 returns the element with value v.
func NewFromUint64(v uint64) Element {
	return Element{v: new(big.Int).SetUint64(v)}
}

// NewCanonical returns v as an element, failing with ErrOutOfRange
// unless 0 <= v < P.
func NewCanonical(v *big.Int) (Element, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(p) >= 0 {
		return Element{}, ErrOutOfRange
	}
	return Element{v: new(big.Int).Set(v)}, nil
}

// SetBytes interprets b as a big-endian integer and reduces it modulo P.
func SetBytes(b []byte) Element {
	return New(new(big.Int).SetBytes(b))
}

// Parse reads a canonical element written either as 0x-prefixed hex or
// as a decimal string.
func Parse(s string) (Element, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Element{}, fmt.Errorf("field: cannot parse %q", s)
	}
	e, err := NewCanonical(v)
	if err != nil {
		return Element{}, fmt.Errorf("%w: %s", err, s)
	}
	return e, nil
}

func (e Element) int() *big.Int {
	if e.v == nil {
		return zero
	}
	return e.v
}

// Add returns e + o mod P.
func (e Element) Add(o Element) Element {
	return New(new(big.Int).Add(e.int(), o.int()))
}

// Sub returns e - o mod P.
func (e Element) Sub(o Element) Element {
	return New(new(big.Int).Sub(e.int(), o.int()))
}

// Neg returns -e mod P.
func (e Element) Neg() Element {
	return New(new(big.Int).Neg(e.int()))
}

// Mul returns e * o mod P.
func (e Element) Mul(o Element) Element {
	return New(new(big.Int).Mul(e.int(), o.int()))
}

// Square returns e^2 mod P.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Exp returns e^k mod P. k must be non-negative.
func (e Element) Exp(k *big.Int) Element {
	return Element{v: new(big.Int).Exp(e.int(), k, p)}
}

// Inverse returns e^-1 computed as e^(P-2), so the work done is the same
// for every non-zero input.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	return e.Exp(pMinus2), nil
}

// Div returns e / o mod P.
func (e Element) Div(o Element) (Element, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// Sqrt returns a square root of e and true, or false if e is not a
// quadratic residue. Of the two roots the even one is returned.
func (e Element) Sqrt() (Element, bool) {
	r := new(big.Int).ModSqrt(e.int(), p)
	if r == nil {
		return Element{}, false
	}
	if r.Bit(0) == 1 {
		r.Sub(p, r)
	}
	return New(r), true
}

// Equal reports whether e and o represent the same element.
func (e Element) Equal(o Element) bool {
	return e.int().Cmp(o.int()) == 0
}

// Cmp compares the canonical representatives of e and o.
func (e Element) Cmp(o Element) int {
	return e.int().Cmp(o.int())
}

// IsZero reports whether e is 0.
func (e Element) IsZero() bool {
	return e.int().Sign() == 0
}

// BitLen returns the bit length of the canonical representative.
func (e Element) BitLen() int {
	return e.int().BitLen()
}

// BigInt returns a copy of the canonical representative.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.int())
}

// Bytes returns the 32-byte big-endian encoding of e.
func (e Element) Bytes() [ByteSize]byte {
	var out [ByteSize]byte
	e.int().FillBytes(out[:])
	return out
}

// Text returns the representative in the given base.
func (e Element) Text(base int) string {
	return e.int().Text(base)
}

// String returns e as 0x-prefixed lowercase hex.
func (e Element) String() string {
	return "0x" + e.int().Text(16)
}
