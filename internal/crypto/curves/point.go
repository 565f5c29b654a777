package curves

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// ErrInvalidPoint is returned when coordinates do not satisfy the curve
// equation.
var ErrInvalidPoint = errors.New("curves: point is not on the curve")

// PointSize is the length of the x||y encoding returned by Point.Bytes.
const PointSize = 2 * field.ByteSize

// Point is an affine point on the STARK curve or the point at infinity.
// The zero value is the point at infinity.
type Point struct {
	x, y   field.Element
	finite bool
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the point (x, y), failing with ErrInvalidPoint if it
// does not lie on the curve.
func NewPoint(x, y field.Element) (Point, error) {
	p := Point{x: x, y: y, finite: true}
	if !p.IsOnCurve() {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// PointFromX returns the point with the given x-coordinate whose
// y-coordinate is even. The other candidate is its negation.
func PointFromX(x field.Element) (Point, error) {
	y, ok := rhs(x).Sqrt()
	if !ok {
		return Point{}, ErrInvalidPoint
	}
	return Point{x: x, y: y, finite: true}, nil
}

// ParsePoint decodes the 64-byte x||y encoding produced by Bytes. Both
// coordinates must be canonical and the point must be on the curve. The
// all-zero encoding decodes to the point at infinity.
func ParsePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return Point{}, fmt.Errorf("%w: length %d", ErrInvalidPoint, len(b))
	}
	xi := new(big.Int).SetBytes(b[:field.ByteSize])
	yi := new(big.Int).SetBytes(b[field.ByteSize:])
	if xi.Sign() == 0 && yi.Sign() == 0 {
		return Infinity(), nil
	}

	x, err := field.NewCanonical(xi)
	if err != nil {
		return Point{}, err
	}
	y, err := field.NewCanonical(yi)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y)
}

// rhs evaluates x^3 + alpha*x + beta.
func rhs(x field.Element) field.Element {
	return x.Square().Mul(x).Add(alpha.Mul(x)).Add(beta)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is always on the curve.
func (p Point) IsOnCurve() bool {
	if !p.finite {
		return true
	}
	return p.y.Square().Equal(rhs(p.x))
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns the x-coordinate. It is zero for the point at infinity.
func (p Point) X() field.Element {
	return p.x
}

// Y returns the y-coordinate. It is zero for the point at infinity.
func (p Point) Y() field.Element {
	return p.y
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.finite != q.finite {
		return false
	}
	if !p.finite {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p.
func (p Point) Neg() Point {
	if !p.finite {
		return p
	}
	return Point{x: p.x, y: p.y.Neg(), finite: true}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	if !p.finite {
		return q
	}
	if !q.finite {
		return p
	}
	if p.x.Equal(q.x) {
		if p.y.Add(q.y).IsZero() {
			return Infinity()
		}
		return p.Double()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	lambda := mustDiv(q.y.Sub(p.y), q.x.Sub(p.x))
	return p.chord(q.x, lambda)
}

// Double returns 2p.
func (p Point) Double() Point {
	if !p.finite || p.y.IsZero() {
		return Infinity()
	}

	// lambda = (3x^2 + alpha) / 2y
	num := p.x.Square().Mul(field.NewFromUint64(3)).Add(alpha)
	lambda := mustDiv(num, p.y.Add(p.y))
	return p.chord(p.x, lambda)
}

// chord finishes an addition or doubling once the slope is known.
func (p Point) chord(qx, lambda field.Element) Point {
	x3 := lambda.Square().Sub(p.x).Sub(qx)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3, finite: true}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// ScalarMult computes k * p. The scalar is reduced modulo N and processed
// most significant bit first with a Montgomery ladder over a fixed N.BitLen()
// bits, so the number of group operations does not depend on k.
func (p Point) ScalarMult(k *big.Int) Point {
	if k == nil {
		return Infinity()
	}
	s := new(big.Int).Mod(k, n)

	r0, r1 := Infinity(), p
	for i := n.BitLen() - 1; i >= 0; i-- {
		if s.Bit(i) == 0 {
			r1 = r0.Add(r1)
			r0 = r0.Double()
		} else {
			r0 = r0.Add(r1)
			r1 = r1.Double()
		}
	}
	return r0
}

// Bytes returns the 64-byte big-endian x||y encoding. The point at
// infinity encodes as all zeros, which is not a valid affine point since
// beta is non-zero.
func (p Point) Bytes() [PointSize]byte {
	var out [PointSize]byte
	if !p.finite {
		return out
	}
	x, y := p.x.Bytes(), p.y.Bytes()
	copy(out[:field.ByteSize], x[:])
	copy(out[field.ByteSize:], y[:])
	return out
}

func (p Point) String() string {
	if !p.finite {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// mustDiv divides where the denominator is known to be non-zero.
func mustDiv(num, den field.Element) field.Element {
	q, err := num.Div(den)
	if err != nil {
		panic(err)
	}
	return q
}
