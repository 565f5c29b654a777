package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

func point(t *testing.T, x, y string) Point {
	t.Helper()
	px, err := field.Parse(x)
	require.NoError(t, err)
	py, err := field.Parse(y)
	require.NoError(t, err)
	p, err := NewPoint(px, py)
	require.NoError(t, err)
	return p
}

func TestParams(t *testing.T) {
	params := Stark()
	assert.Equal(t, 252, params.BitSize)
	assert.True(t, params.P.ProbablyPrime(20))
	assert.True(t, params.N.ProbablyPrime(20))
	assert.Equal(t, int64(1), params.Alpha.Int64())

	// callers cannot modify the package constants
	params.N.SetInt64(0)
	assert.Equal(t, 252, Order().BitLen())
	assert.True(t, Generator().IsOnCurve())
}

func TestNewPointRejectsOffCurve(t *testing.T) {
	_, err := NewPoint(field.NewFromUint64(1), field.NewFromUint64(2))
	require.ErrorIs(t, err, ErrInvalidPoint)

	g := Generator()
	_, err = NewPoint(g.X(), g.Y().Add(field.NewFromUint64(1)))
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestAddAndDouble(t *testing.T) {
	g := Generator()
	twoG := point(t,
		"0x759ca09377679ecd535a81e83039658bf40959283187c654c5416f439403cf5",
		"0x6f524a3400e7708d5c01a28598ad272e7455aa88778b19f93b562d7a9646c41")
	threeG := point(t,
		"0x411494b501a98abd8262b0da1351e17899a0c4ef23dd2f96fec5ba847310b20",
		"0x7e1b3ebac08924d2c26f409549191fcf94f3bf6f301ed3553e22dfb802f0686")

	assert.True(t, g.Double().Equal(twoG))
	assert.True(t, g.Add(g).Equal(twoG))
	assert.True(t, twoG.Add(g).Equal(threeG))
	assert.True(t, g.Add(twoG).Equal(threeG))
	assert.True(t, threeG.Sub(g).Equal(twoG))
}

func TestIdentity(t *testing.T) {
	g := Generator()
	inf := Infinity()

	assert.True(t, inf.IsInfinity())
	assert.True(t, inf.IsOnCurve())
	assert.True(t, g.Add(inf).Equal(g))
	assert.True(t, inf.Add(g).Equal(g))
	assert.True(t, g.Add(g.Neg()).IsInfinity())
	assert.True(t, g.Sub(g).IsInfinity())
	assert.True(t, inf.Double().IsInfinity())
	assert.True(t, Point{}.Equal(inf))
	assert.False(t, g.Equal(inf))
}

func TestScalarMult(t *testing.T) {
	g := Generator()

	t.Run("small scalars", func(t *testing.T) {
		assert.True(t, ScalarBaseMult(big.NewInt(1)).Equal(g))
		assert.True(t, ScalarBaseMult(big.NewInt(2)).Equal(g.Double()))
		assert.True(t, ScalarBaseMult(big.NewInt(3)).Equal(g.Double().Add(g)))
	})

	t.Run("zero and order", func(t *testing.T) {
		assert.True(t, ScalarBaseMult(big.NewInt(0)).IsInfinity())
		assert.True(t, ScalarBaseMult(Order()).IsInfinity())
		assert.True(t, g.ScalarMult(nil).IsInfinity())
		assert.True(t, Infinity().ScalarMult(big.NewInt(12345)).IsInfinity())
	})

	t.Run("negative and reduced", func(t *testing.T) {
		nMinusOne := new(big.Int).Sub(Order(), big.NewInt(1))
		assert.True(t, ScalarBaseMult(nMinusOne).Equal(g.Neg()))
		assert.True(t, ScalarBaseMult(big.NewInt(-1)).Equal(g.Neg()))

		nPlusTwo := new(big.Int).Add(Order(), big.NewInt(2))
		assert.True(t, ScalarBaseMult(nPlusTwo).Equal(g.Double()))
	})

	t.Run("public key for 12345", func(t *testing.T) {
		q := ScalarBaseMult(big.NewInt(12345))
		assert.Equal(t, "0x399ab58e2d17603eeccae95933c81d504ce475eb1bd0080d2316b84232e133c", q.X().String())
		assert.Equal(t, "0x78bfe903d7f0fd5c82bc9798f1d33c399d14a31f2d6e15e6607a0e2366d3fe4", q.Y().String())
	})

	t.Run("composition", func(t *testing.T) {
		a, b := big.NewInt(987654321), big.NewInt(123456789)
		ab := new(big.Int).Mul(a, b)
		assert.True(t, ScalarBaseMult(a).ScalarMult(b).Equal(ScalarBaseMult(ab)))

		sum := new(big.Int).Add(a, b)
		assert.True(t, ScalarBaseMult(a).Add(ScalarBaseMult(b)).Equal(ScalarBaseMult(sum)))
	})
}

func TestPointFromX(t *testing.T) {
	g := Generator()
	p, err := PointFromX(g.X())
	require.NoError(t, err)
	// G has an odd y, so the even candidate is -G
	assert.True(t, p.Equal(g.Neg()))
	assert.Equal(t, "0x7a997f9f55b68e04841b7fe20b9139d21ac132ee541bc5cd78cfff3c91723e2", p.Y().String())

	var missing bool
	for i := uint64(0); i < 64; i++ {
		if _, err := PointFromX(field.NewFromUint64(i)); err != nil {
			require.ErrorIs(t, err, ErrInvalidPoint)
			missing = true
			break
		}
	}
	assert.True(t, missing, "expected some x without a matching y")
}

func TestEncoding(t *testing.T) {
	g := Generator()
	b := g.Bytes()
	p, err := ParsePoint(b[:])
	require.NoError(t, err)
	assert.True(t, p.Equal(g))

	zero := Infinity().Bytes()
	p, err = ParsePoint(zero[:])
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())

	_, err = ParsePoint(b[:10])
	require.Error(t, err)

	b[63] ^= 1
	_, err = ParsePoint(b[:])
	require.ErrorIs(t, err, ErrInvalidPoint)

	var overflow [PointSize]byte
	for i := range overflow[:field.ByteSize] {
		overflow[i] = 0xff
	}
	_, err = ParsePoint(overflow[:])
	require.ErrorIs(t, err, field.ErrOutOfRange)

	assert.Equal(t, "infinity", Infinity().String())
}
