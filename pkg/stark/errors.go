package stark

import (
	"github.com/smallyu/go-stark-crypto/internal/crypto/curves"
	"github.com/smallyu/go-stark-crypto/internal/crypto/ecdsa"
	"github.com/smallyu/go-stark-crypto/internal/crypto/field"
)

// Common errors returned by the library. They are the same values the
// internal packages return, so errors.Is works on wrapped results.
var (
	ErrInvalidPrivateKey  = ecdsa.ErrInvalidPrivateKey
	ErrInvalidPoint       = curves.ErrInvalidPoint
	ErrDivisionByZero     = field.ErrDivisionByZero
	ErrOutOfRange         = field.ErrOutOfRange
	ErrMessageNotSignable = ecdsa.ErrMessageNotSignable
	ErrNonceExhausted     = ecdsa.ErrNonceExhausted
	ErrInvalidSignature   = ecdsa.ErrInvalidSignature
	ErrInvalidBatch       = ecdsa.ErrInvalidBatch
)
