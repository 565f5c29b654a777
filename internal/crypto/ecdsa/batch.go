package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidBatch is returned for empty or mismatched batch inputs.
var ErrInvalidBatch = errors.New("ecdsa: invalid batch")

// SignBatch signs each hash with priv, running at most parallelism
// signings at once (unbounded if parallelism <= 0). Signatures are
// returned in input order. Since signing is deterministic the output is
// the same as calling Sign for each hash in turn.
func SignBatch(priv *PrivateKey, hashes []*big.Int, parallelism int) ([]*Signature, error) {
	if len(hashes) == 0 {
		return nil, ErrInvalidBatch
	}

	var g errgroup.Group
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	sigs := make([]*Signature, len(hashes))
	for i, h := range hashes {
		g.Go(func() error {
			sig, err := Sign(priv, h)
			if err != nil {
				return fmt.Errorf("ecdsa: batch item %d: %w", i, err)
			}
			sigs[i] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sigs, nil
}

// VerifyBatch verifies sigs[i] against hashes[i] under pub and returns
// one result per pair.
func VerifyBatch(pub *PublicKey, hashes []*big.Int, sigs []*Signature, parallelism int) ([]bool, error) {
	if len(hashes) == 0 || len(hashes) != len(sigs) {
		return nil, fmt.Errorf("%w: %d hashes, %d signatures", ErrInvalidBatch, len(hashes), len(sigs))
	}

	var g errgroup.Group
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	results := make([]bool, len(hashes))
	for i := range hashes {
		g.Go(func() error {
			results[i] = Verify(pub, hashes[i], sigs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
