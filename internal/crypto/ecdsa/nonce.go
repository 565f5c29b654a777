package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// nonceRFC6979 derives a nonce in [1, order) from the private key and the
// message hash as described in RFC 6979 section 3.2, using HMAC-SHA256.
// extra is appended to the seed material (section 3.6) and is how retries
// get a fresh nonce for the same message.
func nonceRFC6979(order, priv *big.Int, hash, extra []byte) *big.Int {
	qlen := order.BitLen()
	rolen := (qlen + 7) / 8

	seed := make([]byte, 0, 2*rolen+len(extra))
	seed = append(seed, int2octets(priv, rolen)...)
	seed = append(seed, bits2octets(hash, order, rolen)...)
	seed = append(seed, extra...)

	v := bytes.Repeat([]byte{0x01}, sha256.Size)
	k := make([]byte, sha256.Size)

	k = mac(k, v, []byte{0x00}, seed)
	v = mac(k, v)
	k = mac(k, v, []byte{0x01}, seed)
	v = mac(k, v)

	for {
		var t []byte
		for len(t) < rolen {
			v = mac(k, v)
			t = append(t, v...)
		}

		secret := bits2int(t, qlen)
		if secret.Sign() > 0 && secret.Cmp(order) < 0 {
			return secret
		}

		k = mac(k, v, []byte{0x00})
		v = mac(k, v)
	}
}

// starkNonce is the nonce used when signing msgHash. Hashes that are one
// nibble short of a whole byte count are shifted left by 4 bits first so
// that the result agrees with the elliptic.js based signers. seed, when
// set, is passed as extra entropy.
func starkNonce(priv, msgHash, seed *big.Int) *big.Int {
	z := new(big.Int).Set(msgHash)
	if bl := z.BitLen(); bl >= 248 && bl%8 >= 1 && bl%8 <= 4 {
		z.Lsh(z, 4)
	}

	var extra []byte
	if seed != nil {
		extra = seed.Bytes()
	}
	return nonceRFC6979(n, priv, z.Bytes(), extra)
}

func mac(key []byte, parts ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func bits2int(b []byte, qlen int) *big.Int {
	x := new(big.Int).SetBytes(b)
	if l := len(b) * 8; l > qlen {
		x.Rsh(x, uint(l-qlen))
	}
	return x
}

func int2octets(x *big.Int, rolen int) []byte {
	return x.FillBytes(make([]byte, rolen))
}

func bits2octets(b []byte, order *big.Int, rolen int) []byte {
	z := bits2int(b, order.BitLen())
	if z.Cmp(order) >= 0 {
		z.Sub(z, order)
	}
	return int2octets(z, rolen)
}
