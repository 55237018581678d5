// Package derivation computes program-owned addresses. A derived address is a
// deterministic function of a list of seed bytes and a disambiguating nonce,
// no private key for it ever exists. Code holding the seeds can produce a
// Signer for the address and authorize outbound transfers or mints on behalf
// of it, which is how a pool acts as custodian of its vaults.
package derivation

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// domain separation tag, changing it invalidates every derived address.
var tag = []byte("ammd/derived/v1")

var (
	// ErrNoValidNonce ...
	ErrNoValidNonce = errors.New("no valid nonce found for the given seeds")
	// ErrInvalidNonce is thrown when a nonce does not yield a valid address
	// for the given seeds.
	ErrInvalidNonce = errors.New("nonce does not derive a valid address")
)

// Derive returns the address derived from the given seeds along with the
// nonce that disambiguates it. The nonce is searched downwards from 255 and
// must be persisted alongside the seeds to later rebuild a Signer cheaply.
func Derive(seeds ...[]byte) (string, uint8, error) {
	for nonce := 255; nonce >= 0; nonce-- {
		addr, err := DeriveWithNonce(uint8(nonce), seeds...)
		if err != nil {
			continue
		}
		return addr, uint8(nonce), nil
	}
	return "", 0, ErrNoValidNonce
}

// DeriveWithNonce recomputes the address for a known (seeds, nonce) pair.
func DeriveWithNonce(nonce uint8, seeds ...[]byte) (string, error) {
	h := sha256.New()
	h.Write(tag)
	for _, seed := range seeds {
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}
	h.Write([]byte{nonce})
	buf := h.Sum(nil)

	// a leading zero byte marks the candidate as unusable and forces the
	// nonce search to keep probing, so that holding a valid nonce carries
	// information and cannot be guessed as a constant.
	if buf[0] == 0 {
		return "", ErrInvalidNonce
	}
	return hex.EncodeToString(buf), nil
}

// Signer is the signing credential of a derived address. It proves control by
// recomputing the address from the seeds it holds.
type Signer struct {
	seeds [][]byte
	nonce uint8
}

// NewSigner returns the signing credential for the given (seeds, nonce) pair.
func NewSigner(nonce uint8, seeds ...[]byte) *Signer {
	return &Signer{seeds: seeds, nonce: nonce}
}

// Address returns the derived address this credential controls, or an empty
// string if the pair is not valid.
func (s *Signer) Address() string {
	addr, err := DeriveWithNonce(s.nonce, s.seeds...)
	if err != nil {
		return ""
	}
	return addr
}
