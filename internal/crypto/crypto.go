// Package crypto implements the password credential scheme: an iterated,
// salted key derivation for storing operator passwords and a constant-time
// verification of login attempts against the stored form.
//
// A stored credential is the text value "base64(salt):base64(derivedHash)".
// The colon can never occur inside either component because both are
// standard base64 encodings, so splitting on the first colon always yields
// exactly two parts for a well-formed credential.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random salt bytes generated per credential.
	SaltLength = 16

	// Iterations is the PBKDF2 iteration count. It is a fixed constant baked
	// into both Derive and Verify rather than stored per record; changing it
	// invalidates all previously stored credentials. Parameter agility is an
	// explicit non-goal of this scheme.
	Iterations = 120_000

	// KeyLength is the derived hash length in bytes (256 bits).
	KeyLength = 32

	// credentialDelimiter separates the salt from the derived hash in the
	// stored text form.
	credentialDelimiter = ":"
)

// ErrMalformedCredential is returned by Verify when a stored credential does
// not decode into exactly a salt part and a hash part. Callers treat it as a
// verification failure but should log it as a data-integrity event.
var ErrMalformedCredential = errors.New("malformed stored credential")

// Derive generates a new credential for the given plaintext password.
//
// It draws a SaltLength-byte salt from the system CSPRNG, runs
// PBKDF2-SHA256 with the fixed Iterations and KeyLength parameters, and
// returns the encoded "salt:hash" pair. Two calls with the same plaintext
// produce different credentials because of the random salt, but both verify
// against that plaintext.
//
// The only error source is the system RNG.
func Derive(plaintext string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := deriveKey(plaintext, salt)

	return base64.StdEncoding.EncodeToString(salt) +
		credentialDelimiter +
		base64.StdEncoding.EncodeToString(hash), nil
}

// Verify checks a plaintext password against a stored credential.
//
// An empty plaintext or empty stored value is an ordinary authentication
// failure and returns (false, nil). A stored value that does not split into
// exactly two base64 parts returns (false, ErrMalformedCredential). The hash
// comparison uses [subtle.ConstantTimeCompare] so that timing does not
// depend on the number of matching prefix bytes.
func Verify(plaintext, stored string) (bool, error) {
	if plaintext == "" || stored == "" {
		return false, nil
	}

	salt, want, err := decodeCredential(stored)
	if err != nil {
		return false, err
	}

	got := deriveKey(plaintext, salt)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// deriveKey runs the key-derivation function with the package's fixed
// parameters.
func deriveKey(plaintext string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plaintext), salt, Iterations, KeyLength, sha256.New)
}

// decodeCredential splits a stored credential on its first delimiter and
// base64-decodes both components.
func decodeCredential(stored string) (salt, hash []byte, err error) {
	saltPart, hashPart, found := strings.Cut(stored, credentialDelimiter)
	if !found || saltPart == "" || hashPart == "" {
		return nil, nil, ErrMalformedCredential
	}

	salt, err = base64.StdEncoding.DecodeString(saltPart)
	if err != nil {
		return nil, nil, ErrMalformedCredential
	}

	hash, err = base64.StdEncoding.DecodeString(hashPart)
	if err != nil {
		return nil, nil, ErrMalformedCredential
	}

	return salt, hash, nil
}
