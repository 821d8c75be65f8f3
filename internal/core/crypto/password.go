// Package crypto implements the credential hashing scheme: an HMAC-SHA512
// digest of the password keyed with a per-call random salt. The scheme is
// fixed system-wide; there is no algorithm negotiation.
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
)

// SaltSize is the HMAC key length in bytes, matching the SHA-512 block size.
const SaltSize = 64

// Hash derives a digest and a fresh random salt for password. The salt is
// unique per call, so hashing the same password twice yields different pairs.
func Hash(password string) (digest, salt []byte, err error) {
	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// Verify recomputes the digest for password with the stored salt and compares
// it against the stored digest in constant time.
func Verify(password string, digest, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), digest)
}
