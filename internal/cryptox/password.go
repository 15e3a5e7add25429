// Package cryptox implements password-at-rest protection for Todokeeper:
// a fresh random salt per record combined with a deliberately slow iterated
// hash, so offline brute-force guessing stays expensive.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random bytes prepended to every record.
	SaltLength = 32

	keyLength  = 32
	iterations = 100_000
)

// HashPassword derives a storable record from the given password.
//
// A fresh SaltLength-byte salt is drawn from crypto/rand and the key is
// derived with PBKDF2-HMAC-SHA-256 over 100 000 iterations. The returned
// record is salt || key; the salt is recovered from the record itself during
// verification, so nothing else needs to be stored.
func HashPassword(password []byte) []byte {
	salt := common.GenerateRandByteArray(SaltLength)
	key := pbkdf2.Key(password, salt, iterations, keyLength, sha256.New)

	record := make([]byte, 0, SaltLength+keyLength)
	record = append(record, salt...)
	record = append(record, key...)
	return record
}

// VerifyPassword reports whether password matches the stored record.
//
// The key is re-derived with the salt carried in the record and compared in
// constant time. Malformed (truncated) records never match.
func VerifyPassword(record, password []byte) bool {
	if len(record) <= SaltLength {
		return false
	}
	salt := record[:SaltLength]
	key := pbkdf2.Key(password, salt, iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(record[SaltLength:], key) == 1
}
