// Package cryptox produces and checks password digests.
//
// Digests use argon2id with a random per-password salt and are stored in the
// usual PHC string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
//
// Plaintext passwords never leave this package in any other shape.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"golang.org/x/crypto/argon2"
)

// Params are the argon2id cost parameters.
type Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams follow the RFC 9106 second recommended option.
var DefaultParams = Params{Memory: 64 * 1024, Time: 1, Threads: 4, SaltLen: 16, KeyLen: 32}

// ErrMalformedDigest is returned when a stored digest cannot be parsed.
var ErrMalformedDigest = errors.New("malformed password digest")

var b64 = base64.RawStdEncoding

// dummyDigest is compared against when an account does not exist, so the
// lookup costs the same as a real verification.
var dummyDigest = mustHash("scriptoria-dummy-password", DefaultParams)

// DeriveKey runs argon2id over password and salt.
func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// HashPassword returns the encoded digest of password using DefaultParams.
func HashPassword(password string) (string, error) {
	return hashWithParams(password, DefaultParams)
}

func hashWithParams(password string, p Params) (string, error) {
	salt := common.GenerateRandByteArray(int(p.SaltLen))
	key := DeriveKey([]byte(password), salt, p)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

func mustHash(password string, p Params) string {
	d, err := hashWithParams(password, p)
	if err != nil {
		panic(err)
	}
	return d
}

// VerifyPassword reports whether password matches the encoded digest.
// The comparison is constant time.
func VerifyPassword(digest, password string) (bool, error) {
	p, salt, key, err := decode(digest)
	if err != nil {
		return false, err
	}
	p.KeyLen = uint32(len(key))
	candidate := DeriveKey([]byte(password), salt, p)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// VerifyDummy burns the same work as VerifyPassword and always fails.
func VerifyDummy(password string) {
	_, _ = VerifyPassword(dummyDigest, password)
}

func decode(digest string) (Params, []byte, []byte, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrMalformedDigest
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, ErrMalformedDigest
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrMalformedDigest
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, ErrMalformedDigest
	}
	p.SaltLen = uint32(len(salt))
	return p, salt, key, nil
}
