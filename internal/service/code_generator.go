//go:generate mockery --name CodeGenerator --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// codeAlphabet excludes the visually ambiguous characters 0, O, 1 and I.
// Its length is 32, so a random byte modulo the length is uniform.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeGenerator produces short random codes paired with an expiration
// timestamp. Used for both account activation and password reset, which
// differ only in TTL.
type CodeGenerator interface {
	Generate(length int, ttl time.Duration) (string, time.Time, error)
}

type randomCodeGenerator struct {
	now func() time.Time
}

func NewCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{now: time.Now}
}

func (g *randomCodeGenerator) Generate(length int, ttl time.Duration) (string, time.Time, error) {
	if length <= 0 {
		return "", time.Time{}, fmt.Errorf("code length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("randomCodeGenerator.Generate: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(buf), g.now().Add(ttl), nil
}
