package service_test

import (
	"strings"
	"testing"
	"time"

	"dental_clinic_api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func TestCodeGenerator_Generate(t *testing.T) {
	gen := service.NewCodeGenerator()

	t.Run("code has the requested length and allowed characters only", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, _, err := gen.Generate(8, 30*time.Minute)
			require.NoError(t, err)
			assert.Len(t, code, 8)
			for _, c := range code {
				assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q in code %q", c, code)
			}
		}
	})

	t.Run("expiration reflects the TTL", func(t *testing.T) {
		before := time.Now()
		_, expiresAt, err := gen.Generate(8, 30*time.Minute)
		after := time.Now()

		require.NoError(t, err)
		assert.False(t, expiresAt.Before(before.Add(30*time.Minute)))
		assert.False(t, expiresAt.After(after.Add(30*time.Minute)))
	})

	t.Run("codes do not repeat in a small sample", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			code, _, err := gen.Generate(8, time.Minute)
			require.NoError(t, err)
			assert.False(t, seen[code], "duplicate code %q", code)
			seen[code] = true
		}
	})

	t.Run("rejects a non-positive length", func(t *testing.T) {
		_, _, err := gen.Generate(0, time.Minute)
		assert.Error(t, err)

		_, _, err = gen.Generate(-1, time.Minute)
		assert.Error(t, err)
	})
}
