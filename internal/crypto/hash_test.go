package crypto

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{
			// echo -n secret123 | sha256sum
			name:     "secret123",
			password: "secret123",
			want:     "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4",
		},
		{
			// echo -n '' | sha256sum
			name:     "empty password",
			password: "",
			want:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashPassword(tt.password))
		})
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, HashPassword("hunter2"), HashPassword("hunter2"))
	assert.NotEqual(t, HashPassword("hunter2"), HashPassword("hunter3"))
	assert.Len(t, HashPassword("anything"), 64)
}

func TestHashPassword_NoCollisionsAcrossManyInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[string]string, 10000)

	for i := 0; i < 10000; i++ {
		pw := fmt.Sprintf("pw-%d-%d", i, rng.Int63())
		digest := HashPassword(pw)
		prev, clash := seen[digest]
		require.Falsef(t, clash, "digest collision between %q and %q", prev, pw)
		seen[digest] = pw
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret123")

	assert.True(t, VerifyPassword("secret123", digest))
	assert.False(t, VerifyPassword("wrong", digest))
	assert.False(t, VerifyPassword("secret123", ""))
	assert.False(t, VerifyPassword("", ""))
}
