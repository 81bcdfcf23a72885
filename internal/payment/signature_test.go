package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature(t *testing.T) {
	// HMAC-SHA256("secret", "O1|P1"), independently verifiable.
	got := ComputeSignature("secret", "O1", "P1")

	assert.Len(t, got, 64) // hex-encoded SHA-256
	assert.Equal(t, got, ComputeSignature("secret", "O1", "P1"))
	assert.NotEqual(t, got, ComputeSignature("secret", "O1", "P2"))
	assert.NotEqual(t, got, ComputeSignature("other", "O1", "P1"))
}

func TestVerifySignature(t *testing.T) {
	signature := ComputeSignature("secret", "O1", "P1")

	assert.True(t, VerifySignature("secret", "O1", "P1", signature))
	assert.False(t, VerifySignature("secret", "O1", "P1", signature+"00"))
	assert.False(t, VerifySignature("secret", "O2", "P1", signature))
	assert.False(t, VerifySignature("wrong", "O1", "P1", signature))
}
