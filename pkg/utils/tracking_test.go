package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID(t *testing.T) {
	pattern := regexp.MustCompile(`^TRK\d{8}$`)

	for i := 0; i < 100; i++ {
		id, err := GenerateTrackingID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateTrackingID_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateTrackingID()
		require.NoError(t, err)
		seen[id] = true
	}
	// 50 draws from a 10^8 space should essentially never all collide
	assert.Greater(t, len(seen), 1)
}

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN[0-9A-F]{8}$`)

	id, err := GenerateTransactionID()
	require.NoError(t, err)
	assert.Regexp(t, pattern, id)
}
