package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3rSecret", hashed)
	assert.True(t, CheckPassword(hashed, "Sup3rSecret"))
	assert.False(t, CheckPassword(hashed, "sup3rsecret"))
	assert.False(t, CheckPassword(hashed, ""))
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Sup3rSecret", true},
		{"Aa1bcdef", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoNumbersHere", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.valid {
			assert.NoError(t, err, "password %q should be accepted", tc.password)
		} else {
			assert.Error(t, err, "password %q should be rejected", tc.password)
		}
	}
}
