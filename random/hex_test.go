package random_test

import (
	"encoding/hex"
	"testing"

	"github.com/nasermirzaei89/postfeed/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret(t *testing.T) {
	t.Parallel()

	assert.Len(t, random.Secret(32), 32)
	assert.NotEqual(t, random.Secret(32), random.Secret(32))
}

func TestHexString(t *testing.T) {
	t.Parallel()

	s := random.HexString(4)
	require.Len(t, s, 8)

	_, err := hex.DecodeString(s)
	require.NoError(t, err)
}
