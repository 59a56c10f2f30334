package dataoutput

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tornado is the sample text the peer's own test-suite encodes.
const (
	tornado    = "You had me at meat tornado."
	tornadoHex = "596F7520686164206D65206174206D65617420746F726E61646F2E"
)

// assertHex compares the output against an upper-case hex string, which
// keeps mismatches readable byte by byte.
func assertHex(t *testing.T, expected string, actual []byte) {
	t.Helper()
	assert.Equal(t, strings.ToUpper(expected), strings.ToUpper(hex.EncodeToString(actual)))
}

// decodeArrayLen reads one array-length prefix, returning the count and the
// number of bytes it took. A null array decodes as -1.
func decodeArrayLen(t *testing.T, b []byte) (int32, int) {
	t.Helper()
	require.NotEmpty(t, b)
	switch b[0] {
	case arrayLenNull:
		return NullArrayLen, 1
	case arrayLen16:
		require.GreaterOrEqual(t, len(b), 3)
		return int32(binary.BigEndian.Uint16(b[1:])), 3
	case arrayLen32:
		require.GreaterOrEqual(t, len(b), 5)
		return int32(binary.BigEndian.Uint32(b[1:])), 5
	default:
		return int32(b[0]), 1
	}
}
