package metrics

import (
	"testing"

	"gotest.tools/v3/assert"
)

func Test_formatBlockID(t *testing.T) {
	t.Parallel()

	// EXERCISE and VERIFY
	assert.Equal(t, formatBlockID(0), "0")
	assert.Equal(t, formatBlockID(42), "42")
	assert.Equal(t, formatBlockID(18446744073709551615), "18446744073709551615")
}

func Test_formatSuccess(t *testing.T) {
	t.Parallel()

	// EXERCISE and VERIFY
	assert.Equal(t, formatSuccess(true), "true")
	assert.Equal(t, formatSuccess(false), "false")
}
