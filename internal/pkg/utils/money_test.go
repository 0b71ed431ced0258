package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTk(t *testing.T) {
	assert.Equal(t, "৳0", FormatTk(0))
	assert.Equal(t, "৳500", FormatTk(500))
	assert.Equal(t, "৳5,000", FormatTk(5000))
	assert.Equal(t, "৳1,250,000", FormatTk(1250000))
}

func TestFormatTkPlain(t *testing.T) {
	assert.Equal(t, "0", FormatTkPlain(0))
	assert.Equal(t, "5,000", FormatTkPlain(5000))
}
