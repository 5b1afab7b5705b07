package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(8)
	assert.NoError(t, err)
	assert.Len(t, code, 16)

	other, err := GenerateCode(8)
	assert.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestGenerateOrderCode(t *testing.T) {
	code, err := GenerateOrderCode()
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{6}$`), code)
}
