package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateCode returns a random hex string of the given byte length.
func GenerateCode(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateOrderCode builds the human-readable reference shown to
// customers and staff, e.g. ORD-4F21A9.
func GenerateOrderCode() (string, error) {
	code, err := GenerateCode(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s", strings.ToUpper(code)), nil
}
