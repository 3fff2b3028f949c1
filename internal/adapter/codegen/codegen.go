// Package codegen produces ticket codes. Codes are the admission
// credential, so they come from crypto/rand and are never derived from
// row IDs or sequences.
package codegen

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// codeBytes gives 128 bits of entropy, 32 uppercase hex characters.
const codeBytes = 16

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewCode() (string, error) {
	buf := make([]byte, codeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
