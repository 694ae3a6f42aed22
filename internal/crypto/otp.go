package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// CodeLength is the number of digits in a reset code.
const CodeLength = 6

var codeSpace = big.NewInt(1_000_000)

type randomCodeGenerator struct {
	random io.Reader
}

// NewCodeGenerator returns a [CodeGenerator] reading from the OS CSPRNG.
func NewCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{random: rand.Reader}
}

func (g *randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(g.random, codeSpace)
	if err != nil {
		return "", fmt.Errorf("error generating reset code: %w", err)
	}
	return formatCode(n.Int64()), nil
}

func formatCode(n int64) string {
	return fmt.Sprintf("%0*d", CodeLength, n)
}

// CodesEqual compares a stored and a submitted code after trimming
// surrounding whitespace from both. The comparison is constant-time with
// respect to the code contents.
func CodesEqual(stored, submitted string) bool {
	a := strings.TrimSpace(stored)
	b := strings.TrimSpace(submitted)
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
