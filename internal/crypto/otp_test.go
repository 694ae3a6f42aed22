package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func TestCodeGenerator_Format(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 2000 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		require.True(t, isDigits(code), "code %q must be all digits", code)
		seen[code] = struct{}{}
	}

	// 2000 draws from a million values: collisions are possible, a
	// constant output is not.
	assert.Greater(t, len(seen), 1900)
}

func TestFormatCode_PreservesLeadingZeros(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "000000"},
		{7, "000007"},
		{4521, "004521"},
		{999999, "999999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCode(tt.n))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestCodeGenerator_RandomSourceError(t *testing.T) {
	gen := &randomCodeGenerator{random: failingReader{}}

	_, err := gen.Generate()
	assert.Error(t, err)
}

func TestCodesEqual(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		submitted string
		want      bool
	}{
		{"exact", "004521", "004521", true},
		{"surrounding whitespace", " 004521\n", "\t004521 ", true},
		{"leading zero dropped", "004521", "4521", false},
		{"different code", "004521", "004522", false},
		{"empty submitted", "004521", "", false},
		{"both empty", "", "", false},
		{"inner whitespace", "004521", "004 521", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodesEqual(tt.stored, tt.submitted))
		})
	}
}
