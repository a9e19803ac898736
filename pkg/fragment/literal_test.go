package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"O'Brien", "'O''Brien'"},
		{"", "''"},
		{"''", "''''''"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteLiteral(tt.in), "QuoteLiteral(%q)", tt.in)
	}
}

func TestQuoteLiteral_MakesListValuesSafe(t *testing.T) {
	// The generators never escape implicitly; quoting must happen before the
	// value is interpolated.
	safe := QuoteLiteral("O'Brien")
	assertWellFormed(t, "select 1 where name = "+safe)
}
