package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseWhenInList_Strings(t *testing.T) {
	sql := CaseWhenInList("status", []any{"A", "B"}, "flag")
	assert.Equal(t, "CASE WHEN status IN ('A', 'B') THEN 1 ELSE 0 END AS flag", sql)
	assertWellFormed(t, sql)
}

func TestCaseWhenInList_NumbersAreQuoted(t *testing.T) {
	// All values render as quoted literals regardless of Go type; the engine's
	// implicit casting handles numeric columns.
	sql := CaseWhenInList("code", []any{1, 2}, "flag")
	assert.Contains(t, sql, "code IN ('1', '2')")
}

func TestCaseWhenInList_MixedValues(t *testing.T) {
	sql := CaseWhenInList("bucket", []any{"low", 10, "high"}, "known_bucket")
	assert.Equal(t, "CASE WHEN bucket IN ('low', '10', 'high') THEN 1 ELSE 0 END AS known_bucket", sql)
}

func TestCaseWhenInList_SingleValue(t *testing.T) {
	sql := CaseWhenInList("status", []any{"A"}, "is_a")
	assert.Equal(t, "CASE WHEN status IN ('A') THEN 1 ELSE 0 END AS is_a", sql)
}

func TestCaseWhenInList_EmptyListRendersEmptyIn(t *testing.T) {
	// IN () is invalid in most dialects; the generator does not catch it.
	sql := CaseWhenInList("status", nil, "flag")
	assert.Equal(t, "CASE WHEN status IN () THEN 1 ELSE 0 END AS flag", sql)
}
