package fragment

import (
	"fmt"
	"strings"
)

// CaseWhenInList emits a 0/1 membership flag for column against a fixed
// literal list, aliased as outputColumn:
//
//	CASE WHEN status IN ('A', 'B') THEN 1 ELSE 0 END AS flag
//
// Every value is rendered as a single-quoted literal regardless of its Go
// type, so numbers are quoted too ('1', '2') and the engine's implicit
// casting is relied on. Embedded quote characters are not escaped, so a
// value containing a single quote produces broken (and unsafe) SQL -- the
// caller owns literal safety. An empty values list renders IN (), which most
// dialects reject at execution time.
func CaseWhenInList(column string, values []any, outputColumn string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("'%v'", v)
	}
	return fmt.Sprintf("CASE WHEN %s IN (%s) THEN 1 ELSE 0 END AS %s",
		column, strings.Join(quoted, ", "), outputColumn)
}
