package fragment

import "strings"

// QuoteLiteral renders s as a SQL string literal, doubling any embedded
// single quotes. None of the generators apply this implicitly -- interpolated
// text is always used verbatim -- so callers that accept untrusted values
// must quote them explicitly before passing them in.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
