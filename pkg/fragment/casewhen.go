package fragment

import (
	"fmt"
	"strings"
)

// When is one condition/result pair of a CASE expression. Pairs are kept in
// a slice, never a map: SQL CASE stops at the first matching WHEN, so the
// caller-supplied order is part of the contract and must survive rendering.
type When struct {
	Cond   string
	Result string
}

// Else wraps a provided ELSE value. CaseWhen distinguishes "no else given"
// (nil) from legitimate values like "0" or "" by pointer presence, never by
// truthiness.
func Else(v string) *string {
	return &v
}

// CaseWhen emits a CASE expression aliased as outputColumn, with one WHEN
// clause per pair in caller order. Conditions and results are raw SQL
// fragments used verbatim.
//
// The ELSE keyword is always emitted; when elseValue is nil no value follows
// it, leaving the clause text empty. An empty whens slice produces a CASE
// with no WHEN clauses, which is invalid SQL (caller error, not detected).
func CaseWhen(outputColumn string, whens []When, elseValue *string) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, w := range whens {
		fmt.Fprintf(&b, " WHEN %s THEN %s", w.Cond, w.Result)
	}
	b.WriteString(" ELSE")
	if elseValue != nil {
		b.WriteString(" ")
		b.WriteString(*elseValue)
	}
	fmt.Fprintf(&b, " END AS %s", outputColumn)
	return b.String()
}
