// Package fragment assembles parameterized SQL text fragments for data
// transformation pipelines: SCD Type 2 validity-interval queries, CASE-based
// column derivation, list-membership flags, and referential-integrity
// assertion queries.
//
// Every generator is a pure function from arguments to SQL text. Nothing is
// executed, parsed, or validated here: table and column names are used
// verbatim, and literal values are interpolated without escaping. Callers
// own identifier quoting and literal safety (QuoteLiteral is available as an
// explicit opt-in). Calling any generator twice with the same arguments
// yields byte-identical output, and all generators are safe for concurrent
// use.
package fragment
