package fragment

import "fmt"

// AssertRelationship emits a data quality query returning every childColumn
// value in childTable that has no matching parentColumn value in
// parentTable. Zero rows means the referential-integrity assertion holds;
// each returned row is an orphaned key, aliased invalid_key.
//
// Standard NOT IN semantics apply: a NULL in the parent-side subquery makes
// the predicate indeterminate, which can mask violations. The parent side is
// deliberately not filtered for NULLs here; callers needing strict behavior
// should exclude them in parentColumn's source.
func AssertRelationship(childTable, childColumn, parentTable, parentColumn string) string {
	return fmt.Sprintf("select %s as invalid_key from %s where %s not in (select %s from %s)",
		childColumn, childTable, childColumn, parentColumn, parentTable)
}
