package fragment

import (
	"fmt"
	"strings"
)

// SCD Type 2 computed column names.
const (
	ColValidFrom = "_row_valid_from"
	ColValidTo   = "_row_valid_to"
	ColIsActive  = "_is_active"
)

// SCDType2 emits a select over sourceTable that adds the three SCD Type 2
// validity columns. Each row's validity window ends where the next row for
// the same partition key begins: _row_valid_to is the timestamp of the next
// row in the partition ordered by timestampColumn, or the validTo sentinel
// when there is no next row, and _is_active is 1 exactly when there is no
// next row.
//
// The same lead expression text is embedded in both _row_valid_to and
// _is_active so the two columns can never disagree. partitionBy columns are
// rendered in caller order; validTo is rendered as a single-quoted literal.
// Ordering among rows sharing an identical timestamp is left to the engine.
func SCDType2(sourceTable, timestampColumn string, partitionBy []string, validTo string) string {
	keys := strings.Join(partitionBy, ", ")
	lead := fmt.Sprintf("lead(%s) over (partition by %s order by %s)", timestampColumn, keys, timestampColumn)

	return fmt.Sprintf(`select
    *,
    %s as %s,
    coalesce(%s, '%s') as %s,
    case when %s is null then 1 else 0 end as %s
from %s`,
		timestampColumn, ColValidFrom,
		lead, validTo, ColValidTo,
		lead, ColIsActive,
		sourceTable)
}
