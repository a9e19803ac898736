package starlark

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/quarrylabs/quarry/pkg/fragment"
)

// Builtins returns the fragment-generator globals available to macro files
// and render expressions. validTo is the SCD end-of-validity sentinel from
// configuration; it is bound here so macros never reach for global state.
func Builtins(validTo string) starlark.StringDict {
	return starlark.StringDict{
		"scd_type2":           starlark.NewBuiltin("scd_type2", scdType2Fn(validTo)),
		"case_when":           starlark.NewBuiltin("case_when", caseWhenFn),
		"case_when_in_list":   starlark.NewBuiltin("case_when_in_list", caseWhenInListFn),
		"assert_relationship": starlark.NewBuiltin("assert_relationship", assertRelationshipFn),
	}
}

// Predeclared returns the globals available to macro files and render
// expressions: the fragment builtins plus project context. config is a dict
// of project settings and env is the active environment name, so macros can
// branch on environment or read the sentinel without hardcoding it.
func Predeclared(validTo, env string) (starlark.StringDict, error) {
	globals := Builtins(validTo)

	cfgVal, err := GoToStarlark(map[string]any{
		"valid_to":    validTo,
		"environment": env,
	})
	if err != nil {
		return nil, err
	}
	// Macro files load concurrently and all share this dict.
	cfgVal.Freeze()
	globals["config"] = cfgVal
	globals["env"] = starlark.String(env)

	return globals, nil
}

// scdType2Fn implements scd_type2(table, timestamp_column, partition_by).
func scdType2Fn(validTo string) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var table, tsColumn string
		var partitionBy starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"table", &table,
			"timestamp_column", &tsColumn,
			"partition_by", &partitionBy,
		); err != nil {
			return nil, err
		}

		keys, err := stringList("partition_by", partitionBy)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("%s: partition_by must not be empty", b.Name())
		}

		return starlark.String(fragment.SCDType2(table, tsColumn, keys, validTo)), nil
	}
}

// caseWhenFn implements case_when(column, whens, default=...).
//
// whens is either a list of (condition, result) pairs or a dict; both
// preserve insertion order, which CASE first-match-wins semantics require.
// The default keyword is tri-state: omitting it (or passing None) emits an
// empty ELSE clause, while default=0 or default="" are real values.
func caseWhenFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var column string
	var whensArg starlark.Value
	var defaultArg starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"column", &column,
		"whens", &whensArg,
		"default?", &defaultArg,
	); err != nil {
		return nil, err
	}

	whens, err := unpackWhens(whensArg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	var elseValue *string
	if defaultArg != nil && defaultArg != starlark.None {
		elseValue = fragment.Else(valueText(defaultArg))
	}

	return starlark.String(fragment.CaseWhen(column, whens, elseValue)), nil
}

// unpackWhens converts a dict or a sequence of 2-element pairs into ordered
// condition/result pairs.
func unpackWhens(v starlark.Value) ([]fragment.When, error) {
	if d, ok := v.(*starlark.Dict); ok {
		items := d.Items()
		whens := make([]fragment.When, 0, len(items))
		for _, item := range items {
			whens = append(whens, fragment.When{
				Cond:   valueText(item[0]),
				Result: valueText(item[1]),
			})
		}
		return whens, nil
	}

	iter, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("whens: expected a dict or a list of (condition, result) pairs, got %s", v.Type())
	}

	var whens []fragment.When
	it := iter.Iterate()
	defer it.Done()

	var elem starlark.Value
	for it.Next(&elem) {
		pair, ok := elem.(starlark.Indexable)
		if !ok || pair.Len() != 2 {
			return nil, fmt.Errorf("whens: each element must be a (condition, result) pair, got %s", elem.Type())
		}
		whens = append(whens, fragment.When{
			Cond:   valueText(pair.Index(0)),
			Result: valueText(pair.Index(1)),
		})
	}
	return whens, nil
}

// caseWhenInListFn implements case_when_in_list(column, values, new_column).
func caseWhenInListFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var column, newColumn string
	var valuesArg starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"column", &column,
		"values", &valuesArg,
		"new_column", &newColumn,
	); err != nil {
		return nil, err
	}

	iter, ok := valuesArg.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("%s: values must be a list, got %s", b.Name(), valuesArg.Type())
	}

	var values []any
	it := iter.Iterate()
	defer it.Done()

	var elem starlark.Value
	for it.Next(&elem) {
		values = append(values, valueText(elem))
	}

	return starlark.String(fragment.CaseWhenInList(column, values, newColumn)), nil
}

// assertRelationshipFn implements
// assert_relationship(child_table, child_column, parent_table, parent_column).
func assertRelationshipFn(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var childTable, childColumn, parentTable, parentColumn string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"child_table", &childTable,
		"child_column", &childColumn,
		"parent_table", &parentTable,
		"parent_column", &parentColumn,
	); err != nil {
		return nil, err
	}

	return starlark.String(fragment.AssertRelationship(childTable, childColumn, parentTable, parentColumn)), nil
}
