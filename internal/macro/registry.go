package macro

import (
	"fmt"
	"sort"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Globals merges the predeclared builtins with loaded modules. Each module
// is exposed as a namespaced struct, so an expression can call
// scd.customer_history() next to the bare builtins.
func Globals(builtins starlark.StringDict, modules []*Module) (starlark.StringDict, error) {
	globals := make(starlark.StringDict, len(builtins)+len(modules))
	for name, v := range builtins {
		globals[name] = v
	}

	for _, m := range modules {
		if _, exists := globals[m.Namespace]; exists {
			return nil, fmt.Errorf("macro namespace %q shadows a builtin or another module", m.Namespace)
		}
		globals[m.Namespace] = starlarkstruct.FromStringDict(starlark.String(m.Namespace), m.Exports)
	}

	return globals, nil
}

// Function describes one exported macro function, for listings.
type Function struct {
	Namespace string
	Name      string
	Params    string
	Doc       string
}

// Functions returns the module's exported Starlark functions sorted by name.
// Non-function exports (constants etc.) are skipped.
func (m *Module) Functions() []Function {
	var fns []Function
	for name, v := range m.Exports {
		fn, ok := v.(*starlark.Function)
		if !ok {
			continue
		}

		params := make([]string, fn.NumParams())
		for i := range params {
			params[i], _ = fn.Param(i)
		}

		doc := fn.Doc()
		if i := strings.IndexByte(doc, '\n'); i >= 0 {
			doc = doc[:i]
		}

		fns = append(fns, Function{
			Namespace: m.Namespace,
			Name:      name,
			Params:    strings.Join(params, ", "),
			Doc:       strings.TrimSpace(doc),
		})
	}

	sort.Slice(fns, func(i, j int) bool { return fns[i].Name < fns[j].Name })
	return fns
}
