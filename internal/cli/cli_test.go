package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/quarry/internal/cli/config"
	"github.com/quarrylabs/quarry/internal/macro"
)

// runCommand executes the root command with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	root := NewRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errBuf.String(), err
}

// writeMacroDir creates a macros directory with a single history.star file.
func writeMacroDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := `
def customer_history():
    """SCD Type 2 history for raw customers."""
    return scd_type2("raw.customers", "updated_at", ["customer_id"])
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.star"), []byte(content), 0o600))
	return dir
}

func TestSCDCommand_TextOutput(t *testing.T) {
	stdout, _, err := runCommand(t,
		"scd", "raw.customers", "updated_at",
		"--partition-by", "customer_id,region",
		"-o", "text")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "scd_text", []byte(stdout))
}

func TestSCDCommand_RequiresPartitionBy(t *testing.T) {
	_, _, err := runCommand(t, "scd", "raw.customers", "updated_at")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "partition-by")
}

func TestSCDCommand_ValidToFlag(t *testing.T) {
	stdout, _, err := runCommand(t,
		"scd", "raw.orders", "t",
		"--partition-by", "order_id",
		"--valid-to", "2999-01-01",
		"-o", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "'2999-01-01'")
}

func TestCaseCommand_JSONOutput(t *testing.T) {
	stdout, _, err := runCommand(t,
		"case", "flag", "a=1", "1",
		"--else", "0",
		"-o", "json")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "case_json", []byte(stdout))
}

func TestCaseCommand_NoElse(t *testing.T) {
	stdout, _, err := runCommand(t, "case", "col", "a=1", "x", "b=2", "y", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "CASE WHEN a=1 THEN x WHEN b=2 THEN y ELSE END AS col\n", stdout)
}

func TestInListCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "inlist", "status", "is_open", "OPEN", "PENDING", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "CASE WHEN status IN ('OPEN', 'PENDING') THEN 1 ELSE 0 END AS is_open\n", stdout)
}

func TestRelCheckCommand_TextOutput(t *testing.T) {
	stdout, _, err := runCommand(t, "relcheck", "orders", "customer_id", "customers", "id", "-o", "text")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "relcheck_text", []byte(stdout))
}

func TestRelCheckCommand_MarkdownOutput(t *testing.T) {
	stdout, _, err := runCommand(t, "relcheck", "orders", "customer_id", "customers", "id", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# Generated SQL: relcheck\n")
	assert.Contains(t, stdout, "```sql\n")
	assert.Contains(t, stdout, "select customer_id as invalid_key from orders")
}

func TestRenderCommand(t *testing.T) {
	dir := writeMacroDir(t)

	stdout, _, err := runCommand(t,
		"render", "history.customer_history()",
		"--macros-dir", dir,
		"-o", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "partition by customer_id order by updated_at")
	assert.Contains(t, stdout, "'9999-12-31 23:59:59'")
}

func TestRenderCommand_BuiltinExpression(t *testing.T) {
	stdout, _, err := runCommand(t,
		"render", `assert_relationship("orders", "customer_id", "customers", "id")`,
		"--macros-dir", t.TempDir(),
		"-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "select customer_id as invalid_key from orders where customer_id not in (select id from customers)\n", stdout)
}

func TestRenderCommand_NonStringResult(t *testing.T) {
	_, _, err := runCommand(t, "render", "1 + 1", "--macros-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to SQL text")
}

func TestRenderCommand_ListResult(t *testing.T) {
	stdout, _, err := runCommand(t,
		"render", `[assert_relationship("orders", "customer_id", "customers", "id"), assert_relationship("orders", "product_id", "products", "id")]`,
		"--macros-dir", t.TempDir(),
		"-o", "text")
	require.NoError(t, err)
	assert.Equal(t,
		"select customer_id as invalid_key from orders where customer_id not in (select id from customers)\n"+
			"\n"+
			"select product_id as invalid_key from orders where product_id not in (select id from products)\n",
		stdout)
}

func TestRenderCommand_ListResultRejectsNonText(t *testing.T) {
	_, _, err := runCommand(t, "render", `["select 1", 2]`, "--macros-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list element 1")
}

func TestRenderCommand_ConfigGlobals(t *testing.T) {
	dir := t.TempDir()
	content := `
def validity_filter():
    return "where _row_valid_to = '" + config["valid_to"] + "' -- " + env
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "filters.star"), []byte(content), 0o600))

	stdout, _, err := runCommand(t,
		"render", "filters.validity_filter()",
		"--macros-dir", dir,
		"--valid-to", "2999-01-01",
		"-e", "prod",
		"-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "where _row_valid_to = '2999-01-01' -- prod\n", stdout)
}

func TestListCommand_JSONOutput(t *testing.T) {
	dir := writeMacroDir(t)

	stdout, _, err := runCommand(t, "list", "--macros-dir", dir, "-o", "json")
	require.NoError(t, err)

	var fns []macro.Function
	require.NoError(t, json.Unmarshal([]byte(stdout), &fns))
	require.Len(t, fns, 1)
	assert.Equal(t, "history", fns[0].Namespace)
	assert.Equal(t, "customer_history", fns[0].Name)
	assert.Equal(t, "SCD Type 2 history for raw customers.", fns[0].Doc)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "quarry v")
	assert.Contains(t, stdout, "commit unknown, built unknown")
}
