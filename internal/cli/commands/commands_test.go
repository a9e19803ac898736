package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSCDCommand(t *testing.T) {
	cmd := NewSCDCommand()

	assert.Equal(t, "scd <table> <timestamp-column>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	assert.NotNil(t, cmd.Flags().Lookup("partition-by"), "flag partition-by should exist")
}

func TestNewCaseCommand(t *testing.T) {
	cmd := NewCaseCommand()

	assert.Equal(t, "case <output-column> <condition> <result> [<condition> <result> ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("else"), "flag else should exist")

	// Pairs must line up: an even arg count means a dangling condition.
	err := cmd.Args(cmd, []string{"col", "a=1"})
	assert.Error(t, err)
	err = cmd.Args(cmd, []string{"col", "a=1", "x"})
	assert.NoError(t, err)
	err = cmd.Args(cmd, []string{"col", "a=1", "x", "b=2"})
	assert.Error(t, err)
}

func TestNewInListCommand(t *testing.T) {
	cmd := NewInListCommand()

	assert.Equal(t, "inlist <column> <new-column> <value> [<value> ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewRelCheckCommand(t *testing.T) {
	cmd := NewRelCheckCommand()

	assert.Equal(t, "relcheck <child-table> <child-column> <parent-table> <parent-column>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewRenderCommand(t *testing.T) {
	cmd := NewRenderCommand()

	assert.Equal(t, "render <expression>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("watch"), "flag watch should exist")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc1234", "2026-08-26")

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	assert.Contains(t, buf.String(), "quarry v1.2.3 (commit abc1234, built 2026-08-26)")
}

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}
