package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a fresh flag state and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func testDB(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_LOG_LEVEL", "silent")
	return filepath.Join(t.TempDir(), "catalog.db")
}

func TestSeedAndList(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, "", "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	out, err = execute(t, "", "list", "games", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Elden Ring")
	assert.Contains(t, out, "FromSoftware")

	out, err = execute(t, "", "list", "requirement-types", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Medium")

	out, err = execute(t, "", "list", "reviews", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "IGN")

	// the second run finds every row in place
	out, err = execute(t, "", "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
}

func TestList_UnknownEntity(t *testing.T) {
	db := testDB(t)

	_, err := execute(t, "", "list", "consoles", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "", "list", "--db", db)
	assert.Error(t, err)
}

func TestShowGame(t *testing.T) {
	db := testDB(t)
	_, err := execute(t, "", "seed", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "show", "game", "2", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Elden Ring")
	assert.Contains(t, out, "Action, RPG, Open World")
	assert.Contains(t, out, "Reviews:")

	_, err = execute(t, "", "show", "game", "999", "--db", db)
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "", "show", "game", "abc", "--db", db)
	assert.ErrorContains(t, err, "invalid game id")
}

func TestMenu(t *testing.T) {
	db := testDB(t)
	t.Setenv("UI_COLOR", "false")

	out, err := execute(t, "0\n", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")

	out, err = execute(t, "3\n3\nStrategy\n1\n0\n0\n", "menu", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Strategy")
}

func TestAudit(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, "", "audit", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events")

	_, err = execute(t, "", "seed", "--db", db)
	require.NoError(t, err)

	out, err = execute(t, "", "audit", "--db", db, "--entity", "game", "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "Showing 3 of 14 events")

	out, err = execute(t, "", "audit", "--db", db, "--entity", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "seed")

	out, err = execute(t, "", "audit", "--db", db, "--entity", "game", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created game: The Witcher 3")
	assert.Contains(t, out, "Set genres")
	assert.Contains(t, out, "Showing 2 of 2 events")

	_, err = execute(t, "", "audit", "--db", db, "--id", "1")
	assert.ErrorContains(t, err, "--id requires --entity")

	out, err = execute(t, "", "audit", "--db", db, "--type", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded sample catalog")
	assert.Contains(t, out, "Showing 1 of 1 events")

	_, err = execute(t, "", "audit", "--db", db, "--type", "rename")
	assert.ErrorContains(t, err, "unknown event type")

	_, err = execute(t, "", "audit", "--db", db, "--type", "create", "--entity", "game")
	assert.ErrorContains(t, err, "cannot be combined")

	out, err = execute(t, "", "audit", "--db", db, "--prune", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 0 audit events older than 30 days")
}

func TestAudit_Disabled(t *testing.T) {
	db := testDB(t)
	t.Setenv("AUDIT_ENABLED", "false")

	_, err := execute(t, "", "seed", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "", "audit", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events")
}

func TestAudit_PruneRejectsZeroRetention(t *testing.T) {
	db := testDB(t)
	t.Setenv("AUDIT_RETENTION_DAYS", "0")

	_, err := execute(t, "", "seed", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "", "audit", "--db", db, "--prune", "0")
	assert.ErrorContains(t, err, "retention must be a positive number of days")

	out, err := execute(t, "", "audit", "--db", db, "--type", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 1 events")
}
