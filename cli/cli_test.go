// ABOUTME: Tests for CLI subcommand routing
// ABOUTME: Exercises the viz and export command trees against an in-memory store
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptrack/store"
)

func setupTestCLI(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestExportCommandRequiresSubcommand(t *testing.T) {
	st := setupTestCLI(t)

	err := ExportCommand(st, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")

	err = ExportCommand(st, []string{"csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export subcommand")
}

func TestExportSQLiteHonorsOutFlag(t *testing.T) {
	st := setupTestCLI(t)

	out := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, ExportCommand(st, []string{"sqlite", "--out", out}))

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestVizCommandRequiresSubcommand(t *testing.T) {
	st := setupTestCLI(t)

	err := VizCommand(st, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline")

	err = VizCommand(st, []string{"graph"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown viz subcommand")
}

func TestVizPipelineHonorsAccountFlag(t *testing.T) {
	st := setupTestCLI(t)

	// A parsed --account flag must reach the lookup.
	err := VizCommand(st, []string{"pipeline", "--account", "No Such Account"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestLoginSessionStampsTime(t *testing.T) {
	st := setupTestCLI(t)

	user, err := st.UserByUsername("user")
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NoError(t, st.SaveSession(newSession(user)))

	session, err := st.Session()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.False(t, session.LoggedInAt.IsZero())
}

func TestTypesByCountOrdersByCountDesc(t *testing.T) {
	got := typesByCount(map[string]int{
		"sow":          1,
		"customerCall": 3,
		"poc":          3,
		"rfx":          2,
	})
	assert.Equal(t, []string{"customerCall", "poc", "rfx", "sow"}, got)
}
