// ABOUTME: Tests for account merge: conflicts, project dedup, repointing
// ABOUTME: Uses an in-memory store seeded with two accounts and activities
package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptrack/models"
	"ptrack/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func addAccount(t *testing.T, st *store.Store, name, rep, industry string) *models.Account {
	t.Helper()
	a := &models.Account{Name: name, SalesRep: rep, Industry: industry}
	require.NoError(t, st.AddAccount(a))
	return a
}

func addActivity(t *testing.T, st *store.Store, acct *models.Account, rep string) *models.Activity {
	t.Helper()
	act := &models.Activity{
		UserID:      "u1",
		AccountID:   acct.ID,
		AccountName: acct.Name,
		SalesRep:    rep,
		Date:        "2026-01-15",
		Type:        models.TypeCustomerCall,
	}
	require.NoError(t, st.AddActivity(act))
	return act
}

func TestPlanMergeDetectsConflicts(t *testing.T) {
	st := newTestStore(t)
	src := addAccount(t, st, "Acme", "John Doe", "BFSI")
	dst := addAccount(t, st, "Acme Global", "Jane Smith", "BFSI")

	plan, err := PlanMerge(st, src.ID, dst.ID)
	require.NoError(t, err)
	require.Len(t, plan.Conflicts, 1)
	assert.Equal(t, "Sales Rep", plan.Conflicts[0].Field)
	assert.Equal(t, "John Doe", plan.Conflicts[0].Source)
	assert.Equal(t, "Jane Smith", plan.Conflicts[0].Target)
}

func TestPlanMergeShowsNoneForEmptyFields(t *testing.T) {
	st := newTestStore(t)
	src := addAccount(t, st, "Acme", "", "BFSI")
	dst := addAccount(t, st, "Acme Global", "Jane Smith", "BFSI")

	plan, err := PlanMerge(st, src.ID, dst.ID)
	require.NoError(t, err)
	require.Len(t, plan.Conflicts, 1)
	assert.Equal(t, "None", plan.Conflicts[0].Source)
}

func TestPlanMergeErrors(t *testing.T) {
	st := newTestStore(t)
	a := addAccount(t, st, "Acme", "John Doe", "BFSI")

	_, err := PlanMerge(st, a.ID, a.ID)
	assert.Error(t, err)

	_, err = PlanMerge(st, a.ID, "missing")
	assert.Error(t, err)

	_, err = PlanMerge(st, "missing", a.ID)
	assert.Error(t, err)
}

func TestApplyKeepTargetAndKeepSource(t *testing.T) {
	for _, tc := range []struct {
		keep    Resolution
		wantRep string
	}{
		{KeepTarget, "Jane Smith"},
		{KeepSource, "John Doe"},
	} {
		st := newTestStore(t)
		src := addAccount(t, st, "Acme", "John Doe", "BFSI")
		dst := addAccount(t, st, "Acme Global", "Jane Smith", "Telecom")

		plan, err := PlanMerge(st, src.ID, dst.ID)
		require.NoError(t, err)
		require.NoError(t, plan.Apply(st, tc.keep))

		merged, err := st.AccountByID(dst.ID)
		require.NoError(t, err)
		require.NotNil(t, merged)
		assert.Equal(t, tc.wantRep, merged.SalesRep)
	}
}

func TestApplyRepointsActivitiesAndDeletesSource(t *testing.T) {
	st := newTestStore(t)
	src := addAccount(t, st, "Acme", "John Doe", "BFSI")
	dst := addAccount(t, st, "Acme Global", "John Doe", "BFSI")
	addActivity(t, st, src, "John Doe")
	addActivity(t, st, src, "John Doe")
	addActivity(t, st, dst, "John Doe")

	plan, err := PlanMerge(st, src.ID, dst.ID)
	require.NoError(t, err)
	require.NoError(t, plan.Apply(st, KeepTarget))

	gone, err := st.AccountByID(src.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	activities, err := st.Activities()
	require.NoError(t, err)
	require.Len(t, activities, 3)
	for _, a := range activities {
		assert.Equal(t, dst.ID, a.AccountID)
		assert.Equal(t, "Acme Global", a.AccountName)
	}
}

func TestApplyMergesProjectsByName(t *testing.T) {
	st := newTestStore(t)
	src := addAccount(t, st, "Acme", "John Doe", "BFSI")
	dst := addAccount(t, st, "Acme Global", "John Doe", "BFSI")

	_, err := st.AddProject(dst.ID, &models.Project{
		Name:       "Alpha",
		SFDCLink:   "https://sfdc.example.com/opp/target",
		Status:     models.StatusActive,
		Activities: []models.Activity{{ID: "t1"}},
	})
	require.NoError(t, err)
	_, err = st.AddProject(src.ID, &models.Project{
		Name:       "Alpha",
		SFDCLink:   "https://sfdc.example.com/opp/source",
		Status:     models.StatusWon,
		Activities: []models.Activity{{ID: "s1"}, {ID: "s2"}},
	})
	require.NoError(t, err)
	_, err = st.AddProject(src.ID, &models.Project{Name: "Beta", Status: models.StatusActive})
	require.NoError(t, err)

	plan, err := PlanMerge(st, src.ID, dst.ID)
	require.NoError(t, err)
	require.NoError(t, plan.Apply(st, KeepTarget))

	merged, err := st.AccountByID(dst.ID)
	require.NoError(t, err)
	require.Len(t, merged.Projects, 2)

	alpha := merged.Projects[0]
	require.Equal(t, "Alpha", alpha.Name)
	// Target project metadata wins; activities concatenate target-first.
	assert.Equal(t, "https://sfdc.example.com/opp/target", alpha.SFDCLink)
	assert.Equal(t, models.StatusActive, alpha.Status)
	require.Len(t, alpha.Activities, 3)
	assert.Equal(t, "t1", alpha.Activities[0].ID)
	assert.Equal(t, "s1", alpha.Activities[1].ID)
	assert.Equal(t, "s2", alpha.Activities[2].ID)

	assert.Equal(t, "Beta", merged.Projects[1].Name)
}
