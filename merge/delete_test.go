// ABOUTME: Tests for confirmed account deletion and reassignment
// ABOUTME: Covers the DELETE token, cascade, and atomic reassignment checks
package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDeleteReportsMixedReps(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")
	addActivity(t, st, acct, "John Doe")
	addActivity(t, st, acct, "Jane Smith")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	assert.Len(t, plan.Activities, 2)
	assert.True(t, plan.MixedReps)
}

func TestPlanDeleteSingleRep(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")
	addActivity(t, st, acct, "John Doe")
	addActivity(t, st, acct, "John Doe")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	assert.False(t, plan.MixedReps)
}

func TestPlanDeleteUnknownAccount(t *testing.T) {
	st := newTestStore(t)
	_, err := PlanDelete(st, "missing")
	assert.Error(t, err)
}

func TestApplyRequiresConfirmToken(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	assert.Error(t, plan.Apply(st, "delete", ""))
	assert.Error(t, plan.Apply(st, "", ""))

	still, err := st.AccountByID(acct.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestApplyCascadesActivities(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")
	other := addAccount(t, st, "Globex", "Jane Smith", "Telecom")
	addActivity(t, st, acct, "John Doe")
	addActivity(t, st, acct, "John Doe")
	addActivity(t, st, other, "Jane Smith")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	require.NoError(t, plan.Apply(st, ConfirmToken, ""))

	gone, err := st.AccountByID(acct.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	activities, err := st.Activities()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, other.ID, activities[0].AccountID)
}

func TestApplyReassignsInsteadOfDeleting(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")
	target := addAccount(t, st, "Globex", "Jane Smith", "Telecom")
	addActivity(t, st, acct, "John Doe")
	addActivity(t, st, acct, "Jane Smith")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	require.NoError(t, plan.Apply(st, ConfirmToken, "Globex"))

	gone, err := st.AccountByID(acct.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	activities, err := st.Activities()
	require.NoError(t, err)
	require.Len(t, activities, 2)
	for _, a := range activities {
		assert.Equal(t, target.ID, a.AccountID)
		assert.Equal(t, "Globex", a.AccountName)
	}
}

func TestApplyAbortsOnUnknownReassignTarget(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")
	addActivity(t, st, acct, "John Doe")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	err = plan.Apply(st, ConfirmToken, "No Such Account")
	assert.Error(t, err)

	// Nothing was touched.
	still, err := st.AccountByID(acct.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
	activities, err := st.Activities()
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestApplyRejectsSelfReassignment(t *testing.T) {
	st := newTestStore(t)
	acct := addAccount(t, st, "Acme", "John Doe", "BFSI")

	plan, err := PlanDelete(st, acct.ID)
	require.NoError(t, err)
	assert.Error(t, plan.Apply(st, ConfirmToken, "Acme"))
}
