// ABOUTME: Tests for account MCP handlers against an in-memory store
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptrack/merge"
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

func seedAccounts(t *testing.T, st *store.Store) (*models.Account, *models.Account) {
	t.Helper()
	acme := &models.Account{Name: "Acme", SalesRep: "John Doe", Industry: "BFSI"}
	globex := &models.Account{Name: "Globex", SalesRep: "Jane Smith", Industry: "Telecom"}
	require.NoError(t, st.AddAccount(acme))
	require.NoError(t, st.AddAccount(globex))
	return acme, globex
}

func TestFindAccounts(t *testing.T) {
	st := newTestStore(t)
	seedAccounts(t, st)
	h := NewAccountHandlers(st)

	_, out, err := h.FindAccounts(context.Background(), nil, FindAccountsInput{Query: "glo"})
	require.NoError(t, err)
	require.Len(t, out.Accounts, 1)
	assert.Equal(t, "Globex", out.Accounts[0].Name)

	_, out, err = h.FindAccounts(context.Background(), nil, FindAccountsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Accounts, 2)
}

func TestMergeAccountsHandler(t *testing.T) {
	st := newTestStore(t)
	acme, globex := seedAccounts(t, st)
	require.NoError(t, st.AddActivity(&models.Activity{
		AccountID: acme.ID, AccountName: "Acme", Date: "2026-01-10", Type: models.TypeCustomerCall,
	}))

	h := NewAccountHandlers(st)
	_, out, err := h.MergeAccounts(context.Background(), nil, MergeAccountsInput{
		Source: "Acme", Target: "Globex",
	})
	require.NoError(t, err)
	assert.Equal(t, "Globex", out.Account.Name)
	assert.Len(t, out.Conflicts, 2)

	gone, err := st.AccountByID(acme.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	activities, err := st.Activities()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, globex.ID, activities[0].AccountID)
}

func TestDeleteAccountHandlerRequiresToken(t *testing.T) {
	st := newTestStore(t)
	seedAccounts(t, st)
	h := NewAccountHandlers(st)

	_, _, err := h.DeleteAccount(context.Background(), nil, DeleteAccountInput{
		Name: "Acme", Confirm: "yes",
	})
	assert.Error(t, err)

	_, out, err := h.DeleteAccount(context.Background(), nil, DeleteAccountInput{
		Name: "Acme", Confirm: merge.ConfirmToken,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Deleted)
}

func TestUpdateProjectStatus(t *testing.T) {
	st := newTestStore(t)
	acme, _ := seedAccounts(t, st)
	_, err := st.AddProject(acme.ID, &models.Project{Name: "Alpha", Status: models.StatusActive})
	require.NoError(t, err)

	h := NewAccountHandlers(st)
	_, out, err := h.UpdateProjectStatus(context.Background(), nil, UpdateProjectStatusInput{
		Account: "Acme", Project: "Alpha", Status: models.StatusWon,
		Reason: "Faster channel rollout", MRR: "4000",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusWon, out.Status)

	reloaded, err := st.AccountByID(acme.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Projects[0].WinLoss)
	assert.Equal(t, "Faster channel rollout", reloaded.Projects[0].WinLoss.Reason)

	_, _, err = h.UpdateProjectStatus(context.Background(), nil, UpdateProjectStatusInput{
		Account: "Acme", Project: "Alpha", Status: "paused",
	})
	assert.Error(t, err)
}
