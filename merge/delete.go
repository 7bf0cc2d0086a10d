// ABOUTME: Confirmed account deletion with optional activity reassignment
// ABOUTME: Requires the literal DELETE token; reassignment target is checked first
package merge

import (
	"fmt"

	"ptrack/models"
	"ptrack/store"
)

// ConfirmToken must be typed verbatim to delete an account. Deletion is
// destructive and immediate.
const ConfirmToken = "DELETE"

// DeletePlan describes what a delete would remove. MixedReps is true when
// the account's activities span more than one sales rep, which is the case
// where offering reassignment makes sense.
type DeletePlan struct {
	Account    *models.Account
	Activities []models.Activity
	MixedReps  bool
}

// PlanDelete loads the account and its activities without mutating anything.
func PlanDelete(st *store.Store, accountID string) (*DeletePlan, error) {
	account, err := st.AccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account not found: %s", accountID)
	}

	all, err := st.Activities()
	if err != nil {
		return nil, err
	}
	plan := &DeletePlan{Account: account}
	reps := map[string]bool{}
	for _, a := range all {
		if a.AccountID == accountID {
			plan.Activities = append(plan.Activities, a)
			if a.SalesRep != "" {
				reps[a.SalesRep] = true
			}
		}
	}
	plan.MixedReps = len(reps) > 1
	return plan, nil
}

// Apply deletes the account. confirm must equal ConfirmToken. When
// reassignTo names another existing account, the activities are repointed to
// it instead of deleted; an unknown name aborts before anything is touched.
func (p *DeletePlan) Apply(st *store.Store, confirm, reassignTo string) error {
	if confirm != ConfirmToken {
		return fmt.Errorf("type %s to confirm account deletion", ConfirmToken)
	}

	if reassignTo != "" {
		target, err := st.AccountByName(reassignTo)
		if err != nil {
			return err
		}
		if target == nil {
			return fmt.Errorf("reassignment account not found: %s", reassignTo)
		}
		if target.ID == p.Account.ID {
			return fmt.Errorf("cannot reassign activities to the account being deleted")
		}
		if err := repointActivities(st, p.Account.ID, target.ID, target.Name); err != nil {
			return err
		}
	}

	// DeleteAccount cascades to any activity still referencing the account,
	// which after a reassignment is none.
	return st.DeleteAccount(p.Account.ID)
}
