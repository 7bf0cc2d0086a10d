// ABOUTME: Account merge engine: conflict detection and plan application
// ABOUTME: Decisions are gathered into a MergePlan, then applied in one shot
package merge

import (
	"fmt"

	"ptrack/models"
	"ptrack/store"
)

// Resolution picks which side's values win for the whole conflict set.
// There is no per-field granularity.
type Resolution int

const (
	KeepTarget Resolution = iota
	KeepSource
)

// Conflict is a field whose value differs between the two accounts. Values
// are display strings; empty fields show as "None".
type Conflict struct {
	Field  string
	Source string
	Target string
}

// MergePlan is a merge that has been checked but not yet applied. The caller
// inspects Conflicts, picks a Resolution, and calls Apply.
type MergePlan struct {
	Source    *models.Account
	Target    *models.Account
	Conflicts []Conflict
}

func display(v string) string {
	if v == "" {
		return "None"
	}
	return v
}

// PlanMerge loads both accounts and computes the conflict set. Nothing is
// mutated.
func PlanMerge(st *store.Store, sourceID, targetID string) (*MergePlan, error) {
	if sourceID == targetID {
		return nil, fmt.Errorf("cannot merge an account into itself")
	}
	source, err := st.AccountByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("account not found: %s", sourceID)
	}
	target, err := st.AccountByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("account not found: %s", targetID)
	}

	plan := &MergePlan{Source: source, Target: target}
	if source.SalesRep != target.SalesRep {
		plan.Conflicts = append(plan.Conflicts, Conflict{
			Field:  "Sales Rep",
			Source: display(source.SalesRep),
			Target: display(target.SalesRep),
		})
	}
	if source.Industry != target.Industry {
		plan.Conflicts = append(plan.Conflicts, Conflict{
			Field:  "Industry",
			Source: display(source.Industry),
			Target: display(target.Industry),
		})
	}
	return plan, nil
}

// Apply merges the source account into the target and deletes the source.
// Projects merge by name: a source project whose name already exists on the
// target contributes only its activity list; others carry over whole. Every
// activity pointing at the source is repointed to the target before the
// source is removed, so the cascade on the source deletes nothing.
func (p *MergePlan) Apply(st *store.Store, keep Resolution) error {
	salesRep := p.Target.SalesRep
	industry := p.Target.Industry
	if keep == KeepSource {
		salesRep = p.Source.SalesRep
		industry = p.Source.Industry
	}

	projects := mergeProjects(p.Target.Projects, p.Source.Projects)
	if _, err := st.UpdateAccount(p.Target.ID, func(a *models.Account) {
		a.SalesRep = salesRep
		a.Industry = industry
		a.Projects = projects
	}); err != nil {
		return err
	}

	if err := repointActivities(st, p.Source.ID, p.Target.ID, p.Target.Name); err != nil {
		return err
	}
	return st.DeleteAccount(p.Source.ID)
}

func mergeProjects(target, source []models.Project) []models.Project {
	merged := make([]models.Project, len(target))
	copy(merged, target)
	for _, sp := range source {
		idx := -1
		for i, tp := range merged {
			if tp.Name == sp.Name {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx].Activities = append(merged[idx].Activities, sp.Activities...)
		} else {
			merged = append(merged, sp)
		}
	}
	return merged
}

func repointActivities(st *store.Store, fromID, toID, toName string) error {
	activities, err := st.Activities()
	if err != nil {
		return err
	}
	changed := false
	for i := range activities {
		if activities[i].AccountID == fromID {
			activities[i].AccountID = toID
			activities[i].AccountName = toName
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return st.SaveActivities(activities)
}
