// ABOUTME: Account MCP tool handlers
// ABOUTME: Implements find_accounts, merge_accounts, delete_account, update_project_status
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"ptrack/merge"
	"ptrack/models"
	"ptrack/store"
)

type AccountHandlers struct {
	store *store.Store
}

func NewAccountHandlers(st *store.Store) *AccountHandlers {
	return &AccountHandlers{store: st}
}

type FindAccountsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches account name)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type ProjectOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	SFDCLink string `json:"sfdc_link,omitempty"`
}

type AccountOutput struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Industry string          `json:"industry,omitempty"`
	SalesRep string          `json:"sales_rep,omitempty"`
	Projects []ProjectOutput `json:"projects"`
}

type FindAccountsOutput struct {
	Accounts []AccountOutput `json:"accounts"`
}

func (h *AccountHandlers) FindAccounts(_ context.Context, request *mcp.CallToolRequest, input FindAccountsInput) (*mcp.CallToolResult, FindAccountsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	accounts, err := h.store.Accounts()
	if err != nil {
		return nil, FindAccountsOutput{}, fmt.Errorf("failed to load accounts: %w", err)
	}

	var out []AccountOutput
	for _, a := range accounts {
		if input.Query != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(input.Query)) {
			continue
		}
		out = append(out, accountToOutput(a))
		if len(out) >= limit {
			break
		}
	}
	return nil, FindAccountsOutput{Accounts: out}, nil
}

type MergeAccountsInput struct {
	Source     string `json:"source" jsonschema:"Name of the account to merge away (required)"`
	Target     string `json:"target" jsonschema:"Name of the account to keep (required)"`
	KeepSource bool   `json:"keepSourceValues,omitempty" jsonschema:"Resolve field conflicts with the source account's values instead of the target's"`
}

type MergeAccountsOutput struct {
	Account   AccountOutput `json:"account"`
	Conflicts []string      `json:"conflicts,omitempty"`
}

func (h *AccountHandlers) MergeAccounts(_ context.Context, request *mcp.CallToolRequest, input MergeAccountsInput) (*mcp.CallToolResult, MergeAccountsOutput, error) {
	source, err := h.accountByName(input.Source)
	if err != nil {
		return nil, MergeAccountsOutput{}, err
	}
	target, err := h.accountByName(input.Target)
	if err != nil {
		return nil, MergeAccountsOutput{}, err
	}

	plan, err := merge.PlanMerge(h.store, source.ID, target.ID)
	if err != nil {
		return nil, MergeAccountsOutput{}, err
	}

	resolution := merge.KeepTarget
	if input.KeepSource {
		resolution = merge.KeepSource
	}
	if err := plan.Apply(h.store, resolution); err != nil {
		return nil, MergeAccountsOutput{}, fmt.Errorf("merge failed: %w", err)
	}

	merged, err := h.store.AccountByID(target.ID)
	if err != nil {
		return nil, MergeAccountsOutput{}, err
	}

	out := MergeAccountsOutput{Account: accountToOutput(*merged)}
	for _, c := range plan.Conflicts {
		out.Conflicts = append(out.Conflicts, fmt.Sprintf("%s: %s vs %s", c.Field, c.Source, c.Target))
	}
	return nil, out, nil
}

type DeleteAccountInput struct {
	Name       string `json:"name" jsonschema:"Name of the account to delete (required)"`
	Confirm    string `json:"confirm" jsonschema:"Must be the literal word DELETE"`
	ReassignTo string `json:"reassignTo,omitempty" jsonschema:"Optional account name to repoint this account's activities to instead of deleting them"`
}

type DeleteAccountOutput struct {
	Deleted            string `json:"deleted"`
	ActivitiesAffected int    `json:"activities_affected"`
	Reassigned         bool   `json:"reassigned"`
}

func (h *AccountHandlers) DeleteAccount(_ context.Context, request *mcp.CallToolRequest, input DeleteAccountInput) (*mcp.CallToolResult, DeleteAccountOutput, error) {
	acct, err := h.accountByName(input.Name)
	if err != nil {
		return nil, DeleteAccountOutput{}, err
	}

	plan, err := merge.PlanDelete(h.store, acct.ID)
	if err != nil {
		return nil, DeleteAccountOutput{}, err
	}
	if err := plan.Apply(h.store, input.Confirm, input.ReassignTo); err != nil {
		return nil, DeleteAccountOutput{}, err
	}

	return nil, DeleteAccountOutput{
		Deleted:            acct.Name,
		ActivitiesAffected: len(plan.Activities),
		Reassigned:         input.ReassignTo != "",
	}, nil
}

type UpdateProjectStatusInput struct {
	Account     string `json:"account" jsonschema:"Account name (required)"`
	Project     string `json:"project" jsonschema:"Project name (required)"`
	Status      string `json:"status" jsonschema:"New status: active, won, or lost (required)"`
	Reason      string `json:"reason,omitempty" jsonschema:"Win/loss reason"`
	Competitors string `json:"competitors,omitempty" jsonschema:"Competitors involved"`
	MRR         string `json:"mrr,omitempty" jsonschema:"Monthly recurring revenue"`
}

func (h *AccountHandlers) UpdateProjectStatus(_ context.Context, request *mcp.CallToolRequest, input UpdateProjectStatusInput) (*mcp.CallToolResult, ProjectOutput, error) {
	switch input.Status {
	case models.StatusActive, models.StatusWon, models.StatusLost:
	default:
		return nil, ProjectOutput{}, fmt.Errorf("status must be active, won, or lost")
	}

	acct, err := h.accountByName(input.Account)
	if err != nil {
		return nil, ProjectOutput{}, err
	}

	var projectID string
	for _, p := range acct.Projects {
		if strings.EqualFold(p.Name, input.Project) {
			projectID = p.ID
			break
		}
	}
	if projectID == "" {
		return nil, ProjectOutput{}, fmt.Errorf("project not found: %s", input.Project)
	}

	updated, err := h.store.UpdateProject(acct.ID, projectID, func(p *models.Project) {
		p.Status = input.Status
		if input.Status == models.StatusWon || input.Status == models.StatusLost {
			p.WinLoss = &models.WinLossData{
				Reason:      input.Reason,
				Competitors: input.Competitors,
				MRR:         input.MRR,
				UpdatedAt:   time.Now().UTC(),
			}
		} else {
			p.WinLoss = nil
		}
	})
	if err != nil {
		return nil, ProjectOutput{}, fmt.Errorf("failed to update project: %w", err)
	}

	return nil, ProjectOutput{
		ID:       updated.ID,
		Name:     updated.Name,
		Status:   updated.Status,
		SFDCLink: updated.SFDCLink,
	}, nil
}

func (h *AccountHandlers) accountByName(name string) (*models.Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name is required")
	}
	acct, err := h.store.AccountByName(name)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, fmt.Errorf("account not found: %s", name)
	}
	return acct, nil
}

func accountToOutput(a models.Account) AccountOutput {
	out := AccountOutput{
		ID:       a.ID,
		Name:     a.Name,
		Industry: a.Industry,
		SalesRep: a.SalesRep,
		Projects: []ProjectOutput{},
	}
	for _, p := range a.Projects {
		out.Projects = append(out.Projects, ProjectOutput{
			ID:       p.ID,
			Name:     p.Name,
			Status:   p.Status,
			SFDCLink: p.SFDCLink,
		})
	}
	return out
}
