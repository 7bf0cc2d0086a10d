// ABOUTME: Activity MCP tool handlers
// ABOUTME: Implements log_activity and find_activities tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"ptrack/form"
	"ptrack/models"
	"ptrack/store"
)

type ActivityHandlers struct {
	store *store.Store
}

func NewActivityHandlers(st *store.Store) *ActivityHandlers {
	return &ActivityHandlers{store: st}
}

type LogActivityInput struct {
	Category        string   `json:"category" jsonschema:"Activity category: internal or external (required)"`
	Date            string   `json:"date,omitempty" jsonschema:"Activity date YYYY-MM-DD (defaults to today)"`
	Type            string   `json:"type" jsonschema:"Activity type: customerCall, sow, poc, rfx, pricing for external; Training, Enablement, etc. for internal"`
	Account         string   `json:"account,omitempty" jsonschema:"Account name; created if it does not exist (external only)"`
	Project         string   `json:"project,omitempty" jsonschema:"Project name; created under the account if it does not exist (external only)"`
	SalesRep        string   `json:"salesRep,omitempty" jsonschema:"Sales rep name from the roster (external only)"`
	Industry        string   `json:"industry,omitempty" jsonschema:"Account industry (external only)"`
	Products        []string `json:"products,omitempty" jsonschema:"Products of interest (external only)"`
	Channels        []string `json:"channels,omitempty" jsonschema:"Messaging channels (external only)"`
	CallType        string   `json:"callType,omitempty" jsonschema:"Call type for customerCall (e.g., Demo, Discovery)"`
	Description     string   `json:"description,omitempty" jsonschema:"Call description or internal activity description"`
	SOWLink         string   `json:"sowLink,omitempty" jsonschema:"Document link for sow activities"`
	AccessType      string   `json:"accessType,omitempty" jsonschema:"POC access type (Sandbox or a Custom POC variant)"`
	UseCaseDesc     string   `json:"useCaseDescription,omitempty" jsonschema:"POC use case description"`
	POCStartDate    string   `json:"pocStartDate,omitempty" jsonschema:"Sandbox start date YYYY-MM-DD"`
	RFxType         string   `json:"rfxType,omitempty" jsonschema:"RFx type: RFP, RFI, RFQ, Other"`
	Deadline        string   `json:"submissionDeadline,omitempty" jsonschema:"RFx submission deadline YYYY-MM-DD"`
	Topic           string   `json:"topic,omitempty" jsonschema:"Session name / topic (internal only)"`
	TimeSpentValue  string   `json:"timeSpentValue,omitempty" jsonschema:"Time spent amount (internal only)"`
	TimeSpentUnit   string   `json:"timeSpentUnit,omitempty" jsonschema:"Time spent unit: hour or day (internal only)"`
}

type ActivityOutput struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	IsInternal  bool   `json:"is_internal"`
	AccountName string `json:"account_name,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

func (h *ActivityHandlers) LogActivity(_ context.Context, request *mcp.CallToolRequest, input LogActivityInput) (*mcp.CallToolResult, ActivityOutput, error) {
	user, err := h.store.CurrentUser()
	if err != nil {
		return nil, ActivityOutput{}, err
	}
	if user == nil {
		return nil, ActivityOutput{}, fmt.Errorf("not logged in: run the login command first")
	}

	d := form.NewDraft()
	d.SetCategory(input.Category)
	d.SetType(input.Type)
	if input.Date != "" {
		d.Date = input.Date
	}

	switch input.Category {
	case models.CategoryInternal:
		d.Topic = input.Topic
		d.Description = input.Description
		d.TimeSpentValue = input.TimeSpentValue
		if input.TimeSpentUnit != "" {
			d.TimeSpentUnit = input.TimeSpentUnit
		}
	case models.CategoryExternal:
		if err := h.resolveAccount(d, input); err != nil {
			return nil, ActivityOutput{}, err
		}
		if len(input.Products) > 0 {
			d.Products = input.Products
		}
		if len(input.Channels) > 0 {
			d.Channels = input.Channels
		}
		d.CallType = input.CallType
		d.CallDescription = input.Description
		d.SOWLink = input.SOWLink
		d.UseCaseDescription = input.UseCaseDesc
		d.RFxType = input.RFxType
		d.SubmissionDeadline = input.Deadline
		if input.AccessType != "" {
			d.SetAccessType(input.AccessType)
		}
		if input.POCStartDate != "" {
			d.SetPOCStartDate(input.POCStartDate)
		}
	default:
		return nil, ActivityOutput{}, fmt.Errorf("category must be internal or external")
	}

	act, err := form.Submit(h.store, user, d)
	if err != nil {
		return nil, ActivityOutput{}, err
	}
	return nil, activityToOutput(*act), nil
}

// resolveAccount maps account and project names onto ids, using the "new"
// sentinel when the name is unknown.
func (h *ActivityHandlers) resolveAccount(d *form.Draft, input LogActivityInput) error {
	d.SalesRep = input.SalesRep
	d.Industry = input.Industry

	acct, err := h.store.AccountByName(input.Account)
	if err != nil {
		return err
	}
	if acct == nil {
		d.AccountID = models.NewRecordID
		d.AccountName = input.Account
		d.ProjectID = models.NewRecordID
		d.ProjectName = input.Project
		return nil
	}

	d.AccountID = acct.ID
	d.AccountName = acct.Name
	if d.SalesRep == "" {
		d.SalesRep = acct.SalesRep
	}
	if d.Industry == "" {
		d.Industry = acct.Industry
	}

	for i := range acct.Projects {
		if strings.EqualFold(acct.Projects[i].Name, input.Project) {
			d.PrefillFromProject(&acct.Projects[i])
			return nil
		}
	}
	d.ProjectID = models.NewRecordID
	d.ProjectName = input.Project
	return nil
}

type FindActivitiesInput struct {
	Account string `json:"account,omitempty" jsonschema:"Filter by account name"`
	User    string `json:"user,omitempty" jsonschema:"Filter by user name"`
	Type    string `json:"type,omitempty" jsonschema:"Filter by activity type"`
	Month   string `json:"month,omitempty" jsonschema:"Filter by month YYYY-MM"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 20)"`
}

type FindActivitiesOutput struct {
	Activities []ActivityOutput `json:"activities"`
}

func (h *ActivityHandlers) FindActivities(_ context.Context, request *mcp.CallToolRequest, input FindActivitiesInput) (*mcp.CallToolResult, FindActivitiesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	all, err := h.store.AllActivities()
	if err != nil {
		return nil, FindActivitiesOutput{}, fmt.Errorf("failed to load activities: %w", err)
	}

	var out []ActivityOutput
	for _, act := range all {
		if input.Account != "" && !strings.EqualFold(act.AccountName, input.Account) {
			continue
		}
		if input.User != "" && !strings.EqualFold(act.UserName, input.User) {
			continue
		}
		if input.Type != "" && act.Type != input.Type {
			continue
		}
		if input.Month != "" && act.Month() != input.Month {
			continue
		}
		out = append(out, activityToOutput(act))
		if len(out) >= limit {
			break
		}
	}
	return nil, FindActivitiesOutput{Activities: out}, nil
}

func activityToOutput(act models.Activity) ActivityOutput {
	summary := act.Details["description"]
	if act.IsInternal {
		summary = act.Topic
	}
	return ActivityOutput{
		ID:          act.ID,
		Date:        act.Date,
		Type:        act.Type,
		IsInternal:  act.IsInternal,
		AccountName: act.AccountName,
		ProjectName: act.ProjectName,
		UserName:    act.UserName,
		Summary:     summary,
	}
}
