// ABOUTME: Tests for draft transitions and field visibility
// ABOUTME: Covers category switches, POC sub-states, and Other handling
package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ptrack/models"
)

func fieldKeys(fields []Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func TestVisibleFieldsCustomerCall(t *testing.T) {
	keys := fieldKeys(VisibleFields(models.CategoryExternal, models.TypeCustomerCall, ""))
	assert.Contains(t, keys, FieldAccount)
	assert.Contains(t, keys, FieldCallType)
	assert.Contains(t, keys, FieldCallDescription)
	assert.NotContains(t, keys, FieldSOWLink)
	assert.NotContains(t, keys, FieldTopic)
}

func TestVisibleFieldsPOCSubStates(t *testing.T) {
	sandbox := fieldKeys(VisibleFields(models.CategoryExternal, models.TypePOC, models.AccessSandbox))
	assert.Contains(t, sandbox, FieldPOCStart)
	assert.Contains(t, sandbox, FieldPOCEnd)
	assert.NotContains(t, sandbox, FieldDemoEnv)

	custom := fieldKeys(VisibleFields(models.CategoryExternal, models.TypePOC, models.AccessCustomAgentic))
	assert.Contains(t, custom, FieldDemoEnv)
	assert.Contains(t, custom, FieldBotTrigger)
	assert.NotContains(t, custom, FieldPOCStart)

	// No access type picked yet: only the shared POC fields show.
	bare := fieldKeys(VisibleFields(models.CategoryExternal, models.TypePOC, ""))
	assert.Contains(t, bare, FieldAccessType)
	assert.NotContains(t, bare, FieldPOCStart)
	assert.NotContains(t, bare, FieldDemoEnv)
}

func TestVisibleFieldsPricingHasNoExtras(t *testing.T) {
	pricing := fieldKeys(VisibleFields(models.CategoryExternal, models.TypePricing, ""))
	call := fieldKeys(VisibleFields(models.CategoryExternal, models.TypeCustomerCall, ""))
	assert.Equal(t, len(call)-2, len(pricing))
}

func TestVisibleFieldsInternal(t *testing.T) {
	keys := fieldKeys(VisibleFields(models.CategoryInternal, "training", ""))
	assert.Contains(t, keys, FieldTopic)
	assert.Contains(t, keys, FieldTimeSpent)
	assert.NotContains(t, keys, FieldAccount)
	assert.NotContains(t, keys, FieldProducts)
}

func TestSetCategoryClearsOppositeFields(t *testing.T) {
	d := NewDraft()
	d.SetCategory(models.CategoryExternal)
	d.SetType(models.TypeSOW)
	d.AccountID = "acct-1"
	d.SalesRep = "John Doe"
	d.Products = []string{"Agentforce"}
	d.SOWLink = "https://docs.example.com/sow"

	d.SetCategory(models.CategoryInternal)

	assert.Empty(t, d.Type)
	assert.Empty(t, d.AccountID)
	assert.Empty(t, d.SalesRep)
	assert.Empty(t, d.Products)
	assert.Empty(t, d.SOWLink)
}

func TestSetCategorySameValueKeepsFields(t *testing.T) {
	d := NewDraft()
	d.SetCategory(models.CategoryExternal)
	d.AccountID = "acct-1"
	d.SetCategory(models.CategoryExternal)
	assert.Equal(t, "acct-1", d.AccountID)
}

func TestSetTypeClearsPreviousTypeFields(t *testing.T) {
	d := NewDraft()
	d.SetCategory(models.CategoryExternal)
	d.SetType(models.TypeCustomerCall)
	d.CallType = "Demo"
	d.CallDescription = "walked through the flow builder"

	d.SetType(models.TypeRFx)

	assert.Empty(t, d.CallType)
	assert.Empty(t, d.CallDescription)
}

func TestSetAccessTypeDropsHiddenSubFields(t *testing.T) {
	d := NewDraft()
	d.SetCategory(models.CategoryExternal)
	d.SetType(models.TypePOC)

	d.SetAccessType(models.AccessSandbox)
	d.SetPOCStartDate("2026-03-01")
	assert.Equal(t, "2026-03-08", d.POCEndDate)

	d.SetAccessType(models.AccessCustomCommerce)
	assert.Empty(t, d.POCStartDate)
	assert.Empty(t, d.POCEndDate)

	d.DemoEnvironment = "demo-org-42"
	d.SetAccessType(models.AccessSandbox)
	assert.Empty(t, d.DemoEnvironment)
}

func TestToggleOtherClearsCompanionText(t *testing.T) {
	d := NewDraft()
	d.ToggleProduct("Agentforce")
	d.ToggleProduct(models.OtherOption)
	d.ProductOther = "Custom connector"

	d.ToggleProduct(models.OtherOption)

	assert.Equal(t, []string{"Agentforce"}, d.Products)
	assert.Empty(t, d.ProductOther)
}

func TestPrefillFromProjectSplitsOther(t *testing.T) {
	p := &models.Project{
		ID:                 "proj-1",
		Name:               "Service Cloud rollout",
		SFDCLink:           "https://sfdc.example.com/opp/1",
		UseCases:           []string{"Support", "Other: Field service"},
		ProductsInterested: []string{"Service"},
		Channels:           []string{"Web"},
	}
	d := NewDraft()
	d.SetCategory(models.CategoryExternal)
	d.PrefillFromProject(p)

	assert.Equal(t, []string{"Support", models.OtherOption}, d.UseCases)
	assert.Equal(t, "Field service", d.UseCaseOther)
	assert.Equal(t, "https://sfdc.example.com/opp/1", d.SFDCLink)
	assert.False(t, d.NoSFDCLink)
}

func TestTypeOptionsFollowCategory(t *testing.T) {
	d := NewDraft()
	assert.Nil(t, d.TypeOptions())

	d.SetCategory(models.CategoryInternal)
	assert.Equal(t, models.InternalActivityTypes, d.TypeOptions())

	d.SetCategory(models.CategoryExternal)
	assert.Equal(t, models.ExternalActivityTypes, d.TypeOptions())
}
