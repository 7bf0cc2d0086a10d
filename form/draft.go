// ABOUTME: Draft holds in-progress activity form state
// ABOUTME: Transition methods clear fields that stop being visible
package form

import (
	"time"

	"ptrack/models"
)

// Draft is an activity being composed. Transition methods (SetCategory,
// SetType, SetAccessType, toggles) keep the field values consistent with
// what VisibleFields says is currently on screen.
type Draft struct {
	Category string
	Date     string
	Type     string

	// External fields. AccountID/ProjectID may be models.NewRecordID, in
	// which case AccountName/ProjectName carry the typed name.
	AccountID   string
	AccountName string
	ProjectID   string
	ProjectName string
	SalesRep    string
	Industry    string
	NoSFDCLink  bool
	SFDCLink    string

	UseCases     []string
	UseCaseOther string
	Products     []string
	ProductOther string
	Channels     []string
	ChannelOther string

	CallType        string
	CallDescription string

	SOWLink string

	AccessType         string
	UseCaseDescription string
	POCStartDate       string
	POCEndDate         string
	DemoEnvironment    string
	BotTriggerURL      string

	RFxType            string
	SubmissionDeadline string
	FolderLink         string
	RFxNotes           string

	// Internal fields.
	TimeSpentValue string
	TimeSpentUnit  string
	ActivityName   string
	Topic          string
	Description    string
}

// NewDraft returns a draft dated today with no category chosen.
func NewDraft() *Draft {
	return &Draft{Date: time.Now().Format("2006-01-02"), TimeSpentUnit: "hour"}
}

// TypeOptions returns the activity type taxonomy for the current category.
func (d *Draft) TypeOptions() []string {
	switch d.Category {
	case models.CategoryInternal:
		return models.InternalActivityTypes
	case models.CategoryExternal:
		return models.ExternalActivityTypes
	}
	return nil
}

// SetCategory switches between internal and external, clearing everything
// that belongs to the other category. The type resets too since the two
// categories use disjoint taxonomies.
func (d *Draft) SetCategory(category string) {
	if category == d.Category {
		return
	}
	d.Category = category
	d.Type = ""
	d.clearExternal()
	d.clearInternal()
	d.clearTypeSpecific()
}

// SetType selects an activity type and clears the previous type's fields.
func (d *Draft) SetType(activityType string) {
	if activityType == d.Type {
		return
	}
	d.Type = activityType
	d.clearTypeSpecific()
}

// SetAccessType switches POC access, dropping the sub-state fields that are
// no longer visible.
func (d *Draft) SetAccessType(accessType string) {
	d.AccessType = accessType
	if accessType != models.AccessSandbox {
		d.POCStartDate = ""
		d.POCEndDate = ""
	}
	if !models.IsCustomPOC(accessType) {
		d.DemoEnvironment = ""
		d.BotTriggerURL = ""
	}
}

// SetPOCStartDate sets the sandbox start date and defaults the end date to
// one week later.
func (d *Draft) SetPOCStartDate(date string) {
	d.POCStartDate = date
	if t, err := time.Parse("2006-01-02", date); err == nil {
		d.POCEndDate = t.AddDate(0, 0, 7).Format("2006-01-02")
	}
}

// ToggleUseCase adds or removes a use case selection. Removing Other also
// clears the companion free-text.
func (d *Draft) ToggleUseCase(option string) {
	d.UseCases = toggle(d.UseCases, option)
	if option == models.OtherOption && !contains(d.UseCases, option) {
		d.UseCaseOther = ""
	}
}

func (d *Draft) ToggleProduct(option string) {
	d.Products = toggle(d.Products, option)
	if option == models.OtherOption && !contains(d.Products, option) {
		d.ProductOther = ""
	}
}

func (d *Draft) ToggleChannel(option string) {
	d.Channels = toggle(d.Channels, option)
	if option == models.OtherOption && !contains(d.Channels, option) {
		d.ChannelOther = ""
	}
}

// PrefillFromProject copies an existing project's fields into the draft so
// editing starts from the stored values.
func (d *Draft) PrefillFromProject(p *models.Project) {
	d.ProjectID = p.ID
	d.ProjectName = p.Name
	d.SFDCLink = p.SFDCLink
	d.NoSFDCLink = p.SFDCLink == ""
	d.UseCases, d.UseCaseOther = models.SplitOther(p.UseCases)
	d.Products, d.ProductOther = models.SplitOther(p.ProductsInterested)
	d.Channels, d.ChannelOther = models.SplitOther(p.Channels)
}

func (d *Draft) clearExternal() {
	d.AccountID = ""
	d.AccountName = ""
	d.ProjectID = ""
	d.ProjectName = ""
	d.SalesRep = ""
	d.Industry = ""
	d.NoSFDCLink = false
	d.SFDCLink = ""
	d.UseCases = nil
	d.UseCaseOther = ""
	d.Products = nil
	d.ProductOther = ""
	d.Channels = nil
	d.ChannelOther = ""
}

func (d *Draft) clearInternal() {
	d.TimeSpentValue = ""
	d.ActivityName = ""
	d.Topic = ""
	d.Description = ""
}

func (d *Draft) clearTypeSpecific() {
	d.CallType = ""
	d.CallDescription = ""
	d.SOWLink = ""
	d.AccessType = ""
	d.UseCaseDescription = ""
	d.POCStartDate = ""
	d.POCEndDate = ""
	d.DemoEnvironment = ""
	d.BotTriggerURL = ""
	d.RFxType = ""
	d.SubmissionDeadline = ""
	d.FolderLink = ""
	d.RFxNotes = ""
}

func toggle(list []string, option string) []string {
	for i, v := range list {
		if v == option {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, option)
}

func contains(list []string, option string) bool {
	for _, v := range list {
		if v == option {
			return true
		}
	}
	return false
}
