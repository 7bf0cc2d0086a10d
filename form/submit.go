// ABOUTME: Validation and persistence of activity drafts
// ABOUTME: Submit auto-creates accounts/projects picked via the "new" sentinel
package form

import (
	"fmt"
	"strings"

	"ptrack/models"
	"ptrack/store"
)

// Validate checks the draft against the currently visible field set. It
// touches the store only to read (sales rep roster, account existence) and
// never writes, so a failed submit leaves no partial state behind.
func (d *Draft) Validate(st *store.Store) error {
	if d.Category == "" {
		return fmt.Errorf("select an activity category")
	}
	if d.Date == "" {
		return fmt.Errorf("date is required")
	}
	if d.Type == "" {
		return fmt.Errorf("activity type is required")
	}

	if d.Category == models.CategoryInternal {
		if strings.TrimSpace(d.Topic) == "" {
			return fmt.Errorf("session name / topic is required")
		}
		return nil
	}

	if d.AccountID == "" {
		return fmt.Errorf("select an account")
	}
	if d.AccountID == models.NewRecordID && strings.TrimSpace(d.AccountName) == "" {
		return fmt.Errorf("enter a name for the new account")
	}
	if d.AccountID != models.NewRecordID {
		acct, err := st.AccountByID(d.AccountID)
		if err != nil {
			return err
		}
		if acct == nil {
			return fmt.Errorf("account not found: %s", d.AccountID)
		}
	}
	if d.SalesRep == "" {
		return fmt.Errorf("select a sales rep")
	}
	rep, err := st.SalesRepByName(d.SalesRep)
	if err != nil {
		return err
	}
	if rep == nil {
		return fmt.Errorf("sales rep %q is not on the roster", d.SalesRep)
	}
	if d.Industry == "" {
		return fmt.Errorf("select an industry")
	}
	if d.ProjectID == "" {
		return fmt.Errorf("select a project")
	}
	if d.ProjectID == models.NewRecordID && strings.TrimSpace(d.ProjectName) == "" {
		return fmt.Errorf("enter a name for the new project")
	}
	if len(models.ExpandOther(d.Products, d.ProductOther)) == 0 {
		return fmt.Errorf("select at least one product")
	}
	if len(models.ExpandOther(d.Channels, d.ChannelOther)) == 0 {
		return fmt.Errorf("select at least one channel")
	}

	for _, f := range VisibleFields(d.Category, d.Type, d.AccessType) {
		if !f.Required {
			continue
		}
		switch f.Key {
		case FieldCallType:
			if d.CallType == "" {
				return fmt.Errorf("call type is required")
			}
		case FieldCallDescription:
			if strings.TrimSpace(d.CallDescription) == "" {
				return fmt.Errorf("call description is required")
			}
		case FieldSOWLink:
			if strings.TrimSpace(d.SOWLink) == "" {
				return fmt.Errorf("SOW document link is required")
			}
		case FieldAccessType:
			if d.AccessType == "" {
				return fmt.Errorf("access type is required")
			}
		case FieldUseCaseDesc:
			if strings.TrimSpace(d.UseCaseDescription) == "" {
				return fmt.Errorf("use case description is required")
			}
		case FieldPOCStart:
			if d.POCStartDate == "" {
				return fmt.Errorf("sandbox start date is required")
			}
		case FieldPOCEnd:
			if d.POCEndDate == "" {
				return fmt.Errorf("sandbox end date is required")
			}
		case FieldRFxType:
			if d.RFxType == "" {
				return fmt.Errorf("RFx type is required")
			}
		case FieldDeadline:
			if d.SubmissionDeadline == "" {
				return fmt.Errorf("submission deadline is required")
			}
		}
	}
	return nil
}

// Submit validates the draft and persists it as a new activity under the
// authenticated user. New accounts and projects are created on the fly when
// the draft references them via the "new" sentinel; picking an existing
// account with a different sales rep or industry updates the account in
// place. External activities are also appended to their project's embedded
// activity list.
func Submit(st *store.Store, user *models.User, d *Draft) (*models.Activity, error) {
	if user == nil {
		return nil, fmt.Errorf("not logged in")
	}
	if err := d.Validate(st); err != nil {
		return nil, err
	}

	if d.Category == models.CategoryInternal {
		act := &models.Activity{
			UserID:       user.ID,
			UserName:     user.Username,
			Date:         d.Date,
			Type:         d.Type,
			TimeSpent:    d.timeSpent(),
			ActivityName: strings.TrimSpace(d.ActivityName),
			Topic:        strings.TrimSpace(d.Topic),
			Description:  strings.TrimSpace(d.Description),
		}
		if err := st.AddInternalActivity(act); err != nil {
			return nil, err
		}
		return act, nil
	}

	accountID := d.AccountID
	accountName := ""
	if accountID == models.NewRecordID {
		acct := &models.Account{
			Name:      strings.TrimSpace(d.AccountName),
			Industry:  d.Industry,
			SalesRep:  d.SalesRep,
			CreatedBy: user.ID,
		}
		if err := st.AddAccount(acct); err != nil {
			return nil, err
		}
		accountID = acct.ID
		accountName = acct.Name
	} else {
		acct, err := st.UpdateAccount(accountID, func(a *models.Account) {
			a.SalesRep = d.SalesRep
			a.Industry = d.Industry
		})
		if err != nil {
			return nil, err
		}
		if acct == nil {
			return nil, fmt.Errorf("account not found: %s", accountID)
		}
		accountName = acct.Name
	}

	sfdc := strings.TrimSpace(d.SFDCLink)
	if d.NoSFDCLink {
		sfdc = ""
	}
	useCases := models.ExpandOther(d.UseCases, d.UseCaseOther)
	products := models.ExpandOther(d.Products, d.ProductOther)
	channels := models.ExpandOther(d.Channels, d.ChannelOther)

	projectID := d.ProjectID
	projectName := ""
	if projectID == models.NewRecordID {
		proj := &models.Project{
			Name:               strings.TrimSpace(d.ProjectName),
			SFDCLink:           sfdc,
			UseCases:           useCases,
			ProductsInterested: products,
			Channels:           channels,
			Status:             models.StatusActive,
		}
		added, err := st.AddProject(accountID, proj)
		if err != nil {
			return nil, err
		}
		projectID = added.ID
		projectName = added.Name
	} else {
		proj, err := st.UpdateProject(accountID, projectID, func(p *models.Project) {
			if sfdc != "" {
				p.SFDCLink = sfdc
			}
			if len(useCases) > 0 {
				p.UseCases = useCases
			}
			p.ProductsInterested = products
			p.Channels = channels
		})
		if err != nil {
			return nil, err
		}
		if proj == nil {
			return nil, fmt.Errorf("project not found: %s", projectID)
		}
		projectName = proj.Name
	}

	act := &models.Activity{
		UserID:      user.ID,
		UserName:    user.Username,
		AccountID:   accountID,
		AccountName: accountName,
		ProjectID:   projectID,
		ProjectName: projectName,
		SalesRep:    d.SalesRep,
		Industry:    d.Industry,
		Date:        d.Date,
		Type:        d.Type,
		Details:     d.details(),
	}
	if err := st.AddActivity(act); err != nil {
		return nil, err
	}

	// Keep the project's embedded activity list in step with the activity
	// collection for new submissions.
	if _, err := st.UpdateProject(accountID, projectID, func(p *models.Project) {
		p.Activities = append(p.Activities, *act)
	}); err != nil {
		return nil, err
	}
	return act, nil
}

func (d *Draft) timeSpent() string {
	v := strings.TrimSpace(d.TimeSpentValue)
	if v == "" {
		return ""
	}
	unit := d.TimeSpentUnit
	if unit == "" {
		unit = "hour"
	}
	if v != "1" {
		unit += "s"
	}
	return v + " " + unit
}

// details builds the type-specific payload stored on the activity record.
func (d *Draft) details() map[string]string {
	details := map[string]string{}
	switch d.Type {
	case models.TypeCustomerCall:
		details["callType"] = d.CallType
		details["description"] = strings.TrimSpace(d.CallDescription)
	case models.TypeSOW:
		details["sowLink"] = strings.TrimSpace(d.SOWLink)
	case models.TypePOC:
		details["accessType"] = d.AccessType
		details["useCaseDescription"] = strings.TrimSpace(d.UseCaseDescription)
		if d.AccessType == models.AccessSandbox {
			details["startDate"] = d.POCStartDate
			details["endDate"] = d.POCEndDate
			details["pocEnvironmentName"] = ""
			details["assignedStatus"] = "Unassigned"
		} else if models.IsCustomPOC(d.AccessType) {
			details["demoEnvironment"] = strings.TrimSpace(d.DemoEnvironment)
			details["botTriggerUrl"] = strings.TrimSpace(d.BotTriggerURL)
		}
	case models.TypeRFx:
		details["rfxType"] = d.RFxType
		details["submissionDeadline"] = d.SubmissionDeadline
		details["googleFolderLink"] = strings.TrimSpace(d.FolderLink)
		details["notes"] = strings.TrimSpace(d.RFxNotes)
	}
	return details
}
