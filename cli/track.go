// ABOUTME: Activity tracking CLI commands
// ABOUTME: Log, list, and delete activities from the terminal
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"ptrack/form"
	"ptrack/models"
	"ptrack/store"
)

// TrackCommand routes the track subcommands.
func TrackCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("track requires a subcommand: log, list, edit, delete, status")
	}
	switch args[0] {
	case "log":
		return logActivityCommand(st, args[1:])
	case "list":
		return listActivitiesCommand(st, args[1:])
	case "edit":
		return editActivityCommand(st, args[1:])
	case "delete":
		return deleteActivityCommand(st, args[1:])
	case "status":
		return projectStatusCommand(st, args[1:])
	default:
		return fmt.Errorf("unknown track subcommand: %s", args[0])
	}
}

func logActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("track log", flag.ExitOnError)
	category := fs.String("category", models.CategoryExternal, "Activity category: internal or external")
	date := fs.String("date", "", "Activity date YYYY-MM-DD (default today)")
	actType := fs.String("type", "", "Activity type (required)")
	account := fs.String("account", "", "Account name; created if unknown")
	project := fs.String("project", "", "Project name; created if unknown")
	rep := fs.String("rep", "", "Sales rep name from the roster")
	industry := fs.String("industry", "", "Account industry")
	products := fs.String("products", "", "Comma-separated products of interest")
	channels := fs.String("channels", "", "Comma-separated channels")
	callType := fs.String("call-type", "", "Call type for customerCall")
	description := fs.String("description", "", "Call or activity description")
	sowLink := fs.String("sow-link", "", "SOW document link")
	accessType := fs.String("access-type", "", "POC access type")
	useCaseDesc := fs.String("use-case", "", "POC use case description")
	pocStart := fs.String("poc-start", "", "Sandbox start date YYYY-MM-DD")
	rfxType := fs.String("rfx-type", "", "RFx type: RFP, RFI, RFQ, Other")
	deadline := fs.String("deadline", "", "RFx submission deadline")
	topic := fs.String("topic", "", "Session name / topic (internal)")
	timeSpent := fs.String("time", "", "Time spent amount (internal)")
	timeUnit := fs.String("time-unit", "hour", "Time spent unit: hour or day")
	fs.Parse(args)

	user, err := requireUser(st)
	if err != nil {
		return err
	}

	d := form.NewDraft()
	d.SetCategory(*category)
	d.SetType(*actType)
	if *date != "" {
		d.Date = *date
	}

	switch *category {
	case models.CategoryInternal:
		d.Topic = *topic
		d.Description = *description
		d.TimeSpentValue = *timeSpent
		d.TimeSpentUnit = *timeUnit
	case models.CategoryExternal:
		if err := resolveAccountFlags(st, d, *account, *project, *rep, *industry); err != nil {
			return err
		}
		if *products != "" {
			d.Products = splitList(*products)
		}
		if *channels != "" {
			d.Channels = splitList(*channels)
		}
		d.CallType = *callType
		d.CallDescription = *description
		d.SOWLink = *sowLink
		d.UseCaseDescription = *useCaseDesc
		d.RFxType = *rfxType
		d.SubmissionDeadline = *deadline
		if *accessType != "" {
			d.SetAccessType(*accessType)
		}
		if *pocStart != "" {
			d.SetPOCStartDate(*pocStart)
		}
	default:
		return fmt.Errorf("--category must be internal or external")
	}

	act, err := form.Submit(st, user, d)
	if err != nil {
		return err
	}

	if act.IsInternal {
		fmt.Printf("✓ Internal activity logged: %s — %s (%s)\n", act.Type, act.Topic, act.Date)
	} else {
		fmt.Printf("✓ Activity logged: %s for %s / %s (%s)\n",
			models.ActivityTypeLabel(act.Type), act.AccountName, act.ProjectName, act.Date)
	}
	return nil
}

// resolveAccountFlags maps names onto ids, letting the form's "new" sentinel
// create records that don't exist yet.
func resolveAccountFlags(st *store.Store, d *form.Draft, account, project, rep, industry string) error {
	d.SalesRep = rep
	d.Industry = industry

	acct, err := st.AccountByName(account)
	if err != nil {
		return err
	}
	if acct == nil {
		d.AccountID = models.NewRecordID
		d.AccountName = account
		d.ProjectID = models.NewRecordID
		d.ProjectName = project
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
		if strings.EqualFold(acct.Projects[i].Name, project) {
			d.PrefillFromProject(&acct.Projects[i])
			return nil
		}
	}
	d.ProjectID = models.NewRecordID
	d.ProjectName = project
	return nil
}

func listActivitiesCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("track list", flag.ExitOnError)
	account := fs.String("account", "", "Filter by account name")
	user := fs.String("user", "", "Filter by user name")
	actType := fs.String("type", "", "Filter by activity type")
	month := fs.String("month", "", "Filter by month YYYY-MM")
	limit := fs.Int("limit", 50, "Maximum results")
	fs.Parse(args)

	all, err := st.AllActivities()
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tACCOUNT\tPROJECT\tUSER\tID")
	fmt.Fprintln(w, "----\t----\t-------\t-------\t----\t--")

	shown := 0
	for _, act := range all {
		if *account != "" && !strings.EqualFold(act.AccountName, *account) {
			continue
		}
		if *user != "" && !strings.EqualFold(act.UserName, *user) {
			continue
		}
		if *actType != "" && act.Type != *actType {
			continue
		}
		if *month != "" && act.Month() != *month {
			continue
		}

		accountName := act.AccountName
		projectName := act.ProjectName
		if act.IsInternal {
			accountName = "(internal)"
			projectName = act.Topic
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			act.Date, models.ActivityTypeLabel(act.Type), accountName, projectName,
			act.UserName, shortID(act.ID))
		shown++
		if shown >= *limit {
			break
		}
	}
	w.Flush()

	fmt.Printf("\nTotal: %d activity(ies)\n", shown)
	return nil
}

func editActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("track edit", flag.ExitOnError)
	id := fs.String("id", "", "Activity id (required, prefix accepted)")
	date := fs.String("date", "", "New activity date YYYY-MM-DD")
	description := fs.String("description", "", "New description")
	topic := fs.String("topic", "", "New session name / topic (internal)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}
	user, err := requireUser(st)
	if err != nil {
		return err
	}
	target, err := findActivity(st, *id)
	if err != nil {
		return err
	}

	// Only the owner (or an admin) may edit an activity.
	if target.UserID != user.ID && !user.IsAdmin() {
		return fmt.Errorf("activity %s belongs to %s", shortID(target.ID), target.UserName)
	}

	mutate := func(a *models.Activity) {
		if *date != "" {
			a.Date = *date
		}
		if *topic != "" {
			a.Topic = *topic
		}
		if *description != "" {
			if a.IsInternal {
				a.Description = *description
			} else {
				if a.Details == nil {
					a.Details = map[string]string{}
				}
				a.Details["description"] = *description
			}
		}
	}

	if target.IsInternal {
		_, err = st.UpdateInternalActivity(target.ID, mutate)
	} else {
		_, err = st.UpdateActivity(target.ID, mutate)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Activity updated: %s\n", shortID(target.ID))
	return nil
}

func deleteActivityCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("track delete", flag.ExitOnError)
	id := fs.String("id", "", "Activity id (required, prefix accepted)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("--id is required")
	}
	user, err := requireUser(st)
	if err != nil {
		return err
	}
	target, err := findActivity(st, *id)
	if err != nil {
		return err
	}

	// Only the owner (or an admin) may delete an activity.
	if target.UserID != user.ID && !user.IsAdmin() {
		return fmt.Errorf("activity %s belongs to %s", shortID(target.ID), target.UserName)
	}

	if target.IsInternal {
		err = st.DeleteInternalActivity(target.ID)
	} else {
		err = st.DeleteActivity(target.ID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✓ Activity deleted: %s\n", shortID(target.ID))
	return nil
}

func projectStatusCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("track status", flag.ExitOnError)
	account := fs.String("account", "", "Account name (required)")
	project := fs.String("project", "", "Project name (required)")
	status := fs.String("status", "", "New status: active, won, or lost")
	reason := fs.String("reason", "", "Win/loss reason")
	competitors := fs.String("competitors", "", "Competitors involved")
	mrr := fs.String("mrr", "", "Deal MRR")
	accountType := fs.String("account-type", "", "New Logo or Existing")
	fs.Parse(args)

	if *account == "" || *project == "" {
		return fmt.Errorf("--account and --project are required")
	}
	switch *status {
	case models.StatusActive, models.StatusWon, models.StatusLost:
	default:
		return fmt.Errorf("--status must be active, won, or lost")
	}
	if _, err := requireUser(st); err != nil {
		return err
	}

	acct, err := st.AccountByName(*account)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("account not found: %s", *account)
	}
	var projectID string
	for i := range acct.Projects {
		if strings.EqualFold(acct.Projects[i].Name, *project) {
			projectID = acct.Projects[i].ID
			break
		}
	}
	if projectID == "" {
		return fmt.Errorf("project not found: %s", *project)
	}

	_, err = st.UpdateProject(acct.ID, projectID, func(p *models.Project) {
		p.Status = *status
		if *status == models.StatusActive {
			p.WinLoss = nil
			return
		}
		p.WinLoss = &models.WinLossData{
			Reason:      *reason,
			Competitors: *competitors,
			MRR:         *mrr,
			AccountType: *accountType,
			UpdatedAt:   time.Now().UTC(),
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Project %s marked %s\n", *project, *status)
	return nil
}

// findActivity resolves an id or unique id prefix across both activity
// collections.
func findActivity(st *store.Store, id string) (*models.Activity, error) {
	all, err := st.AllActivities()
	if err != nil {
		return nil, err
	}
	var target *models.Activity
	for i := range all {
		if all[i].ID == id || strings.HasPrefix(all[i].ID, id) {
			if target != nil {
				return nil, fmt.Errorf("id prefix %s is ambiguous", id)
			}
			target = &all[i]
		}
	}
	if target == nil {
		return nil, fmt.Errorf("activity not found: %s", id)
	}
	return target, nil
}

func requireUser(st *store.Store) (*models.User, error) {
	user, err := st.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in: run 'ptrack login' first")
	}
	return user, nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
