// ABOUTME: Reporting CLI commands
// ABOUTME: Dashboard, monthly summary, win/loss, and management filters
package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"ptrack/models"
	"ptrack/report"
	"ptrack/store"
	"ptrack/viz"
)

// ReportCommand routes the report subcommands.
func ReportCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report requires a subcommand: dashboard, monthly, winloss, management")
	}
	switch args[0] {
	case "dashboard":
		return dashboardCommand(st)
	case "monthly":
		return monthlyCommand(st, args[1:])
	case "winloss":
		return winLossCommand(st)
	case "management":
		return managementCommand(st, args[1:])
	default:
		return fmt.Errorf("unknown report subcommand: %s", args[0])
	}
}

func dashboardCommand(st *store.Store) error {
	stats, err := report.Dashboard(st)
	if err != nil {
		return err
	}
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}

func monthlyCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("report monthly", flag.ExitOnError)
	month := fs.String("month", "", "Limit to one month YYYY-MM")
	fs.Parse(args)

	months, err := report.Monthly(st)
	if err != nil {
		return err
	}

	shown := 0
	for _, m := range months {
		if *month != "" && m.Month != *month {
			continue
		}
		fmt.Printf("%s — %d activities (%d external, %d internal)\n",
			m.Month, m.Total, m.External, m.Internal)

		for _, t := range typesByCount(m.ByType) {
			fmt.Printf("  %-24s %d\n", models.ActivityTypeLabel(t), m.ByType[t])
		}
		fmt.Println()
		shown++
	}
	if shown == 0 {
		fmt.Println("No activities found")
	}
	return nil
}

// typesByCount orders a type breakdown by count descending, name as the
// tie-break.
func typesByCount(byType map[string]int) []string {
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if byType[types[i]] != byType[types[j]] {
			return byType[types[i]] > byType[types[j]]
		}
		return types[i] < types[j]
	})
	return types
}

func winLossCommand(st *store.Store) error {
	entries, err := report.WinLoss(st)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No won or lost projects yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tPROJECT\tSTATUS\tREASON\tMRR")
	fmt.Fprintln(w, "-------\t-------\t------\t------\t---")
	for _, e := range entries {
		reason := e.Reason
		if reason == "" {
			reason = "-"
		}
		mrr := e.MRR
		if mrr == "" {
			mrr = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.AccountName, e.ProjectName, e.Status, reason, mrr)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d project(s)\n", len(entries))
	return nil
}

func managementCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("report management", flag.ExitOnError)
	user := fs.String("user", "", "Filter by user")
	region := fs.String("region", "", "Filter by sales rep region")
	actType := fs.String("type", "", "Filter by activity type")
	month := fs.String("month", "", "Filter by month YYYY-MM")
	fs.Parse(args)

	current, err := requireUser(st)
	if err != nil {
		return err
	}
	if !current.IsAdmin() {
		return fmt.Errorf("the management report requires admin access")
	}

	activities, err := report.Management(st, report.Filter{
		User:   *user,
		Region: *region,
		Type:   *actType,
		Month:  *month,
	})
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Println("No activities match the filters")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tUSER\tTYPE\tACCOUNT\tSALES REP")
	fmt.Fprintln(w, "----\t----\t----\t-------\t---------")
	for _, a := range activities {
		account := a.AccountName
		if a.IsInternal {
			account = "(internal)"
		}
		rep := a.SalesRep
		if rep == "" {
			rep = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Date, a.UserName, models.ActivityTypeLabel(a.Type), account, rep)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d activity(ies)\n", len(activities))
	return nil
}
