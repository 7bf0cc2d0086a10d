// ABOUTME: Read-model aggregations: dashboard, monthly, win/loss, filters
// ABOUTME: Pure reads over the store; nothing here mutates collections
package report

import (
	"sort"
	"time"

	"ptrack/models"
	"ptrack/store"
)

// DashboardStats is the at-a-glance summary shown on the home screen.
type DashboardStats struct {
	TotalAccounts      int
	TotalProjects      int
	ActiveProjects     int
	WonProjects        int
	LostProjects       int
	TotalActivities    int
	ExternalActivities int
	InternalActivities int
	ActivitiesByType   map[string]int
	RecentActivities   []models.Activity
}

// recentFeedSize caps the dashboard's recent-activity feed.
const recentFeedSize = 10

func Dashboard(st *store.Store) (*DashboardStats, error) {
	stats := &DashboardStats{ActivitiesByType: map[string]int{}}

	accounts, err := st.Accounts()
	if err != nil {
		return nil, err
	}
	stats.TotalAccounts = len(accounts)
	for _, a := range accounts {
		stats.TotalProjects += len(a.Projects)
		for _, p := range a.Projects {
			switch p.Status {
			case models.StatusWon:
				stats.WonProjects++
			case models.StatusLost:
				stats.LostProjects++
			default:
				stats.ActiveProjects++
			}
		}
	}

	all, err := st.AllActivities()
	if err != nil {
		return nil, err
	}
	stats.TotalActivities = len(all)
	for _, act := range all {
		if act.IsInternal {
			stats.InternalActivities++
		} else {
			stats.ExternalActivities++
		}
		stats.ActivitiesByType[act.Type]++
	}
	stats.RecentActivities = all
	if len(stats.RecentActivities) > recentFeedSize {
		stats.RecentActivities = stats.RecentActivities[:recentFeedSize]
	}
	return stats, nil
}

// MonthlySummary buckets the unified activity stream by YYYY-MM.
type MonthlySummary struct {
	Month    string
	Total    int
	External int
	Internal int
	ByType   map[string]int
	ByUser   map[string]int
}

// Monthly returns one summary per month, newest first.
func Monthly(st *store.Store) ([]MonthlySummary, error) {
	all, err := st.AllActivities()
	if err != nil {
		return nil, err
	}

	buckets := map[string]*MonthlySummary{}
	for _, act := range all {
		month := act.Month()
		s := buckets[month]
		if s == nil {
			s = &MonthlySummary{Month: month, ByType: map[string]int{}, ByUser: map[string]int{}}
			buckets[month] = s
		}
		s.Total++
		if act.IsInternal {
			s.Internal++
		} else {
			s.External++
		}
		s.ByType[act.Type]++
		if act.UserName != "" {
			s.ByUser[act.UserName]++
		}
	}

	out := make([]MonthlySummary, 0, len(buckets))
	for _, s := range buckets {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

// WinLossEntry is a won or lost project with its captured outcome data.
type WinLossEntry struct {
	AccountName string
	ProjectName string
	Status      string
	Reason      string
	Competitors string
	MRR         string
	AccountType string
	UpdatedAt   time.Time
}

// WinLoss lists every project with a final status, most recently decided
// first.
func WinLoss(st *store.Store) ([]WinLossEntry, error) {
	accounts, err := st.Accounts()
	if err != nil {
		return nil, err
	}
	var out []WinLossEntry
	for _, a := range accounts {
		for _, p := range a.Projects {
			if p.Status != models.StatusWon && p.Status != models.StatusLost {
				continue
			}
			e := WinLossEntry{AccountName: a.Name, ProjectName: p.Name, Status: p.Status}
			if p.WinLoss != nil {
				e.Reason = p.WinLoss.Reason
				e.Competitors = p.WinLoss.Competitors
				e.MRR = p.WinLoss.MRR
				e.AccountType = p.WinLoss.AccountType
				e.UpdatedAt = p.WinLoss.UpdatedAt
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// Filter narrows the unified activity stream for the management report. Zero
// values mean "no constraint". Region resolves through the sales rep roster,
// so internal activities never match a region filter.
type Filter struct {
	User   string // matches userName or userId
	Region string
	Type   string
	Month  string // YYYY-MM
}

func Management(st *store.Store, f Filter) ([]models.Activity, error) {
	all, err := st.AllActivities()
	if err != nil {
		return nil, err
	}

	var regionReps map[string]bool
	if f.Region != "" {
		reps, err := st.SalesReps()
		if err != nil {
			return nil, err
		}
		regionReps = map[string]bool{}
		for _, r := range reps {
			if r.Region == f.Region {
				regionReps[r.Name] = true
			}
		}
	}

	var out []models.Activity
	for _, act := range all {
		if f.User != "" && act.UserName != f.User && act.UserID != f.User {
			continue
		}
		if f.Type != "" && act.Type != f.Type {
			continue
		}
		if f.Month != "" && act.Month() != f.Month {
			continue
		}
		if regionReps != nil && !regionReps[act.SalesRep] {
			continue
		}
		out = append(out, act)
	}
	return out, nil
}
