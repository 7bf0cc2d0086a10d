// ABOUTME: Terminal dashboard rendering for the activity tracker overview
// ABOUTME: ASCII bars for the project pipeline and activity type breakdown
package viz

import (
	"fmt"
	"sort"
	"strings"

	"ptrack/models"
	"ptrack/report"
)

// RenderDashboard formats dashboard stats for the terminal.
func RenderDashboard(stats *report.DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  PTRACK DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PROJECT PIPELINE\n")
	renderPipeline(&out, stats)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  🏢 %d accounts  📁 %d projects  📝 %d activities\n",
		stats.TotalAccounts, stats.TotalProjects, stats.TotalActivities))
	out.WriteString(fmt.Sprintf("  %d external / %d internal\n\n",
		stats.ExternalActivities, stats.InternalActivities))

	if len(stats.ActivitiesByType) > 0 {
		out.WriteString("ACTIVITY TYPES\n")
		renderTypes(&out, stats.ActivitiesByType)
	}

	if len(stats.RecentActivities) > 0 {
		out.WriteString("\nRECENT ACTIVITY\n")
		renderRecent(&out, stats.RecentActivities)
	}

	return out.String()
}

func renderRecent(out *strings.Builder, recent []models.Activity) {
	for _, act := range recent {
		subject := act.AccountName
		if act.IsInternal {
			subject = act.Topic
		}
		out.WriteString(fmt.Sprintf("  %s  %-24s %s\n",
			act.Date, models.ActivityTypeLabel(act.Type), subject))
	}
}

func renderPipeline(out *strings.Builder, stats *report.DashboardStats) {
	rows := []struct {
		label string
		count int
	}{
		{"active", stats.ActiveProjects},
		{"won", stats.WonProjects},
		{"lost", stats.LostProjects},
	}

	maxCount := 1
	for _, r := range rows {
		if r.count > maxCount {
			maxCount = r.count
		}
	}

	for _, r := range rows {
		barLength := (r.count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
		out.WriteString(fmt.Sprintf("  %-8s %s  %d\n", r.label, bar, r.count))
	}
}

func renderTypes(out *strings.Builder, byType map[string]int) {
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

	for _, t := range types {
		out.WriteString(fmt.Sprintf("  %-24s %d\n", models.ActivityTypeLabel(t), byType[t]))
	}
}
