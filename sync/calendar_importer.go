// ABOUTME: Imports customer meetings from Google Calendar as activities
// ABOUTME: Handles pagination, sync tokens, skip filters, and dedup by event id
package sync

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"ptrack/models"
	"ptrack/store"
)

const (
	calendarService = "calendar"
	maxResults      = 250 // Google Calendar API max per page

	detailEventID = "calendarEventId"
)

// shouldSkipEvent filters out events that cannot be customer meetings.
// Returns (true, reason) when the event should be skipped.
func shouldSkipEvent(event *calendar.Event) (bool, string) {
	if event == nil {
		return true, "nil event"
	}
	if event.Start == nil {
		return true, "missing start time"
	}
	// All-day events carry Date instead of DateTime.
	if event.Start.Date != "" {
		return true, "all-day event"
	}
	if event.Status == "cancelled" {
		return true, "cancelled"
	}
	for _, attendee := range event.Attendees {
		if attendee.Self && attendee.ResponseStatus == "declined" {
			return true, "declined"
		}
	}
	if len(event.Attendees) <= 1 {
		return true, fmt.Sprintf("solo event (%d attendee%s)", len(event.Attendees), pluralize(len(event.Attendees)))
	}
	return false, ""
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// ImportCalendar fetches calendar events and logs the ones that match a
// known account as customer-call activities owned by user. Events that were
// already imported (same calendar event id) are skipped.
func ImportCalendar(st *store.Store, client *calendar.Service, user *models.User, initial bool) error {
	fmt.Println("Syncing Google Calendar...")
	if err := st.SaveSyncState(&models.SyncState{Service: calendarService, Status: "syncing"}); err != nil {
		return fmt.Errorf("failed to update sync status: %w", err)
	}

	state, err := st.SyncState(calendarService)
	if err != nil {
		return fmt.Errorf("failed to get sync state: %w", err)
	}

	accounts, err := st.Accounts()
	if err != nil {
		return err
	}
	matcher := NewAccountMatcher(accounts)

	existing, err := st.Activities()
	if err != nil {
		return err
	}
	imported := make(map[string]bool)
	for _, a := range existing {
		if id := a.Details[detailEventID]; id != "" {
			imported[id] = true
		}
	}

	call := client.Events.List("primary").
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime")

	if initial || state == nil || state.LastSyncTok == "" {
		sixMonthsAgo := time.Now().AddDate(0, -6, 0)
		call = call.TimeMin(sixMonthsAgo.Format(time.RFC3339))
		fmt.Println("  → Full sync (last 6 months)...")
	} else {
		call = call.SyncToken(state.LastSyncTok)
		fmt.Println("  → Incremental sync...")
	}

	totalEvents := 0
	loggedCount := 0
	skipCounts := make(map[string]int)
	pageToken := ""
	var nextSyncToken string

	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			// A 410 means the sync token expired; fall back to time-based.
			if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 410 {
				fmt.Println("  → Sync token invalid, falling back to time-based sync...")
				fallback := time.Now().AddDate(0, -6, 0)
				if state != nil && state.LastSyncTime != nil {
					fallback = *state.LastSyncTime
				}
				call = client.Events.List("primary").
					MaxResults(maxResults).
					SingleEvents(true).
					OrderBy("startTime").
					TimeMin(fallback.Format(time.RFC3339))
				totalEvents = 0
				events, err = call.Do()
			}
			if err != nil {
				_ = st.SaveSyncState(&models.SyncState{
					Service:      calendarService,
					Status:       "error",
					ErrorMessage: err.Error(),
					LastSyncTok:  stateToken(state),
				})
				return fmt.Errorf("failed to fetch calendar events: %w", err)
			}
		}

		totalEvents += len(events.Items)

		for _, event := range events.Items {
			if skip, reason := shouldSkipEvent(event); skip {
				skipCounts[reason]++
				continue
			}
			if imported[event.Id] {
				skipCounts["already imported"]++
				continue
			}

			var emails []string
			for _, att := range event.Attendees {
				emails = append(emails, att.Email)
			}
			acct, ok := matcher.Match(event.Summary, emails)
			if !ok {
				skipCounts["no matching account"]++
				continue
			}

			act := &models.Activity{
				UserID:      user.ID,
				UserName:    user.Username,
				AccountID:   acct.ID,
				AccountName: acct.Name,
				SalesRep:    acct.SalesRep,
				Industry:    acct.Industry,
				Date:        eventDate(event),
				Type:        models.TypeCustomerCall,
				Details: map[string]string{
					"description": event.Summary,
					"source":      "google-calendar",
					detailEventID: event.Id,
				},
			}
			if err := st.AddActivity(act); err != nil {
				return fmt.Errorf("failed to log event %q: %w", event.Summary, err)
			}
			imported[event.Id] = true
			loggedCount++
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			nextSyncToken = events.NextSyncToken
			break
		}
	}

	syncTime := time.Now().UTC()
	if err := st.SaveSyncState(&models.SyncState{
		Service:      calendarService,
		Status:       "idle",
		LastSyncTime: &syncTime,
		LastSyncTok:  nextSyncToken,
	}); err != nil {
		return fmt.Errorf("failed to update sync status: %w", err)
	}

	fmt.Printf("\n✓ Fetched %d events, logged %d customer call%s\n", totalEvents, loggedCount, pluralize(loggedCount))
	for reason, count := range skipCounts {
		fmt.Printf("  ✓ Skipped %d %s event%s\n", count, reason, pluralize(count))
	}
	if nextSyncToken != "" {
		fmt.Println("Sync token saved. Next sync will be incremental.")
	}
	return nil
}

func stateToken(state *models.SyncState) string {
	if state == nil {
		return ""
	}
	return state.LastSyncTok
}

// eventDate extracts the YYYY-MM-DD activity date from the event start.
func eventDate(event *calendar.Event) string {
	if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
		return t.Format("2006-01-02")
	}
	if len(event.Start.DateTime) >= 10 {
		return event.Start.DateTime[:10]
	}
	return time.Now().Format("2006-01-02")
}
