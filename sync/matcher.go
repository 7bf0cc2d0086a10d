// ABOUTME: Matches calendar events to accounts to prevent orphan imports
// ABOUTME: Looks for account names in event titles and attendee email domains
package sync

import (
	"strings"

	"ptrack/models"
)

// AccountMatcher resolves an account for an imported event. Matching is
// name-in-title first, attendee email domain second.
type AccountMatcher struct {
	accounts []models.Account
	byDomain map[string]*models.Account
}

// NewAccountMatcher builds a matcher over the current account list.
func NewAccountMatcher(accounts []models.Account) *AccountMatcher {
	m := &AccountMatcher{
		accounts: accounts,
		byDomain: make(map[string]*models.Account),
	}
	for i := range accounts {
		domain := nameToDomainKey(accounts[i].Name)
		if domain != "" {
			m.byDomain[domain] = &accounts[i]
		}
	}
	return m
}

// MatchTitle finds an account whose name appears in the event summary.
func (m *AccountMatcher) MatchTitle(summary string) (*models.Account, bool) {
	lower := strings.ToLower(summary)
	for i := range m.accounts {
		name := strings.ToLower(m.accounts[i].Name)
		if name != "" && strings.Contains(lower, name) {
			return &m.accounts[i], true
		}
	}
	return nil, false
}

// MatchAttendees finds an account by comparing attendee email domains
// against normalized account names ("Acme Corp" matches alice@acmecorp.com).
func (m *AccountMatcher) MatchAttendees(emails []string) (*models.Account, bool) {
	for _, email := range emails {
		domain := extractDomain(strings.ToLower(strings.TrimSpace(email)))
		if domain == "" {
			continue
		}
		key := strings.TrimSuffix(domain, ".com")
		key = strings.TrimSuffix(key, ".io")
		key = strings.ReplaceAll(key, ".", "")
		if acct, ok := m.byDomain[key]; ok {
			return acct, true
		}
	}
	return nil, false
}

// Match tries the title first, then attendees.
func (m *AccountMatcher) Match(summary string, attendeeEmails []string) (*models.Account, bool) {
	if acct, ok := m.MatchTitle(summary); ok {
		return acct, true
	}
	return m.MatchAttendees(attendeeEmails)
}

// nameToDomainKey normalizes an account name the way a company domain
// usually looks: lowercase, no spaces or punctuation.
func nameToDomainKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractDomain(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
