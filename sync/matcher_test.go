// ABOUTME: Tests for account matching of imported calendar events
package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ptrack/models"
)

func testAccounts() []models.Account {
	return []models.Account{
		{ID: "a1", Name: "Acme Corp"},
		{ID: "a2", Name: "Globex"},
	}
}

func TestMatchTitle(t *testing.T) {
	m := NewAccountMatcher(testAccounts())

	acct, ok := m.MatchTitle("Weekly sync with Acme Corp team")
	assert.True(t, ok)
	assert.Equal(t, "a1", acct.ID)

	acct, ok = m.MatchTitle("globex demo prep")
	assert.True(t, ok)
	assert.Equal(t, "a2", acct.ID)

	_, ok = m.MatchTitle("1:1 with manager")
	assert.False(t, ok)
}

func TestMatchAttendeeDomains(t *testing.T) {
	m := NewAccountMatcher(testAccounts())

	acct, ok := m.MatchAttendees([]string{"me@example.com", "Alice@AcmeCorp.com"})
	assert.True(t, ok)
	assert.Equal(t, "a1", acct.ID)

	_, ok = m.MatchAttendees([]string{"bob@initech.com"})
	assert.False(t, ok)

	_, ok = m.MatchAttendees([]string{"not-an-email"})
	assert.False(t, ok)
}

func TestMatchPrefersTitle(t *testing.T) {
	m := NewAccountMatcher(testAccounts())

	acct, ok := m.Match("Globex kickoff", []string{"alice@acmecorp.com"})
	assert.True(t, ok)
	assert.Equal(t, "a2", acct.ID)
}
