// ABOUTME: Tests for model helpers: sorting, month buckets, Other handling
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortTimeFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	a := Activity{Date: "2026-02-01", CreatedAt: created}
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), a.SortTime())

	b := Activity{Date: "not-a-date", CreatedAt: created}
	assert.Equal(t, created, b.SortTime())

	c := Activity{CreatedAt: created}
	assert.Equal(t, created, c.SortTime())
}

func TestMonth(t *testing.T) {
	assert.Equal(t, "2026-02", Activity{Date: "2026-02-15"}.Month())
	assert.Equal(t, "2025-12", Activity{CreatedAt: time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)}.Month())
	assert.Equal(t, "Unknown", Activity{}.Month())
}

func TestExpandOther(t *testing.T) {
	got := ExpandOther([]string{"Web", OtherOption}, "Kiosk")
	assert.Equal(t, []string{"Web", "Other: Kiosk"}, got)

	// Empty text keeps the literal Other entry.
	got = ExpandOther([]string{OtherOption}, "  ")
	assert.Equal(t, []string{OtherOption}, got)

	// Input slice is not modified.
	in := []string{OtherOption}
	ExpandOther(in, "Kiosk")
	assert.Equal(t, []string{OtherOption}, in)
}

func TestSplitOtherRoundTrip(t *testing.T) {
	selected, text := SplitOther([]string{"Web", "Other: Kiosk"})
	assert.Equal(t, []string{"Web", OtherOption}, selected)
	assert.Equal(t, "Kiosk", text)

	selected, text = SplitOther([]string{"Web"})
	assert.Equal(t, []string{"Web"}, selected)
	assert.Empty(t, text)
}

func TestIsCustomPOC(t *testing.T) {
	assert.True(t, IsCustomPOC(AccessCustomAgentic))
	assert.True(t, IsCustomPOC(AccessCustomCommerce))
	assert.False(t, IsCustomPOC(AccessSandbox))
	assert.False(t, IsCustomPOC(AccessOther))
}

func TestIsAdmin(t *testing.T) {
	admin := User{Roles: []string{RoleAdmin, RolePresales}}
	assert.True(t, admin.IsAdmin())
	assert.False(t, User{Roles: []string{RolePresales}}.IsAdmin())
}

func TestActivityTypeLabel(t *testing.T) {
	assert.Equal(t, "Customer Call", ActivityTypeLabel(TypeCustomerCall))
	assert.Equal(t, "Pricing", ActivityTypeLabel(TypePricing))
	// Internal types are stored as display strings already.
	assert.Equal(t, "Training", ActivityTypeLabel("Training"))
}
