// ABOUTME: Data models for presales tracker entities
// ABOUTME: Defines Account, Project, Activity, User, and SalesRep structs
package models

import (
	"strings"
	"time"
)

// NewRecordID is the sentinel account/project id meaning "create a new
// record from the typed name" rather than referencing an existing one.
const NewRecordID = "new"

type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	SalesRep  string    `json:"salesRep,omitempty"` // rep name, roster keyed by email
	Projects  []Project `json:"projects"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type Project struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	SFDCLink           string       `json:"sfdcLink,omitempty"`
	UseCases           []string     `json:"useCases,omitempty"`
	ProductsInterested []string     `json:"productsInterested,omitempty"`
	Channels           []string     `json:"channels,omitempty"`
	Status             string       `json:"status"`
	WinLoss            *WinLossData `json:"winLossData,omitempty"`
	Activities         []Activity   `json:"activities"` // denormalized copies of external activities
	CreatedBy          string       `json:"createdBy,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt,omitempty"`
}

type WinLossData struct {
	Reason      string    `json:"reason"`
	Competitors string    `json:"competitors,omitempty"`
	MRR         string    `json:"mrr"`
	AccountType string    `json:"accountType,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Activity is a logged unit of work. External activities carry account and
// project context; internal ones carry only the internal-only fields and
// live in a separate collection.
type Activity struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	UserName    string            `json:"userName,omitempty"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Type        string            `json:"type"`
	IsInternal  bool              `json:"isInternal"`
	AccountID   string            `json:"accountId,omitempty"`
	AccountName string            `json:"accountName,omitempty"`
	ProjectID   string            `json:"projectId,omitempty"`
	ProjectName string            `json:"projectName,omitempty"`
	SalesRep    string            `json:"salesRep,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	Details     map[string]string `json:"details,omitempty"`

	// Internal-only fields
	TimeSpent    string `json:"timeSpent,omitempty"`
	ActivityName string `json:"activityName,omitempty"`
	Topic        string `json:"topic,omitempty"`
	Description  string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SortTime returns the timestamp used to order the unified activity stream:
// the activity date when parseable, falling back to CreatedAt.
func (a Activity) SortTime() time.Time {
	if a.Date != "" {
		if t, err := time.Parse("2006-01-02", a.Date); err == nil {
			return t
		}
	}
	return a.CreatedAt
}

// Month returns the YYYY-MM bucket for report grouping, "Unknown" when the
// activity has no usable date.
func (a Activity) Month() string {
	if len(a.Date) >= 7 {
		return a.Date[:7]
	}
	if !a.CreatedAt.IsZero() {
		return a.CreatedAt.Format("2006-01")
	}
	return "Unknown"
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	Regions   []string  `json:"regions,omitempty"`
	SalesReps []string  `json:"salesReps,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the user carries the Admin role.
func (u User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// SalesRep is a roster entry. Email is the primary key for dedup.
type SalesRep struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Region    string    `json:"region,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type Session struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

type SyncState struct {
	Service      string     `json:"service"`
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`
	LastSyncTok  string     `json:"lastSyncToken,omitempty"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Activity categories.
const (
	CategoryInternal = "internal"
	CategoryExternal = "external"
)

// External activity types.
const (
	TypeCustomerCall = "customerCall"
	TypeSOW          = "sow"
	TypePOC          = "poc"
	TypeRFx          = "rfx"
	TypePricing      = "pricing"
)

// Project statuses.
const (
	StatusActive = "active"
	StatusWon    = "won"
	StatusLost   = "lost"
)

// POC access types.
const (
	AccessSandbox         = "Sandbox"
	AccessCustomStructure = "Custom POC - Structured Journey"
	AccessCustomAgentic   = "Custom POC - Agentic"
	AccessCustomCommerce  = "Custom POC - Commerce"
	AccessOther           = "Other"
)

// IsCustomPOC reports whether an access type is one of the Custom POC
// variants, which share the demo-environment field set.
func IsCustomPOC(accessType string) bool {
	return strings.HasPrefix(accessType, "Custom POC")
}

// User roles.
const (
	RoleAdmin    = "Admin"
	RolePresales = "Presales User"
)

// OtherOption is the multi-select entry that carries a free-text companion.
// On submit a selected Other with text becomes "Other: <text>".
const OtherOption = "Other"
const otherPrefix = "Other: "

// ExpandOther replaces a selected "Other" entry with "Other: <text>" when
// text is non-empty. The input slice is not modified.
func ExpandOther(selected []string, text string) []string {
	out := make([]string, len(selected))
	copy(out, selected)
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	for i, v := range out {
		if v == OtherOption {
			out[i] = otherPrefix + text
		}
	}
	return out
}

// SplitOther is the inverse of ExpandOther for form pre-population: it maps
// "Other: <text>" back to the "Other" entry and returns the text.
func SplitOther(stored []string) (selected []string, otherText string) {
	for _, v := range stored {
		if strings.HasPrefix(v, otherPrefix) {
			selected = append(selected, OtherOption)
			otherText = strings.TrimPrefix(v, otherPrefix)
			continue
		}
		selected = append(selected, v)
	}
	return selected, otherText
}

// InternalActivityTypes is the taxonomy shown when the internal category is
// selected.
var InternalActivityTypes = []string{
	"Enablement",
	"Video Creation",
	"Webinar",
	"Event/Booth Hosting",
	"Product Feedback",
	"Content Creation",
	"Training",
	"Documentation",
	"Internal Meeting",
	"Other",
}

// ExternalActivityTypes is the taxonomy shown when the external category is
// selected.
var ExternalActivityTypes = []string{
	TypeCustomerCall,
	TypeSOW,
	TypePOC,
	TypeRFx,
	TypePricing,
}

var CallTypes = []string{
	"Demo",
	"Discovery",
	"Scoping Deep Dive",
	"Follow-up",
	"Q&A",
	"Internal Kickoff",
	"Customer Kickoff",
}

var RFxTypes = []string{"RFP", "RFI", "RFQ", "Other"}

var AccessTypes = []string{
	AccessSandbox,
	AccessCustomStructure,
	AccessCustomAgentic,
	AccessCustomCommerce,
	AccessOther,
}

var UseCaseOptions = []string{"Marketing", "Commerce", "Support", "Other"}

var ProductOptions = []string{
	"AI Agents",
	"Campaign Manager",
	"Agent Assist",
	"Journey Builder",
	"Personalize",
	"Voice AI",
	"Other",
}

var ChannelOptions = []string{
	"WhatsApp",
	"Web",
	"Voice",
	"RCS",
	"Instagram",
	"Mobile SDK",
	"Other",
}

// ActivityTypeLabel renders an activity type code for display.
func ActivityTypeLabel(t string) string {
	switch t {
	case TypeCustomerCall:
		return "Customer Call"
	case TypeSOW:
		return "SOW (Statement of Work)"
	case TypePOC:
		return "POC (Proof of Concept)"
	case TypeRFx:
		return "RFx"
	case TypePricing:
		return "Pricing"
	}
	return t
}
