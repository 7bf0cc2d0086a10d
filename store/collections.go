// ABOUTME: Typed collection accessors and record CRUD over the store
// ABOUTME: Read-modify-write of whole collection snapshots per operation
package store

import (
	"errors"
	"sort"
	"strings"

	"ptrack/models"
)

// ErrRepExists is returned by AddSalesRep when the email is already on the
// roster. Email is the roster's primary key.
var ErrRepExists = errors.New("sales rep already exists")

// Accounts

func (s *Store) Accounts() ([]models.Account, error) {
	var accounts []models.Account
	err := s.load(colAccounts, &accounts)
	return accounts, err
}

func (s *Store) SaveAccounts(accounts []models.Account) error {
	return s.save(colAccounts, accounts)
}

// AccountByID returns (nil, nil) when no account matches.
func (s *Store) AccountByID(id string) (*models.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// AccountByName matches case-insensitively; returns (nil, nil) on no match.
func (s *Store) AccountByName(name string) (*models.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Name, name) {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (s *Store) AddAccount(account *models.Account) error {
	accounts, err := s.Accounts()
	if err != nil {
		return err
	}
	account.ID = NewID()
	if account.Projects == nil {
		account.Projects = []models.Project{}
	}
	account.CreatedAt = now()
	accounts = append(accounts, *account)
	return s.SaveAccounts(accounts)
}

// UpdateAccount applies mutate to the matching account and persists the
// collection. Returns (nil, nil) when the id is unknown.
func (s *Store) UpdateAccount(id string, mutate func(*models.Account)) (*models.Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			mutate(&accounts[i])
			accounts[i].UpdatedAt = now()
			if err := s.SaveAccounts(accounts); err != nil {
				return nil, err
			}
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// DeleteAccount removes the account and every external activity referencing
// it. Nested projects go with the account record.
func (s *Store) DeleteAccount(id string) error {
	activities, err := s.Activities()
	if err != nil {
		return err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.AccountID != id {
			kept = append(kept, a)
		}
	}
	if err := s.SaveActivities(kept); err != nil {
		return err
	}

	accounts, err := s.Accounts()
	if err != nil {
		return err
	}
	remaining := accounts[:0]
	for _, a := range accounts {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	return s.SaveAccounts(remaining)
}

// Projects

func (s *Store) AddProject(accountID string, project *models.Project) (*models.Project, error) {
	project.ID = NewID()
	if project.Activities == nil {
		project.Activities = []models.Activity{}
	}
	if project.Status == "" {
		project.Status = models.StatusActive
	}
	project.CreatedAt = now()

	account, err := s.UpdateAccount(accountID, func(a *models.Account) {
		a.Projects = append(a.Projects, *project)
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return project, nil
}

// UpdateProject applies mutate to the matching project inside its account.
// Returns (nil, nil) when either id is unknown.
func (s *Store) UpdateProject(accountID, projectID string, mutate func(*models.Project)) (*models.Project, error) {
	var updated *models.Project
	account, err := s.UpdateAccount(accountID, func(a *models.Account) {
		for i := range a.Projects {
			if a.Projects[i].ID == projectID {
				mutate(&a.Projects[i])
				a.Projects[i].UpdatedAt = now()
				updated = &a.Projects[i]
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if account == nil || updated == nil {
		return nil, nil
	}
	return updated, nil
}

// External activities

func (s *Store) Activities() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.load(colActivities, &activities)
	return activities, err
}

func (s *Store) SaveActivities(activities []models.Activity) error {
	return s.save(colActivities, activities)
}

func (s *Store) AddActivity(activity *models.Activity) error {
	activities, err := s.Activities()
	if err != nil {
		return err
	}
	activity.ID = NewID()
	activity.IsInternal = false
	activity.CreatedAt = now()
	activity.UpdatedAt = activity.CreatedAt
	activities = append(activities, *activity)
	return s.SaveActivities(activities)
}

func (s *Store) UpdateActivity(id string, mutate func(*models.Activity)) (*models.Activity, error) {
	activities, err := s.Activities()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == id {
			mutate(&activities[i])
			activities[i].UpdatedAt = now()
			if err := s.SaveActivities(activities); err != nil {
				return nil, err
			}
			return &activities[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteActivity(id string) error {
	activities, err := s.Activities()
	if err != nil {
		return err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return s.SaveActivities(kept)
}

// Internal activities

func (s *Store) InternalActivities() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.load(colInternalActivities, &activities)
	return activities, err
}

func (s *Store) SaveInternalActivities(activities []models.Activity) error {
	return s.save(colInternalActivities, activities)
}

func (s *Store) AddInternalActivity(activity *models.Activity) error {
	activities, err := s.InternalActivities()
	if err != nil {
		return err
	}
	activity.ID = NewID()
	activity.IsInternal = true
	activity.CreatedAt = now()
	activity.UpdatedAt = activity.CreatedAt
	activities = append(activities, *activity)
	return s.SaveInternalActivities(activities)
}

func (s *Store) UpdateInternalActivity(id string, mutate func(*models.Activity)) (*models.Activity, error) {
	activities, err := s.InternalActivities()
	if err != nil {
		return nil, err
	}
	for i := range activities {
		if activities[i].ID == id {
			mutate(&activities[i])
			activities[i].UpdatedAt = now()
			if err := s.SaveInternalActivities(activities); err != nil {
				return nil, err
			}
			return &activities[i], nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteInternalActivity(id string) error {
	activities, err := s.InternalActivities()
	if err != nil {
		return err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return s.SaveInternalActivities(kept)
}

// AllActivities merges the external and internal collections into one
// stream, backfills user names from the users collection, and sorts
// descending by date falling back to creation time.
func (s *Store) AllActivities() ([]models.Activity, error) {
	external, err := s.Activities()
	if err != nil {
		return nil, err
	}
	internal, err := s.InternalActivities()
	if err != nil {
		return nil, err
	}
	users, err := s.Users()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}

	all := make([]models.Activity, 0, len(external)+len(internal))
	for _, a := range external {
		a.IsInternal = false
		if a.UserName == "" {
			a.UserName = byID[a.UserID]
		}
		all = append(all, a)
	}
	for _, a := range internal {
		a.IsInternal = true
		if a.UserName == "" {
			a.UserName = byID[a.UserID]
		}
		all = append(all, a)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SortTime().After(all[j].SortTime())
	})
	return all, nil
}

// Users

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	err := s.load(colUsers, &users)
	return users, err
}

func (s *Store) SaveUsers(users []models.User) error {
	return s.save(colUsers, users)
}

func (s *Store) UserByID(id string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateUser(id string, mutate func(*models.User)) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			mutate(&users[i])
			users[i].UpdatedAt = now()
			if err := s.SaveUsers(users); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, nil
}

// Sales rep roster

func (s *Store) SalesReps() ([]models.SalesRep, error) {
	var reps []models.SalesRep
	err := s.load(colSalesReps, &reps)
	return reps, err
}

func (s *Store) SaveSalesReps(reps []models.SalesRep) error {
	return s.save(colSalesReps, reps)
}

// SalesRepByName matches on the rep display name; accounts and activities
// store the name, the roster is keyed by email.
func (s *Store) SalesRepByName(name string) (*models.SalesRep, error) {
	reps, err := s.SalesReps()
	if err != nil {
		return nil, err
	}
	for i := range reps {
		if reps[i].Name == name {
			return &reps[i], nil
		}
	}
	return nil, nil
}

// AddSalesRep appends a roster entry. When the email already exists the
// existing record is returned alongside ErrRepExists and nothing is written.
func (s *Store) AddSalesRep(rep *models.SalesRep) (*models.SalesRep, error) {
	reps, err := s.SalesReps()
	if err != nil {
		return nil, err
	}
	for i := range reps {
		if strings.EqualFold(reps[i].Email, rep.Email) {
			return &reps[i], ErrRepExists
		}
	}
	rep.ID = NewID()
	rep.IsActive = true
	rep.CreatedAt = now()
	reps = append(reps, *rep)
	if err := s.SaveSalesReps(reps); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Store) DeleteSalesRep(id string) error {
	reps, err := s.SalesReps()
	if err != nil {
		return err
	}
	kept := reps[:0]
	for _, r := range reps {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return s.SaveSalesReps(kept)
}

// Industries and regions

func (s *Store) Industries() ([]string, error) {
	var industries []string
	err := s.load(colIndustries, &industries)
	return industries, err
}

func (s *Store) AddIndustry(industry string) error {
	industries, err := s.Industries()
	if err != nil {
		return err
	}
	for _, i := range industries {
		if i == industry {
			return nil
		}
	}
	return s.save(colIndustries, append(industries, industry))
}

func (s *Store) DeleteIndustry(industry string) error {
	industries, err := s.Industries()
	if err != nil {
		return err
	}
	kept := industries[:0]
	for _, i := range industries {
		if i != industry {
			kept = append(kept, i)
		}
	}
	return s.save(colIndustries, kept)
}

func (s *Store) Regions() ([]string, error) {
	var regions []string
	err := s.load(colRegions, &regions)
	return regions, err
}

func (s *Store) AddRegion(region string) error {
	regions, err := s.Regions()
	if err != nil {
		return err
	}
	for _, r := range regions {
		if r == region {
			return nil
		}
	}
	return s.save(colRegions, append(regions, region))
}

func (s *Store) DeleteRegion(region string) error {
	regions, err := s.Regions()
	if err != nil {
		return err
	}
	kept := regions[:0]
	for _, r := range regions {
		if r != region {
			kept = append(kept, r)
		}
	}
	return s.save(colRegions, kept)
}

// Session

// Session returns the logged-in session, or (nil, nil) when logged out.
func (s *Store) Session() (*models.Session, error) {
	var sess models.Session
	if err := s.load(colSession, &sess); err != nil {
		return nil, err
	}
	if sess.UserID == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) SaveSession(sess *models.Session) error {
	return s.save(colSession, sess)
}

func (s *Store) ClearSession() error {
	return s.delete(colSession)
}

// CurrentUser resolves the session to a full user record, (nil, nil) when
// logged out or the user was deleted.
func (s *Store) CurrentUser() (*models.User, error) {
	sess, err := s.Session()
	if err != nil || sess == nil {
		return nil, err
	}
	return s.UserByID(sess.UserID)
}

// Sync state

func (s *Store) SyncState(service string) (*models.SyncState, error) {
	var states []models.SyncState
	if err := s.load(colSyncState, &states); err != nil {
		return nil, err
	}
	for i := range states {
		if states[i].Service == service {
			return &states[i], nil
		}
	}
	return nil, nil
}

func (s *Store) SaveSyncState(state *models.SyncState) error {
	var states []models.SyncState
	if err := s.load(colSyncState, &states); err != nil {
		return err
	}
	state.UpdatedAt = now()
	for i := range states {
		if states[i].Service == state.Service {
			states[i] = *state
			return s.save(colSyncState, states)
		}
	}
	return s.save(colSyncState, append(states, *state))
}
