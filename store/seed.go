// ABOUTME: First-run seeding of default users, roster, and picklists
// ABOUTME: Absent collections get the stock roster; existing data is untouched
package store

import (
	"ptrack/models"
)

var defaultIndustries = []string{
	"BFSI", "IT & Software", "Retail & eCommerce", "Telecom",
	"Healthcare", "Media & Entertainment", "Travel & Hospitality",
	"Automotive", "Government", "Education",
}

var defaultRegions = []string{
	"India South", "India North", "India West", "India East",
	"MENA", "EU", "NA", "SEA", "Africa", "APAC", "LATAM",
}

func (s *Store) seed() error {
	users, err := s.Users()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		// Stock logins; passwords are plaintext by design of the original
		// single-user tool, not a server credential store.
		defaults := []models.User{
			{
				ID:        NewID(),
				Username:  "admin",
				Email:     "admin@example.com",
				Password:  "admin123",
				Roles:     []string{models.RoleAdmin, models.RolePresales, "Analytics Access"},
				Regions:   []string{"India South", "India North"},
				SalesReps: []string{"John Doe", "Jane Smith"},
				IsActive:  true,
				CreatedAt: now(),
			},
			{
				ID:        NewID(),
				Username:  "user",
				Email:     "user@example.com",
				Password:  "user123",
				Roles:     []string{models.RolePresales},
				Regions:   []string{"India South"},
				SalesReps: []string{"John Doe"},
				IsActive:  true,
				CreatedAt: now(),
			},
		}
		if err := s.SaveUsers(defaults); err != nil {
			return err
		}
	}

	industries, err := s.Industries()
	if err != nil {
		return err
	}
	if len(industries) == 0 {
		if err := s.save(colIndustries, defaultIndustries); err != nil {
			return err
		}
	}

	regions, err := s.Regions()
	if err != nil {
		return err
	}
	if len(regions) == 0 {
		if err := s.save(colRegions, defaultRegions); err != nil {
			return err
		}
	}

	reps, err := s.SalesReps()
	if err != nil {
		return err
	}
	if len(reps) == 0 {
		defaults := []models.SalesRep{
			{ID: NewID(), Name: "John Doe", Email: "john.doe@example.com", Region: "India South", IsActive: true, CreatedAt: now()},
			{ID: NewID(), Name: "Jane Smith", Email: "jane.smith@example.com", Region: "India North", IsActive: true, CreatedAt: now()},
		}
		if err := s.SaveSalesReps(defaults); err != nil {
			return err
		}
	}

	// Empty arrays for the record collections so later loads see a key.
	for _, key := range []string{colAccounts, colActivities, colInternalActivities} {
		found, err := s.has(key)
		if err != nil {
			return err
		}
		if !found {
			if err := s.save(key, []struct{}{}); err != nil {
				return err
			}
		}
	}

	return nil
}
