// ABOUTME: Exports the store to a standalone SQLite snapshot
// ABOUTME: Flattens nested projects into their own table for SQL querying
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"ptrack/models"
	"ptrack/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS export_meta (
	run_id TEXT PRIMARY KEY,
	exported_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	industry TEXT,
	sales_rep TEXT,
	created_at TIMESTAMP,
	updated_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL REFERENCES accounts(id),
	name TEXT NOT NULL,
	sfdc_link TEXT,
	use_cases TEXT,
	products_interested TEXT,
	channels TEXT,
	status TEXT,
	win_loss_reason TEXT,
	win_loss_mrr TEXT,
	created_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	user_name TEXT,
	date TEXT,
	type TEXT,
	is_internal INTEGER NOT NULL,
	account_id TEXT,
	account_name TEXT,
	project_id TEXT,
	project_name TEXT,
	sales_rep TEXT,
	industry TEXT,
	details TEXT,
	time_spent TEXT,
	activity_name TEXT,
	topic TEXT,
	description TEXT,
	created_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activities_account ON activities(account_id);
CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
`

// ToSQLite writes a full snapshot of the store to a SQLite file at path and
// returns the export run id.
func ToSQLite(st *store.Store, path string) (string, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return "", fmt.Errorf("failed to open export database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return "", fmt.Errorf("failed to create export schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	runID := uuid.New().String()
	if _, err := tx.Exec(`INSERT INTO export_meta (run_id, exported_at) VALUES (?, ?)`,
		runID, time.Now().UTC()); err != nil {
		return "", err
	}

	accounts, err := st.Accounts()
	if err != nil {
		return "", err
	}
	for _, a := range accounts {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO accounts
			(id, name, industry, sales_rep, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, a.Industry, a.SalesRep, a.CreatedAt, a.UpdatedAt); err != nil {
			return "", fmt.Errorf("failed to export account %s: %w", a.Name, err)
		}
		for _, p := range a.Projects {
			reason, mrr := "", ""
			if p.WinLoss != nil {
				reason, mrr = p.WinLoss.Reason, p.WinLoss.MRR
			}
			if _, err := tx.Exec(`INSERT OR REPLACE INTO projects
				(id, account_id, name, sfdc_link, use_cases, products_interested,
				 channels, status, win_loss_reason, win_loss_mrr, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, a.ID, p.Name, p.SFDCLink,
				strings.Join(p.UseCases, "; "),
				strings.Join(p.ProductsInterested, "; "),
				strings.Join(p.Channels, "; "),
				p.Status, reason, mrr, p.CreatedAt); err != nil {
				return "", fmt.Errorf("failed to export project %s: %w", p.Name, err)
			}
		}
	}

	all, err := st.AllActivities()
	if err != nil {
		return "", err
	}
	for _, act := range all {
		if err := insertActivity(tx, act); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to finalize export: %w", err)
	}
	return runID, nil
}

func insertActivity(tx *sql.Tx, act models.Activity) error {
	var details []byte
	if len(act.Details) > 0 {
		var err error
		details, err = json.Marshal(act.Details)
		if err != nil {
			return err
		}
	}
	_, err := tx.Exec(`INSERT OR REPLACE INTO activities
		(id, user_id, user_name, date, type, is_internal, account_id,
		 account_name, project_id, project_name, sales_rep, industry,
		 details, time_spent, activity_name, topic, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		act.ID, act.UserID, act.UserName, act.Date, act.Type, act.IsInternal,
		act.AccountID, act.AccountName, act.ProjectID, act.ProjectName,
		act.SalesRep, act.Industry, string(details), act.TimeSpent,
		act.ActivityName, act.Topic, act.Description, act.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to export activity %s: %w", act.ID, err)
	}
	return nil
}
