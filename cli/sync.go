// ABOUTME: Calendar sync CLI commands
// ABOUTME: OAuth authorization flow and calendar import trigger
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"ptrack/store"
	"ptrack/sync"
)

// SyncCommand routes the sync subcommands.
func SyncCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sync requires a subcommand: auth, calendar, status")
	}
	switch args[0] {
	case "auth":
		return syncAuthCommand()
	case "calendar":
		return syncCalendarCommand(st, args[1:])
	case "status":
		return syncStatusCommand(st)
	default:
		return fmt.Errorf("unknown sync subcommand: %s", args[0])
	}
}

func syncAuthCommand() error {
	config, err := sync.GetConfig()
	if err != nil {
		return err
	}

	url := config.AuthCodeURL("state")
	fmt.Println("Open this URL in your browser and authorize access:")
	fmt.Printf("\n  %s\n\n", url)
	fmt.Print("Paste the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return fmt.Errorf("authorization code is required")
	}

	token, err := config.Exchange(context.Background(), code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := sync.SaveToken(token); err != nil {
		return err
	}

	fmt.Printf("✓ Authorized. Token saved to %s\n", sync.TokenPath())
	return nil
}

func syncCalendarCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("sync calendar", flag.ExitOnError)
	initial := fs.Bool("initial", false, "Force a full sync of the last 6 months")
	fs.Parse(args)

	user, err := requireUser(st)
	if err != nil {
		return err
	}

	token, err := sync.LoadToken()
	if err != nil {
		return fmt.Errorf("no calendar authorization found: run 'ptrack sync auth' first (%w)", err)
	}

	ctx := context.Background()
	client, err := sync.NewCalendarClient(ctx, token)
	if err != nil {
		return err
	}

	return sync.ImportCalendar(st, client, user, *initial)
}

func syncStatusCommand(st *store.Store) error {
	state, err := st.SyncState("calendar")
	if err != nil {
		return err
	}
	if state == nil {
		fmt.Println("calendar: never synced")
		return nil
	}

	fmt.Printf("calendar: %s", state.Status)
	if state.LastSyncTime != nil {
		fmt.Printf(" (last sync %s)", state.LastSyncTime.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	if state.ErrorMessage != "" {
		fmt.Printf("  last error: %s\n", state.ErrorMessage)
	}
	return nil
}
