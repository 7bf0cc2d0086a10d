// ABOUTME: Entry point for the ptrack presales activity tracker
// ABOUTME: Routes to MCP server, TUI, or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ptrack/cli"
	"ptrack/store"
	"ptrack/tui"
)

const version = "0.1.0"

func main() {
	// Load .env if present (Google OAuth credentials etc.)
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	storePath := flag.String("store-path", "", "Store path (default: ~/.local/share/ptrack/store)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	// Handle version flag
	if *showVersion {
		fmt.Printf("ptrack version %s\n", version)
		os.Exit(0)
	}

	// Get remaining args after flags
	args := flag.Args()

	// If no command specified, show usage
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	st, err := store.Open(getStorePath(*storePath))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	switch command {
	case "mcp":
		if err := cli.MCPCommand(st); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		if err := tui.Run(st); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "track":
		if err := cli.TrackCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "accounts":
		if err := cli.AccountsCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "report":
		if err := cli.ReportCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "admin":
		if err := cli.AdminCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "login":
		if err := cli.LoginCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "logout":
		if err := cli.LogoutCommand(st); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "whoami":
		if err := cli.WhoamiCommand(st); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "sync":
		if err := cli.SyncCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		if err := cli.VizCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "export":
		if err := cli.ExportCommand(st, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getStorePath(path string) string {
	if path != "" {
		return path
	}
	return store.DefaultPath()
}

func printUsage() {
	fmt.Printf(`ptrack v%s - Presales activity tracker

USAGE:
  ptrack [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --store-path <path>    Store path (default: ~/.local/share/ptrack/store)

COMMANDS:
  login                  Log in as a user
  logout                 Clear the current session
  whoami                 Show the logged-in user
  track                  Log and manage activities
  accounts               Account management commands
  report                 Reporting commands
  admin                  Admin commands (sales reps, industries, regions)
  sync                   Google Calendar sync commands
  viz                    Visualization commands
  export                 Export the store to SQLite
  tui                    Interactive terminal dashboard
  mcp                    Start MCP server (for Claude Desktop integration)

TRACK COMMANDS:
  ptrack track log          Log an activity
    --category <c>            internal or external (default: external)
    --type <t>                customerCall, sow, poc, rfx, pricing (external)
                              or Training, Enablement, ... (internal)
    --date <YYYY-MM-DD>       Activity date (default: today)
    --account <name>          Account name (created if new)
    --project <name>          Project name (created if new)
    --rep <name>              Sales rep name
    --industry <name>         Industry
    --products <list>         Comma-separated products
    --channels <list>         Comma-separated channels
    (plus per-type flags; see 'ptrack track log -h')

  ptrack track list         List recent activities
    --account <name>          Filter by account
    --user <username>         Filter by user
    --type <t>                Filter by activity type
    --month <YYYY-MM>         Filter by month
    --limit <n>               Max results (default: 20)

  ptrack track edit         Edit an activity (owner or admin)
    --id <id>                 Activity id (prefix accepted)
    --date <YYYY-MM-DD>       New date
    --description <text>      New description
    --topic <text>            New topic (internal)

  ptrack track delete       Delete an activity (owner or admin)
    --id <id>                 Activity id (prefix accepted)

  ptrack track status       Set a project's win/loss status
    --account <name>          Account name (required)
    --project <name>          Project name (required)
    --status <s>              active, won, or lost
    --reason <text>           Win/loss reason
    --competitors <text>      Competitors involved
    --mrr <amount>            Deal MRR
    --account-type <t>        New Logo or Existing

ACCOUNT COMMANDS:
  ptrack accounts list      List accounts
  ptrack accounts edit      Edit account metadata
    --account <name>          Account name (required)
    --rep <name>              New sales rep
    --industry <name>         New industry
  ptrack accounts merge     Merge one account into another
    --source <name>           Account to merge away (required)
    --target <name>           Surviving account (required)
    --keep-source             Resolve conflicts with source values
  ptrack accounts delete    Delete an account and its activities
    --account <name>          Account name (required)
    --confirm DELETE          Required confirmation token
    --reassign-to <name>      Move activities to another account first

REPORT COMMANDS:
  ptrack report dashboard   Pipeline and activity overview
  ptrack report monthly     Monthly activity summary
  ptrack report winloss     Won and lost projects
  ptrack report management  Filtered management report (admin only)
    --user <username>         Filter by user
    --region <region>         Filter by sales rep region
    --type <t>                Filter by activity type
    --month <YYYY-MM>         Filter by month

ADMIN COMMANDS:
  ptrack admin reps         Manage the sales rep roster
  ptrack admin industries   Manage the industry list
  ptrack admin regions      Manage the region list

SYNC COMMANDS:
  ptrack sync auth          Authorize Google Calendar access
  ptrack sync calendar      Import calendar events as activities
    --initial                 Full import (ignore saved sync token)
  ptrack sync status        Show last sync state

VIZ COMMANDS:
  ptrack viz pipeline       Render an account pipeline graph (DOT)
    --account <name>          Limit to one account
    --out <file>              Write to file instead of stdout

EXPORT:
  ptrack export sqlite      Export accounts, projects, and activities
    --out <file>              Output path (default: ptrack-export.db)
`, version)
}
