// ABOUTME: MCP server subcommand
// ABOUTME: Exposes tracker operations as tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"ptrack/handlers"
	"ptrack/store"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(st *store.Store) error {
	log.Println("Starting ptrack MCP server...")

	activityHandlers := handlers.NewActivityHandlers(st)
	accountHandlers := handlers.NewAccountHandlers(st)
	reportHandlers := handlers.NewReportHandlers(st)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ptrack",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log an internal or external presales activity",
	}, activityHandlers.LogActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_activities",
		Description: "Search activities by account, user, type, or month",
	}, activityHandlers.FindActivities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_accounts",
		Description: "Search accounts and their projects by name",
	}, accountHandlers.FindAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_accounts",
		Description: "Merge one account into another, repointing its activities and deleting the source",
	}, accountHandlers.MergeAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_account",
		Description: "Delete an account and its activities; requires the confirm token DELETE and supports reassignment",
	}, accountHandlers.DeleteAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_project_status",
		Description: "Mark a project active, won, or lost with optional win/loss details",
	}, accountHandlers.UpdateProjectStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "monthly_report",
		Description: "Activity counts bucketed by month, type, and user",
	}, reportHandlers.MonthlyReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard_stats",
		Description: "Overall account, project, and activity statistics",
	}, reportHandlers.DashboardStats)

	// Run server with stdio transport
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		return err
	}
	return nil
}
