// ABOUTME: Graphviz rendering of the account → project pipeline
// ABOUTME: Accounts cluster their projects; colors follow project status
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"ptrack/models"
	"ptrack/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(st *store.Store) *GraphGenerator {
	return &GraphGenerator{store: st}
}

// GeneratePipelineGraph renders the accounts and their projects as DOT.
// When accountID is non-empty only that account's subtree is drawn.
func (g *GraphGenerator) GeneratePipelineGraph(ctx context.Context, accountID string) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	accounts, err := g.store.Accounts()
	if err != nil {
		return "", fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, acct := range accounts {
		if accountID != "" && acct.ID != accountID {
			continue
		}

		acctNode, err := graph.CreateNodeByName(acct.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create account node: %w", err)
		}
		acctNode.SetShape(cgraph.BoxShape)

		for _, proj := range acct.Projects {
			projNode, err := graph.CreateNodeByName(acct.Name + "/" + proj.Name)
			if err != nil {
				return "", fmt.Errorf("failed to create project node: %w", err)
			}
			projNode.SetLabel(proj.Name)
			projNode.SetColor(statusColor(proj.Status))

			edge, err := graph.CreateEdgeByName("", acctNode, projNode)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			if proj.Status != "" {
				edge.SetLabel(proj.Status)
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

func statusColor(status string) string {
	switch status {
	case models.StatusWon:
		return "green"
	case models.StatusLost:
		return "red"
	default:
		return "blue"
	}
}
