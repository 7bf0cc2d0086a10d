// ABOUTME: Account CLI commands
// ABOUTME: List, edit, merge, and delete accounts with confirmation
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"ptrack/merge"
	"ptrack/models"
	"ptrack/store"
)

// AccountsCommand routes the accounts subcommands.
func AccountsCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("accounts requires a subcommand: list, edit, merge, delete")
	}
	switch args[0] {
	case "list":
		return listAccountsCommand(st, args[1:])
	case "edit":
		return editAccountCommand(st, args[1:])
	case "merge":
		return mergeAccountsCommand(st, args[1:])
	case "delete":
		return deleteAccountCommand(st, args[1:])
	default:
		return fmt.Errorf("unknown accounts subcommand: %s", args[0])
	}
}

func listAccountsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("accounts list", flag.ExitOnError)
	fs.Parse(args)

	accounts, err := st.Accounts()
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINDUSTRY\tSALES REP\tPROJECTS\tID")
	fmt.Fprintln(w, "----\t--------\t---------\t--------\t--")
	for _, a := range accounts {
		industry := a.Industry
		if industry == "" {
			industry = "-"
		}
		rep := a.SalesRep
		if rep == "" {
			rep = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", a.Name, industry, rep, len(a.Projects), shortID(a.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d account(s)\n", len(accounts))
	return nil
}

func editAccountCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("accounts edit", flag.ExitOnError)
	name := fs.String("name", "", "Account name (required)")
	newName := fs.String("new-name", "", "Rename the account")
	rep := fs.String("rep", "", "New sales rep")
	industry := fs.String("industry", "", "New industry")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if _, err := requireUser(st); err != nil {
		return err
	}

	acct, err := st.AccountByName(*name)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("account not found: %s", *name)
	}

	if *rep != "" {
		found, err := st.SalesRepByName(*rep)
		if err != nil {
			return err
		}
		if found == nil {
			return fmt.Errorf("sales rep %q is not on the roster", *rep)
		}
	}

	updated, err := st.UpdateAccount(acct.ID, func(a *models.Account) {
		if *newName != "" {
			a.Name = *newName
		}
		if *rep != "" {
			a.SalesRep = *rep
		}
		if *industry != "" {
			a.Industry = *industry
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Account updated: %s\n", updated.Name)
	return nil
}

func mergeAccountsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("accounts merge", flag.ExitOnError)
	source := fs.String("source", "", "Account to merge away (required)")
	target := fs.String("target", "", "Account to keep (required)")
	keepSource := fs.Bool("keep-source", false, "Resolve conflicts with the source account's values")
	fs.Parse(args)

	if *source == "" || *target == "" {
		return fmt.Errorf("--source and --target are required")
	}
	if _, err := requireUser(st); err != nil {
		return err
	}

	src, err := st.AccountByName(*source)
	if err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("account not found: %s", *source)
	}
	dst, err := st.AccountByName(*target)
	if err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("account not found: %s", *target)
	}

	plan, err := merge.PlanMerge(st, src.ID, dst.ID)
	if err != nil {
		return err
	}

	if len(plan.Conflicts) > 0 {
		fmt.Println("Conflicts:")
		for _, c := range plan.Conflicts {
			fmt.Printf("  %s: %s (source) vs %s (target)\n", c.Field, c.Source, c.Target)
		}
		side := "target"
		if *keepSource {
			side = "source"
		}
		fmt.Printf("  → Keeping %s values\n", side)
	}

	resolution := merge.KeepTarget
	if *keepSource {
		resolution = merge.KeepSource
	}
	if err := plan.Apply(st, resolution); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Printf("✓ Merged %s into %s\n", src.Name, dst.Name)
	return nil
}

func deleteAccountCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("accounts delete", flag.ExitOnError)
	name := fs.String("name", "", "Account name (required)")
	confirm := fs.String("confirm", "", "Must be the literal word DELETE")
	reassign := fs.String("reassign-to", "", "Repoint activities to this account instead of deleting them")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if _, err := requireUser(st); err != nil {
		return err
	}

	acct, err := st.AccountByName(*name)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("account not found: %s", *name)
	}

	plan, err := merge.PlanDelete(st, acct.ID)
	if err != nil {
		return err
	}

	if len(plan.Activities) > 0 && *reassign == "" {
		fmt.Printf("  %d activity(ies) will be deleted with this account\n", len(plan.Activities))
		if plan.MixedReps {
			fmt.Println("  → Activities span multiple sales reps; consider --reassign-to")
		}
	}

	if err := plan.Apply(st, *confirm, *reassign); err != nil {
		return err
	}

	if *reassign != "" {
		fmt.Printf("✓ Account deleted: %s (%d activities reassigned to %s)\n",
			acct.Name, len(plan.Activities), *reassign)
	} else {
		fmt.Printf("✓ Account deleted: %s (%d activities removed)\n", acct.Name, len(plan.Activities))
	}
	return nil
}
