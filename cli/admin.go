// ABOUTME: Admin CLI commands for the sales rep roster and taxonomies
// ABOUTME: All subcommands require an admin session
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"ptrack/models"
	"ptrack/store"
)

// AdminCommand routes the admin subcommands.
func AdminCommand(st *store.Store, args []string) error {
	user, err := requireUser(st)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return fmt.Errorf("admin commands require an admin session")
	}

	if len(args) == 0 {
		return fmt.Errorf("admin requires a subcommand: reps, industries, regions")
	}
	switch args[0] {
	case "reps":
		return repsCommand(st, args[1:])
	case "industries":
		return taxonomyCommand(args[1:], "industry",
			st.Industries, st.AddIndustry, st.DeleteIndustry)
	case "regions":
		return taxonomyCommand(args[1:], "region",
			st.Regions, st.AddRegion, st.DeleteRegion)
	default:
		return fmt.Errorf("unknown admin subcommand: %s", args[0])
	}
}

func repsCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("reps requires a subcommand: list, add, delete")
	}
	switch args[0] {
	case "list":
		reps, err := st.SalesReps()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEMAIL\tREGION\tACTIVE")
		fmt.Fprintln(w, "----\t-----\t------\t------")
		for _, r := range reps {
			region := r.Region
			if region == "" {
				region = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", r.Name, r.Email, region, r.IsActive)
		}
		w.Flush()
		return nil

	case "add":
		fs := flag.NewFlagSet("admin reps add", flag.ExitOnError)
		name := fs.String("name", "", "Rep name (required)")
		email := fs.String("email", "", "Rep email (required, unique)")
		region := fs.String("region", "", "Rep region")
		fs.Parse(args[1:])

		if *name == "" || *email == "" {
			return fmt.Errorf("--name and --email are required")
		}
		rep, err := st.AddSalesRep(&models.SalesRep{Name: *name, Email: *email, Region: *region})
		if errors.Is(err, store.ErrRepExists) {
			return fmt.Errorf("a rep with email %s already exists: %s", *email, rep.Name)
		}
		if err != nil {
			return err
		}
		fmt.Printf("✓ Sales rep added: %s <%s>\n", rep.Name, rep.Email)
		return nil

	case "delete":
		fs := flag.NewFlagSet("admin reps delete", flag.ExitOnError)
		name := fs.String("name", "", "Rep name (required)")
		fs.Parse(args[1:])

		if *name == "" {
			return fmt.Errorf("--name is required")
		}
		rep, err := st.SalesRepByName(*name)
		if err != nil {
			return err
		}
		if rep == nil {
			return fmt.Errorf("sales rep not found: %s", *name)
		}
		if err := st.DeleteSalesRep(rep.ID); err != nil {
			return err
		}
		fmt.Printf("✓ Sales rep removed: %s\n", rep.Name)
		return nil

	default:
		return fmt.Errorf("unknown reps subcommand: %s", args[0])
	}
}

func taxonomyCommand(args []string, kind string,
	list func() ([]string, error), add, del func(string) error) error {
	if len(args) == 0 {
		return fmt.Errorf("%s requires a subcommand: list, add, delete", kind)
	}
	switch args[0] {
	case "list":
		values, err := list()
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s add <value>", kind)
		}
		if err := add(args[1]); err != nil {
			return err
		}
		fmt.Printf("✓ Added %s: %s\n", kind, args[1])
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s delete <value>", kind)
		}
		if err := del(args[1]); err != nil {
			return err
		}
		fmt.Printf("✓ Removed %s: %s\n", kind, args[1])
		return nil
	default:
		return fmt.Errorf("unknown %s subcommand: %s", kind, args[0])
	}
}
