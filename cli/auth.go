// ABOUTME: Login, logout, and whoami CLI commands
// ABOUTME: Session persists in the store; passwords read without echo
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"ptrack/models"
	"ptrack/store"
)

// LoginCommand authenticates a user and saves the session.
func LoginCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("user", "", "Username (prompted when omitted)")
	fs.Parse(args)

	name := *username
	if name == "" {
		fmt.Print("Username: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		name = strings.TrimSpace(line)
	}

	user, err := st.UserByUsername(name)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return fmt.Errorf("invalid username or password")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != user.Password {
		return fmt.Errorf("invalid username or password")
	}

	if err := st.SaveSession(newSession(user)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	role := "user"
	if user.IsAdmin() {
		role = "admin"
	}
	fmt.Printf("✓ Logged in as %s (%s)\n", user.Username, role)
	return nil
}

// newSession stamps the login time on a fresh session record.
func newSession(user *models.User) *models.Session {
	return &models.Session{
		UserID:     user.ID,
		Username:   user.Username,
		LoggedInAt: time.Now().UTC(),
	}
}

// LogoutCommand clears the stored session.
func LogoutCommand(st *store.Store) error {
	if err := st.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("✓ Logged out")
	return nil
}

// WhoamiCommand prints the current session user.
func WhoamiCommand(st *store.Store) error {
	user, err := st.CurrentUser()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Username, strings.Join(user.Roles, ", "))
	return nil
}
