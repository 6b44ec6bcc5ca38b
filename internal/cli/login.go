// login.go implements "aiinterview login" for non-TUI sign-in.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the interview service",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, closeDeps, err := buildDeps()
		if err != nil {
			return err
		}
		defer closeDeps()

		email := strings.TrimSpace(loginEmail)
		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading email: %w", err)
			}
			email = strings.TrimSpace(line)
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		user, _, err := deps.Auth.Login(context.Background(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

// readPassword reads without echo when stdin is a terminal, falling
// back to a plain line read for piped input.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
}
