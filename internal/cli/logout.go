// logout.go implements "aiinterview logout".
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, closeDeps, err := buildDeps()
		if err != nil {
			return err
		}
		defer closeDeps()

		if err := deps.Auth.Logout(context.Background()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}
