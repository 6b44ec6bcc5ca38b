// whoami.go implements "aiinterview whoami".
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, closeDeps, err := buildDeps()
		if err != nil {
			return err
		}
		defer closeDeps()

		// Read the cache before the server check; a failed check
		// clears it.
		cached := deps.Auth.CachedUser()

		user := deps.Auth.CheckAuth(context.Background())
		if user == nil {
			if cached != nil {
				// The server no longer recognizes the session.
				fmt.Printf("Not signed in (last session: %s <%s>)\n", cached.Name, cached.Email)
				return nil
			}
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}
