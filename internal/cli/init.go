// init.go implements "aiinterview init" for writing the default config.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krish230803/Ai-Interview-System/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		if !initForce {
			if _, err := config.ReadConfig(dir); err == nil {
				return fmt.Errorf("config already exists in %s (use --force to overwrite)", dir)
			}
		}

		if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", dir)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
