package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [packages...]",
		Short: "Print the packages an extraction would include",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := c.app.Plan(cmd.Context(), planOptions(cmd, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for pkg := range members.All() {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", pkg.Name, pkg.RootDir)
			}
			return nil
		},
	}
	addPlanFlags(cmd)
	return cmd
}
