package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carve/internal/app"
	"go.trai.ch/carve/internal/core/domain"
)

func (c *CLI) newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [packages...]",
		Short: "Extract packages and their local dependencies into a workspace",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			force, _ := cmd.Flags().GetBool("force")
			previous, _ := cmd.Flags().GetString("previous")

			return c.app.Extract(cmd.Context(), app.ExtractOptions{
				PlanOptions: planOptions(cmd, args),
				Out:         out,
				Force:       force,
				Previous:    previous,
			})
		},
	}
	addPlanFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Output workspace directory (default \""+domain.DefaultOutDir+"\")")
	cmd.Flags().BoolP("force", "f", false, "Remove the output directory before extracting")
	cmd.Flags().StringP("previous", "p", "", "Compare the result with an earlier extraction")
	return cmd
}
