package cli

import (
	"fmt"

	"github.com/aescanero/dago-node-spintax/internal/spintax"
	"github.com/spf13/cobra"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <seed>",
		Short: "Print the numeric hash of a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), spintax.Hash(args[0]))
			return err
		},
	}
}
