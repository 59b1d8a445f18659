package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show key, trust and rotation status as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := json.MarshalIndent(appCtx.Status(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
}
