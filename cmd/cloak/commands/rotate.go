package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Force immediate key rotation for the local device",
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := appCtx.Keys.Rotate(deviceFlag())
			if err != nil {
				return err
			}
			fmt.Printf("Rotated.\nNew fingerprint: %s\nExpires: %s\n",
				appCtx.Keys.Fingerprint(km.PublicKey), km.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
