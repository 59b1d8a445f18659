package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Show the local device's public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := appCtx.Keys.EnsureFresh(deviceFlag())
			if err != nil {
				return err
			}
			fmt.Println(appCtx.Keys.Fingerprint(km.PublicKey))
			return nil
		},
	}
}
