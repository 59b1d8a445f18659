package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func trustedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trusted <device-id>",
		Short: "Show the trust record for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := appCtx.Trust.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\t%s\tverified %s\n",
				rec.DeviceID, rec.TrustLevel, rec.Fingerprint, rec.VerifiedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
