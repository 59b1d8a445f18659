package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var keyFile string
	cmd := &cobra.Command{
		Use:   "verify <device-id>",
		Short: "Record a remote device's public key as verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := os.ReadFile(keyFile)
			if err != nil {
				return fmt.Errorf("read public key: %w", err)
			}
			rec, err := appCtx.Trust.VerifyDevice(args[0], pub)
			if err != nil {
				return err
			}
			fmt.Printf("Verified %s.\nFingerprint: %s\n", rec.DeviceID, rec.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyFile, "key", "k", "", "public key file (PKCS#1 DER)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
