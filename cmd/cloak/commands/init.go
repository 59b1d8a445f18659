package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate key material for the local device and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := appCtx.Keys.EnsureFresh(deviceFlag())
			if err != nil {
				return err
			}
			fmt.Printf("Keys ready for %s.\nFingerprint: %s\nExpires: %s\n",
				km.DeviceID, appCtx.Keys.Fingerprint(km.PublicKey), km.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}

// deviceFlag returns the resolved local device ID; buildConfig already
// rejected the empty case.
func deviceFlag() string {
	if deviceID != "" {
		return deviceID
	}
	return appCtx.Status().DeviceID
}
