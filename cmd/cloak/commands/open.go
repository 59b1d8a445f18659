package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cloak/internal/domain"
)

func openCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt a JSON envelope and print the plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readEnvelope(envFile)
			if err != nil {
				return err
			}
			var env domain.Envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return fmt.Errorf("parse envelope: %w", err)
			}
			msg, err := appCtx.Envelopes.Open(env)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "from=%s type=%s\n", msg.SenderDeviceID, msg.MessageType)
			_, err = os.Stdout.Write(msg.Plaintext)
			return err
		},
	}
	cmd.Flags().StringVarP(&envFile, "file", "f", "", "envelope JSON file (default stdin)")
	return cmd
}

func readEnvelope(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
