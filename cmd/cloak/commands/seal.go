package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cloak/internal/domain"
)

func sealCmd() *cobra.Command {
	var (
		to      string
		msgType string
		level   string
	)
	cmd := &cobra.Command{
		Use:   "seal [message]",
		Short: "Encrypt a message into a JSON envelope on stdout",
		Long: "Seal encrypts the message argument (or stdin when omitted) for the " +
			"recipient device at the chosen level and prints the envelope as JSON. " +
			"Trust is advisory: sealing for an unverified recipient succeeds with a warning.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := readPayload(args)
			if err != nil {
				return err
			}
			mt, err := domain.ParseMessageType(msgType)
			if err != nil {
				return err
			}
			lv, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}

			if !appCtx.Trust.IsTrusted(to) {
				logrus.WithField("recipient", to).Warn("recipient device is not verified")
			}

			env, err := appCtx.Envelopes.Seal(plaintext, to, mt, lv)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "", "recipient device ID")
	cmd.Flags().StringVar(&msgType, "type", domain.MessageChat.String(), "message type")
	cmd.Flags().StringVarP(&level, "level", "l", domain.LevelEnhanced.String(), "encryption level")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func readPayload(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return b, nil
}
