package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cloak/internal/app"
)

const configFile = "cloak.yaml"

var (
	home     string
	deviceID string
	userID   string
	appCtx   *app.App
)

// fileConfig mirrors cloak.yaml. Durations are strings in Go duration
// syntax ("1h", "5m"). Flags take precedence over the file.
type fileConfig struct {
	DeviceID         string `yaml:"device_id"`
	UserID           string `yaml:"user_id"`
	RotationInterval string `yaml:"rotation_interval"`
	MaxMessageAge    string `yaml:"max_message_age"`
}

func Execute() error {
	root := &cobra.Command{
		Use:           "cloak",
		Short:         "Multi-level end-to-end encryption with key lifecycle management",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cloak")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cloak)")
	root.PersistentFlags().StringVarP(&deviceID, "device", "d", "", "local device ID")
	root.PersistentFlags().StringVarP(&userID, "user", "u", "", "local user ID")

	root.AddCommand(
		initCmd(), fingerprintCmd(), statusCmd(), rotateCmd(),
		sealCmd(), openCmd(),
		verifyCmd(), trustedCmd(),
	)
	return root.Execute()
}

// buildConfig overlays flags on the optional cloak.yaml in home.
func buildConfig() (app.Config, error) {
	cfg := app.Config{StorageDir: home, DeviceID: deviceID, UserID: userID}

	raw, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return app.Config{}, err
	}
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return app.Config{}, fmt.Errorf("parse %s: %w", configFile, err)
		}
		if cfg.DeviceID == "" {
			cfg.DeviceID = fc.DeviceID
		}
		if cfg.UserID == "" {
			cfg.UserID = fc.UserID
		}
		if fc.RotationInterval != "" {
			if cfg.RotationInterval, err = time.ParseDuration(fc.RotationInterval); err != nil {
				return app.Config{}, fmt.Errorf("parse rotation_interval: %w", err)
			}
		}
		if fc.MaxMessageAge != "" {
			if cfg.MaxMessageAge, err = time.ParseDuration(fc.MaxMessageAge); err != nil {
				return app.Config{}, fmt.Errorf("parse max_message_age: %w", err)
			}
		}
	}

	if cfg.DeviceID == "" {
		return app.Config{}, fmt.Errorf("device ID required (-d or %s)", configFile)
	}
	return cfg, nil
}
