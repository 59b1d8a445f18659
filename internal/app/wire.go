package app

import (
	"cloak/internal/domain"
	envelopesvc "cloak/internal/services/envelope"
	keysvc "cloak/internal/services/keys"
	trustsvc "cloak/internal/services/trust"
	"cloak/internal/store"
)

// App bundles the subsystem's boundary services for one local device.
type App struct {
	Keys      domain.KeyService
	Envelopes domain.EnvelopeService
	Trust     domain.TrustService

	deviceID string
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	keyFile, err := store.NewKeyFile(cfg.StorageDir)
	if err != nil {
		return nil, err
	}
	trustFile, err := store.NewTrustFile(cfg.StorageDir)
	if err != nil {
		return nil, err
	}

	keys, err := keysvc.New(keyFile, cfg.UserID, cfg.RotationInterval)
	if err != nil {
		return nil, err
	}
	trusts, err := trustsvc.New(trustFile, keys)
	if err != nil {
		return nil, err
	}
	envelopes := envelopesvc.New(keys, cfg.DeviceID, cfg.MaxMessageAge)

	return &App{
		Keys:      keys,
		Envelopes: envelopes,
		Trust:     trusts,
		deviceID:  cfg.DeviceID,
	}, nil
}

// Status returns the introspection snapshot for the local device.
func (a *App) Status() domain.Status {
	return domain.Status{
		DeviceID:        a.deviceID,
		KeysLoaded:      a.Keys.Count(),
		TrustedDevices:  a.Trust.Count(),
		RotationDue:     a.Keys.RotationDue(a.deviceID),
		SupportedLevels: domain.AllLevels(),
	}
}
