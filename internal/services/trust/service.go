package trust

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cloak/internal/domain"
)

var errEmptyPublicKey = errors.New("empty public key")

// Service maintains trust records over a backing file store.
type Service struct {
	store domain.TrustFileStore
	keys  domain.KeyService // fingerprint computation
	log   *logrus.Entry

	mu    sync.Mutex
	cache map[string]domain.TrustedDevice
}

// New loads existing trust records and returns the service.
func New(store domain.TrustFileStore, keys domain.KeyService) (*Service, error) {
	cache, err := store.LoadTrusted()
	if err != nil {
		return nil, err
	}
	return &Service{
		store: store,
		keys:  keys,
		log:   logrus.WithField("package", "trust"),
		cache: cache,
	}, nil
}

// VerifyDevice records the device as verified under the given public
// key. Re-verifying with the same key refreshes VerifiedAt only; a new
// key replaces the record.
func (s *Service) VerifyDevice(deviceID string, publicKey []byte) (domain.TrustedDevice, error) {
	if deviceID == "" || len(publicKey) == 0 {
		return domain.TrustedDevice{}, errEmptyPublicKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.cache[deviceID]
	if ok && bytes.Equal(rec.PublicKey, publicKey) {
		rec.VerifiedAt = time.Now().UTC()
	} else {
		rec = domain.TrustedDevice{
			RecordID:    uuid.New(),
			DeviceID:    deviceID,
			PublicKey:   append([]byte(nil), publicKey...),
			Fingerprint: s.keys.Fingerprint(publicKey),
			VerifiedAt:  time.Now().UTC(),
			TrustLevel:  domain.TrustVerified,
		}
	}

	snapshot := make(map[string]domain.TrustedDevice, len(s.cache)+1)
	for id, v := range s.cache {
		snapshot[id] = v
	}
	snapshot[deviceID] = rec
	if err := s.store.SaveTrusted(snapshot); err != nil {
		return domain.TrustedDevice{}, err
	}
	s.cache = snapshot

	s.log.WithFields(logrus.Fields{
		"device_id":   deviceID,
		"fingerprint": rec.Fingerprint,
	}).Info("device verified")
	return rec, nil
}

// IsTrusted reports whether the device has a verified trust record.
func (s *Service) IsTrusted(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.cache[deviceID]
	return ok && rec.TrustLevel == domain.TrustVerified
}

// Get returns the trust record for a device.
func (s *Service) Get(deviceID string) (domain.TrustedDevice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.cache[deviceID]
	if !ok {
		return domain.TrustedDevice{}, fmt.Errorf("%w: %q", domain.ErrUnknownDevice, deviceID)
	}
	return rec, nil
}

// Count returns the number of trust records.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// Compile-time assertion that Service implements domain.TrustService.
var _ domain.TrustService = (*Service)(nil)
