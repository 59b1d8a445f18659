package keys

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cloak/internal/crypto"
	"cloak/internal/domain"
)

// DefaultRotationInterval is the validity window for freshly generated
// key material.
const DefaultRotationInterval = time.Hour

// Service manages per-device key material over a backing file store.
type Service struct {
	store    domain.KeyFileStore
	userID   string
	interval time.Duration
	log      *logrus.Entry

	mu      sync.Mutex // guards cache and locks
	storeMu sync.Mutex // serialises snapshot+persist+install across devices
	cache   map[string]domain.KeyMaterial
	locks   map[string]*sync.Mutex
}

// New loads existing key material from the store and returns the
// service. A non-positive rotation interval falls back to the default.
func New(store domain.KeyFileStore, userID string, rotationInterval time.Duration) (*Service, error) {
	if rotationInterval <= 0 {
		rotationInterval = DefaultRotationInterval
	}
	cache, err := store.LoadKeys()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		userID:   userID,
		interval: rotationInterval,
		log:      logrus.WithField("package", "keys"),
		cache:    cache,
		locks:    map[string]*sync.Mutex{},
	}, nil
}

// EnsureFresh returns current keys for the device, transparently
// regenerating them if expired. The check-and-regenerate sequence is
// serialised per device and released before the caller encrypts.
func (s *Service) EnsureFresh(deviceID string) (domain.KeyMaterial, error) {
	lock := s.deviceLock(deviceID)
	lock.Lock()
	defer lock.Unlock()

	if km, ok := s.lookup(deviceID); ok && !km.Expired(time.Now()) {
		return km, nil
	}
	return s.regenerate(deviceID)
}

// Rotate regenerates the device's keys immediately, regardless of
// expiry.
func (s *Service) Rotate(deviceID string) (domain.KeyMaterial, error) {
	lock := s.deviceLock(deviceID)
	lock.Lock()
	defer lock.Unlock()
	return s.regenerate(deviceID)
}

// RotationDue reports whether the device's keys are absent or expired.
func (s *Service) RotationDue(deviceID string) bool {
	km, ok := s.lookup(deviceID)
	return !ok || km.Expired(time.Now())
}

// Fingerprint returns the short digest of a public key.
func (s *Service) Fingerprint(publicKey []byte) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(publicKey))
}

// Count returns the number of loaded key records.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// regenerate builds a complete new record, persists it, then installs
// it in memory. The caller holds the device lock; either the full new
// record lands or the old one remains untouched.
func (s *Service) regenerate(deviceID string) (domain.KeyMaterial, error) {
	publicDER, privateDER, err := crypto.GenerateKeyPair()
	if err != nil {
		return domain.KeyMaterial{}, err
	}
	symmetric, err := crypto.NewSymmetricKey()
	if err != nil {
		return domain.KeyMaterial{}, err
	}

	now := time.Now().UTC()
	km := domain.KeyMaterial{
		KeyID:        uuid.New(),
		DeviceID:     deviceID,
		UserID:       s.userID,
		PublicKey:    publicDER,
		PrivateKey:   privateDER,
		SymmetricKey: symmetric,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.interval),
	}

	// Build a full snapshot, persist it, then install it. storeMu keeps
	// the read-modify-write of the shared map atomic: concurrent
	// rotations of different devices serialise here, so neither can
	// overwrite the other's freshly installed record. Old records handed
	// out earlier stay valid; they are not wiped in place because
	// callers may still be encrypting under them.
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	s.mu.Lock()
	snapshot := make(map[string]domain.KeyMaterial, len(s.cache)+1)
	for id, v := range s.cache {
		snapshot[id] = v
	}
	snapshot[deviceID] = km
	s.mu.Unlock()

	if err := s.store.SaveKeys(snapshot); err != nil {
		return domain.KeyMaterial{}, err
	}

	s.mu.Lock()
	s.cache = snapshot
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"device_id":   deviceID,
		"key_id":      km.KeyID,
		"fingerprint": s.Fingerprint(km.PublicKey),
		"expires_at":  km.ExpiresAt,
	}).Info("key material rotated")
	return km, nil
}

func (s *Service) lookup(deviceID string) (domain.KeyMaterial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	km, ok := s.cache[deviceID]
	return km, ok
}

func (s *Service) deviceLock(deviceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[deviceID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[deviceID] = lock
	}
	return lock
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
