package envelope

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"cloak/internal/crypto"
	"cloak/internal/domain"
	"cloak/internal/protocol/suite"
)

// DefaultMaxMessageAge is the freshness window for received envelopes.
const DefaultMaxMessageAge = 5 * time.Minute

// MaxClockSkew is how far in the future an envelope timestamp may sit
// before Open rejects it. Peers with roughly synchronised clocks stay
// inside it; a forged far-future stamp does not.
const MaxClockSkew = time.Minute

// Service seals and opens envelopes for one local device.
type Service struct {
	keys     domain.KeyService
	deviceID string
	maxAge   time.Duration
	log      *logrus.Entry
}

// New returns a codec bound to the local device. A non-positive
// maxMessageAge falls back to the default window.
func New(keys domain.KeyService, localDeviceID string, maxMessageAge time.Duration) *Service {
	if maxMessageAge <= 0 {
		maxMessageAge = DefaultMaxMessageAge
	}
	return &Service{
		keys:     keys,
		deviceID: localDeviceID,
		maxAge:   maxMessageAge,
		log:      logrus.WithField("package", "envelope"),
	}
}

// Seal encrypts plaintext at the requested level and returns a signed
// envelope addressed to the recipient. Plaintext is never logged.
func (s *Service) Seal(
	plaintext []byte,
	recipientDeviceID string,
	msgType domain.MessageType,
	level domain.EncryptionLevel,
) (domain.Envelope, error) {
	if len(plaintext) == 0 {
		return domain.Envelope{}, fmt.Errorf("%w: empty plaintext", domain.ErrCiphertextInvalid)
	}

	km, err := s.keys.EnsureFresh(s.deviceID)
	if err != nil {
		return domain.Envelope{}, err
	}
	ciphertext, err := suite.Encrypt(level, plaintext, km)
	if err != nil {
		return domain.Envelope{}, err
	}

	env := domain.Envelope{
		Ciphertext:        ciphertext,
		MessageType:       msgType,
		Level:             level,
		SenderDeviceID:    s.deviceID,
		RecipientDeviceID: recipientDeviceID,
		Timestamp:         time.Now().UTC(),
		Signature:         crypto.Sign(km.SymmetricKey, ciphertext),
		KeyFingerprint:    s.keys.Fingerprint(km.PublicKey),
	}

	s.log.WithFields(logrus.Fields{
		"recipient":    recipientDeviceID,
		"message_type": msgType.String(),
		"level":        level.String(),
		"size":         len(ciphertext),
	}).Debug("envelope sealed")
	return env, nil
}

// Open validates and decrypts a received envelope. The order is
// mandatory: freshness, then signature, then decryption. The envelope
// itself is never mutated.
func (s *Service) Open(env domain.Envelope) (domain.OpenedMessage, error) {
	if len(env.Ciphertext) == 0 || len(env.Signature) == 0 {
		return domain.OpenedMessage{}, fmt.Errorf("%w: empty envelope", domain.ErrCiphertextInvalid)
	}

	age := time.Since(env.Timestamp)
	if age > s.maxAge || age < -MaxClockSkew {
		return domain.OpenedMessage{}, fmt.Errorf(
			"%w: sealed %s ago, window %s",
			domain.ErrReplayOrExpired, age.Round(time.Second), s.maxAge,
		)
	}

	km, err := s.keys.EnsureFresh(s.deviceID)
	if err != nil {
		return domain.OpenedMessage{}, err
	}
	if !crypto.Verify(km.SymmetricKey, env.Ciphertext, env.Signature) {
		return domain.OpenedMessage{}, domain.ErrAuthenticationFailed
	}

	plaintext, err := suite.Decrypt(env.Level, env.Ciphertext, km)
	if err != nil {
		return domain.OpenedMessage{}, err
	}

	return domain.OpenedMessage{
		Plaintext:      plaintext,
		MessageType:    env.MessageType,
		SenderDeviceID: env.SenderDeviceID,
		Timestamp:      env.Timestamp,
	}, nil
}

// Compile-time assertion that Service implements domain.EnvelopeService.
var _ domain.EnvelopeService = (*Service)(nil)
