// Package privacy provides the selective-disclosure layer around stealth
// payments: viewing keys, authenticated payload encryption, privacy
// levels, and intent identifiers.
//
// A viewing key is a symmetric 32-byte key handed to an auditor or
// indexer. Payload metadata encrypted under it can be read by the key
// holder without granting any ability to spend.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"
)

// ViewingKeySize is the size of a viewing key in bytes.
const ViewingKeySize = 32

var (
	// ErrInvalidViewingKey indicates a viewing key of the wrong size.
	ErrInvalidViewingKey = errors.New("invalid viewing key")

	// ErrInvalidNonce indicates a nonce of the wrong size.
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrDecryptionFailed indicates an authentication or decryption
	// failure; the key is wrong or the payload was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Level selects how much of a transfer is publicly visible.
type Level string

const (
	// LevelTransparent publishes all transfer data in the clear.
	LevelTransparent Level = "transparent"

	// LevelShielded hides sender, recipient, and amount.
	LevelShielded Level = "shielded"

	// LevelCompliant hides data from the public but attaches a viewing
	// key hash so designated auditors can decrypt.
	LevelCompliant Level = "compliant"
)

// Valid reports whether l is a known privacy level.
func (l Level) Valid() bool {
	switch l {
	case LevelTransparent, LevelShielded, LevelCompliant:
		return true
	}
	return false
}

// ShouldEncrypt reports whether payloads at this level are encrypted.
func (l Level) ShouldEncrypt() bool {
	return l == LevelShielded || l == LevelCompliant
}

// ShouldIncludeViewingKey reports whether the viewing key hash is
// attached for auditor access at this level.
func (l Level) ShouldIncludeViewingKey() bool {
	return l == LevelCompliant
}

// ViewingKey is a symmetric disclosure key together with its public
// hash. The hash can be published for indexing without exposing the key.
type ViewingKey struct {
	Key       []byte
	KeyHash   []byte
	CreatedAt int64
	Label     string
}

// GenerateViewingKey draws a fresh viewing key from rand.
func GenerateViewingKey(rand io.Reader, label string) (*ViewingKey, error) {
	key := make([]byte, ViewingKeySize)
	if _, err := io.ReadFull(rand, key); err != nil {
		return nil, fmt.Errorf("failed to generate viewing key: %w", err)
	}

	hash := sha256.Sum256(key)

	return &ViewingKey{
		Key:       key,
		KeyHash:   hash[:],
		CreatedAt: time.Now().UnixMilli(),
		Label:     label,
	}, nil
}

// KeyHash derives the public hash of a viewing key, for indexing and
// verification without exposing the key itself.
func KeyHash(key []byte) ([]byte, error) {
	if len(key) != ViewingKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidViewingKey, ViewingKeySize, len(key))
	}
	hash := sha256.Sum256(key)
	return hash[:], nil
}

// EncryptedPayload is an XChaCha20-Poly1305 sealed payload.
type EncryptedPayload struct {
	Ciphertext []byte
	Nonce      []byte
}

// Encrypt seals plaintext under a viewing key with XChaCha20-Poly1305,
// drawing the nonce from rand.
func Encrypt(rand io.Reader, key, plaintext []byte) (*EncryptedPayload, error) {
	if len(key) != ViewingKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidViewingKey, ViewingKeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return &EncryptedPayload{
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
		Nonce:      nonce,
	}, nil
}

// Decrypt opens a sealed payload with a viewing key. Fails if the key
// is wrong or the ciphertext was modified.
func Decrypt(key []byte, payload *EncryptedPayload) ([]byte, error) {
	if len(key) != ViewingKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidViewingKey, ViewingKeySize, len(key))
	}
	if len(payload.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidNonce, chacha20poly1305.NonceSizeX, len(payload.Nonce))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, payload.Nonce, payload.Ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// NewIntentID generates a globally unique intent identifier with the
// "sip-" prefix. IDs carry 128 bits of randomness, so collisions are
// negligible.
func NewIntentID() string {
	u := uuid.New()
	return "sip-" + hex.EncodeToString(u[:])
}
