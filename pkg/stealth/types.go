package stealth

import "github.com/sip-protocol/sip-go/pkg/crypto/curve"

// KeyPair holds a private scalar and its serialized public point.
//
// The core never retains a KeyPair; the caller owns the private scalar and
// is responsible for bounding its lifetime once consumed.
type KeyPair struct {
	PrivateKey curve.Scalar
	PublicKey  []byte
}

// MetaAddress is a recipient's reusable published identity: a spending
// public key and an independent viewing public key, bound to the chain the
// recipient expects to be paid on.
type MetaAddress struct {
	// SpendingPubKey is the serialized spending public key. Payments land
	// on one-time addresses derived from it; only the matching spending
	// private key can spend them.
	SpendingPubKey []byte
	// ViewingPubKey is the serialized viewing public key. The sender runs
	// ECDH against it; a watch-only scanner needs only the viewing
	// private key to detect payments.
	ViewingPubKey []byte
	// Chain is the chain identifier this meta-address targets.
	Chain string
	// Label is an optional human-readable label.
	Label string
}

// Address is a one-time stealth address announcement: everything a
// scanning recipient needs to decide whether a payment is theirs.
type Address struct {
	// StealthPubKey is the one-time public key the payment is locked to.
	StealthPubKey []byte
	// EphemeralPubKey is the sender's one-time public key, published with
	// the transfer so the recipient can reconstruct the shared secret.
	EphemeralPubKey []byte
	// ViewTag is the first byte of the shared-secret hash. Scanners
	// compare it before doing any further curve work; it filters out
	// 255/256 of foreign announcements.
	ViewTag byte
	// Chain is the chain identifier the address targets.
	Chain string
}

// Recovery pairs a matched stealth address with its derived spending key.
type Recovery struct {
	StealthPubKey   []byte
	EphemeralPubKey []byte
	// PrivateKey is the one-time spending key, (spendPriv + tweak) mod q.
	PrivateKey curve.Scalar
}
