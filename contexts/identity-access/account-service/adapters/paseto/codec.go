package pasetoadapter

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	domainerrors "minerva/contexts/identity-access/account-service/domain/errors"
	"minerva/contexts/identity-access/account-service/ports"
)

const accountIDClaim = "account_id"

// SessionTTL is the fixed validity window of an issued token.
const SessionTTL = 24 * time.Hour

// Codec issues and verifies v4.local session tokens with a shared symmetric
// key. Verification is pure; the caller supplies the reference time.
type Codec struct {
	key paseto.V4SymmetricKey
}

func NewCodec(secret []byte) (*Codec, error) {
	key, err := paseto.V4SymmetricKeyFromBytes(secret)
	if err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}
	return &Codec{key: key}, nil
}

// NewRandomCodec generates an ephemeral key. Development and tests only:
// tokens do not survive a restart.
func NewRandomCodec() *Codec {
	return &Codec{key: paseto.NewV4SymmetricKey()}
}

func (c *Codec) Issue(accountID string, now time.Time) (string, ports.Session, error) {
	session := ports.Session{
		AccountID: accountID,
		NotBefore: now,
		Expiry:    now.Add(SessionTTL),
	}

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(session.NotBefore)
	token.SetExpiration(session.Expiry)
	token.SetString(accountIDClaim, accountID)

	return token.V4Encrypt(c.key, nil), session, nil
}

func (c *Codec) Verify(tainted string, now time.Time) (ports.Session, error) {
	parser := paseto.NewParserWithoutExpiryCheck()
	parser.AddRule(paseto.ValidAt(now))

	token, err := parser.ParseV4Local(c.key, tainted, nil)
	if err != nil {
		return ports.Session{}, domainerrors.ErrUnauthorized
	}

	accountID, err := token.GetString(accountIDClaim)
	if err != nil || accountID == "" {
		return ports.Session{}, domainerrors.ErrUnauthorized
	}
	expiry, err := token.GetExpiration()
	if err != nil {
		return ports.Session{}, domainerrors.ErrUnauthorized
	}
	notBefore, err := token.GetNotBefore()
	if err != nil {
		return ports.Session{}, domainerrors.ErrUnauthorized
	}

	return ports.Session{
		AccountID: accountID,
		Expiry:    expiry,
		NotBefore: notBefore,
	}, nil
}
