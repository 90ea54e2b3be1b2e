package qstash

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SignatureHeader carries the QStash request signature JWT.
const SignatureHeader = "Upstash-Signature"

// Receiver verifies inbound QStash deliveries. Signatures are JWTs signed
// with the current key; the next key is accepted during key rotation.
type Receiver struct {
	CurrentSigningKey string
	NextSigningKey    string
}

func NewReceiver(currentSigningKey, nextSigningKey string) *Receiver {
	return &Receiver{
		CurrentSigningKey: currentSigningKey,
		NextSigningKey:    nextSigningKey,
	}
}

// VerifyRequest checks the Upstash-Signature header of a delivery against
// the signing keys and the raw request body.
func (r *Receiver) VerifyRequest(req *http.Request, body []byte, destinationURL string) error {
	token := req.Header.Get(SignatureHeader)
	if token == "" {
		return errors.New("qstash: missing signature header")
	}

	err := r.verify(token, r.CurrentSigningKey, body, destinationURL)
	if err == nil {
		return nil
	}

	if r.NextSigningKey != "" {
		if nextErr := r.verify(token, r.NextSigningKey, body, destinationURL); nextErr == nil {
			return nil
		}
	}

	return err
}

// verify validates the JWT claims: issuer, destination URL (sub), expiry
// and the base64url SHA-256 digest of the body.
func (r *Receiver) verify(token, signingKey string, body []byte, destinationURL string) error {
	claims := jwt.MapClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("qstash: unexpected signing method %v", t.Header["alg"])
		}
		return []byte(signingKey), nil
	}, jwt.WithIssuer("Upstash"), jwt.WithExpirationRequired())
	if err != nil {
		return errors.Wrap(err, "qstash: parsing signature")
	}

	if !parsed.Valid {
		return errors.New("qstash: invalid signature")
	}

	if destinationURL != "" {
		subject, err := claims.GetSubject()
		if err != nil || subject != destinationURL {
			return errors.New("qstash: signature subject does not match destination URL")
		}
	}

	bodyClaim, ok := claims["body"].(string)
	if !ok {
		return errors.New("qstash: signature missing body digest")
	}

	digest := sha256.Sum256(body)
	encoded := base64.URLEncoding.EncodeToString(digest[:])
	if bodyClaim != encoded && bodyClaim != base64.RawURLEncoding.EncodeToString(digest[:]) {
		return errors.New("qstash: body digest mismatch")
	}

	return nil
}
