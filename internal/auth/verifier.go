// Package auth resolves bearer credentials into verified identities. Tokens
// are issued by the external identity provider; this package only checks them.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken means the credential was rejected.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoVerifier means no verification method is configured.
	ErrNoVerifier = errors.New("no identity verifier configured")
	// ErrProviderUnavailable means the identity provider could not answer, so
	// the token was neither accepted nor rejected.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Identity is the verified caller. Subject becomes the owner id of every
// record the caller creates.
type Identity struct {
	Subject string
	Email   string
}

// Verifier checks a raw bearer token.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(ctx context.Context, rawToken string) (*Identity, error)

func (f VerifierFunc) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	return f(ctx, rawToken)
}

// ChainVerifier tries each verifier in order and returns the first success.
type ChainVerifier struct {
	verifiers []Verifier
}

func NewChainVerifier(verifiers ...Verifier) *ChainVerifier {
	var chain []Verifier
	for _, v := range verifiers {
		if v != nil {
			chain = append(chain, v)
		}
	}
	return &ChainVerifier{verifiers: chain}
}

func (c *ChainVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	if len(c.verifiers) == 0 {
		return nil, ErrNoVerifier
	}

	var errs []error
	for _, v := range c.verifiers {
		identity, err := v.Verify(ctx, rawToken)
		if err == nil {
			return identity, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}
