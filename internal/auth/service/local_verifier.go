package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itsryu/ZeDoBambu/internal/auth/model"
	"github.com/itsryu/ZeDoBambu/internal/system/constants"
	"github.com/itsryu/ZeDoBambu/internal/system/log"
)

// LocalIdentityProvider parses ID tokens without verifying their signature.
// It exists so the server can run against the Auth emulator, whose tokens
// are unsigned. Never select this in production.
type LocalIdentityProvider struct {
	mu     sync.RWMutex
	claims map[string]jwt.MapClaims
}

// NewLocalIdentityProvider creates the emulator-mode provider.
func NewLocalIdentityProvider() *LocalIdentityProvider {

	log.GetLogger().Warn("Local token verification enabled. Tokens are NOT cryptographically verified.")
	return &LocalIdentityProvider{
		claims: make(map[string]jwt.MapClaims),
	}
}

// VerifyIDToken parses the token claims unverified and checks expiry and
// the presence of a subject.
func (p *LocalIdentityProvider) VerifyIDToken(_ context.Context, idToken string) (*model.Identity, error) {

	if strings.Count(idToken, ".") != 2 {
		return nil, errors.New("token is not a JWT")
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(idToken, claims); err != nil {
		return nil, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp != nil && exp.Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token has no subject")
	}

	p.mu.Lock()
	p.claims[sub] = claims
	p.mu.Unlock()

	identity := &model.Identity{UID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

// GetUser rebuilds an identity record from the claims of the last verified
// token for the uid. The role claim, when present, surfaces as a custom
// claim so the override precedence behaves like the real provider.
func (p *LocalIdentityProvider) GetUser(_ context.Context, uid string) (*model.IdentityRecord, error) {

	p.mu.RLock()
	claims, ok := p.claims[uid]
	p.mu.RUnlock()

	record := &model.IdentityRecord{UID: uid}
	if !ok {
		return record, nil
	}

	if email, okc := claims["email"].(string); okc {
		record.Email = email
	}
	if name, okc := claims["name"].(string); okc {
		record.DisplayName = name
	}
	if role, okc := claims[constants.RoleClaim].(string); okc && role != "" {
		record.CustomClaims = map[string]interface{}{constants.RoleClaim: role}
	}
	return record, nil
}
