package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// AuthService implements registration, login and mock sessions. Credentials
// live in the remote document store; the resolved role always comes from the
// durable role map, never from the directory entry.
type AuthService struct {
	creds     ports.CredentialRepository // nil when the backend is unreachable
	roles     ports.RoleResolver
	store     ports.SnapshotStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(creds ports.CredentialRepository, roles ports.RoleResolver, store ports.SnapshotStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		roles:     roles,
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

// Register creates a credential, records the role mapping, and returns a
// signed token with the new principal.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string, role domain.Role) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidCredentials
	}
	if s.creds == nil {
		return nil, domain.ErrDirectoryUnavailable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	cred := &domain.Credential{
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    s.now().Unix(),
	}
	if err := s.creds.Create(ctx, cred); err != nil {
		return nil, err
	}

	s.roles.SetRole(ctx, email, role)

	now := s.now().UTC().Format(time.RFC3339)
	principal := domain.Principal{
		UID:         newUID(),
		Email:       cred.Email,
		DisplayName: displayName,
		CreatedAt:   now,
		LastSignIn:  now,
		Role:        role,
	}

	token, err := s.signToken(principal)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, Principal: principal}, nil
}

// Login verifies the credential and returns a signed token carrying the role
// currently recorded in the role map (User when no mapping exists).
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if s.creds == nil {
		return nil, domain.ErrDirectoryUnavailable
	}

	cred, err := s.creds.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	role, ok := s.roles.RoleFor(email)
	if !ok {
		role = domain.RoleUser
	}

	principal := domain.Principal{
		UID:         newUID(),
		Email:       cred.Email,
		DisplayName: cred.DisplayName,
		CreatedAt:   time.Unix(cred.CreatedAt, 0).UTC().Format(time.RFC3339),
		LastSignIn:  s.now().UTC().Format(time.RFC3339),
		Role:        role,
	}

	token, err := s.signToken(principal)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, Principal: principal}, nil
}

// CreateMockSession fabricates a principal, records its role mapping, and
// persists it under the mock-session key where it is consulted in preference
// to the real provider.
func (s *AuthService) CreateMockSession(ctx context.Context, email string, role domain.Role, displayName string) domain.Principal {
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	now := s.now().UTC().Format(time.RFC3339)
	principal := domain.Principal{
		UID:         "mock_" + newUID(),
		Email:       strings.ToLower(email),
		DisplayName: displayName,
		CreatedAt:   now,
		LastSignIn:  now,
		Role:        role,
	}

	s.roles.SetRole(ctx, email, role)
	persistSnapshot(ctx, s.store, s.log, KeyMockSession, principal)
	return principal
}

// MockSession returns the stored mock principal, re-resolving its role from
// the role map so later promotions/demotions take effect.
func (s *AuthService) MockSession(ctx context.Context) (domain.Principal, error) {
	if s.store == nil {
		return domain.Principal{}, domain.ErrNoSession
	}
	raw, err := s.store.Load(ctx, KeyMockSession)
	if err != nil {
		return domain.Principal{}, domain.ErrNoSession
	}
	var principal domain.Principal
	if err := json.Unmarshal(raw, &principal); err != nil {
		// Corrupt session payloads are discarded rather than surfaced.
		_ = s.store.Delete(ctx, KeyMockSession)
		return domain.Principal{}, domain.ErrNoSession
	}
	if role, ok := s.roles.RoleFor(principal.Email); ok {
		principal.Role = role
	}
	return principal, nil
}

// ClearMockSession removes the stored mock principal.
func (s *AuthService) ClearMockSession(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, KeyMockSession); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear mock session")
	}
}

func (s *AuthService) signToken(p domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.UID,
		"email": p.Email,
		"name":  p.DisplayName,
		"role":  string(p.Role),
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newUID returns a random 16-hex-character identifier for principals.
func newUID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf[:])
}
