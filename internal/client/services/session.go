package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/collabdocs/internal/dbx"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys of the persisted session.
const (
	KeyToken    = "token"
	KeyUserInfo = "userInfo"
)

// SessionStore owns the credential and the authenticated user's profile.
//
// It is the credential source of the transport client and subscribes to its
// invalidation events; apart from that path only Login and Logout write the
// credential.
type SessionStore struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger

	mu         sync.RWMutex
	credential string
	profile    *models.UserProfile
}

var _ client.CredentialSource = (*SessionStore)(nil)

// NewSessionStore hydrates the session from db and wires it into c.
// A corrupt persisted profile hydrates as no profile.
func NewSessionStore(ctx context.Context, c client.Client, db *sql.DB, logger logging.Logger) (*SessionStore, error) {
	s := &SessionStore{client: c, db: db, logger: logger}

	repo := s.repo(db)
	token, _, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s.credential = string(token)

	raw, ok, err := repo.Get(ctx, KeyUserInfo)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if ok {
		var p models.UserProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			logger.Warn(ctx, "discarding corrupt stored profile", "error", err)
		} else {
			s.profile = &p
		}
	}

	c.SetCredentialSource(s)
	c.OnSessionInvalidated(s.handleInvalidation)
	return s, nil
}

func (s *SessionStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Credential implements client.CredentialSource.
func (s *SessionStore) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Profile returns a copy of the current profile, or nil.
func (s *SessionStore) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// IsAuthenticated reports whether a credential is held.
func (s *SessionStore) IsAuthenticated() bool {
	return s.Credential() != ""
}

// ExpiresAt returns the expiry claimed by the credential. The signature is
// not verified; the value is informational only. Zero means unknown.
func (s *SessionStore) ExpiresAt() time.Time {
	token := s.Credential()
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Login authenticates and installs the returned credential and profile.
// On failure the session is left unchanged.
func (s *SessionStore) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	res, err := s.client.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, fmt.Errorf("login: %w: empty token", client.ErrRequestFailed)
	}

	profile := res.Profile()
	if err := s.persist(ctx, &res.Token, profile); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.credential = res.Token
	s.profile = profile
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "user_id", profile.UserID, "username", profile.Username)
	return s.Profile(), nil
}

// Register creates an account. It does not log in.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.client.Register(ctx, req)
}

// Logout ends the session. The remote call is best effort: local state is
// cleared regardless of its outcome.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Warn(ctx, "remote logout failed", "error", err)
	}
	return s.clear(ctx)
}

// RefreshProfile reloads the profile from the server. Without a credential
// it does nothing.
func (s *SessionStore) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	if !s.IsAuthenticated() {
		return nil, nil
	}
	u, err := s.client.GetUserInfo(ctx)
	if err != nil {
		return nil, err
	}
	return s.replaceProfile(ctx, u.Profile())
}

// UpdateProfile changes profile fields on the server and stores the result.
func (s *SessionStore) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	u, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.replaceProfile(ctx, u.Profile())
}

func (s *SessionStore) replaceProfile(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error) {
	if err := s.persist(ctx, nil, p); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return s.Profile(), nil
}

// persist writes the token (when non-nil) and the profile in one transaction.
func (s *SessionStore) persist(ctx context.Context, token *string, p *models.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if token != nil {
			if err := repo.Set(ctx, KeyToken, []byte(*token)); err != nil {
				return err
			}
		}
		return repo.Set(ctx, KeyUserInfo, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// clear drops the credential and profile from memory and storage. Memory is
// cleared even when storage fails. The storage delete ignores cancellation of
// ctx: a logout whose remote call ran out of time must still leave nothing on
// disk.
func (s *SessionStore) clear(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.profile = nil
	s.mu.Unlock()

	if err := s.repo(s.db).Delete(context.WithoutCancel(ctx), KeyToken, KeyUserInfo); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) handleInvalidation(ctx context.Context, inv client.Invalidation) {
	// already cleared
	if !s.IsAuthenticated() && s.Profile() == nil {
		return
	}
	if err := s.clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear invalidated session", "error", err)
	}
	s.logger.Info(ctx, "session cleared", "code", inv.Code, "http_status", inv.HTTPStatus)
}
