package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, fc *fakeClient) (*SessionStore, func() (string, bool), func() (string, bool)) {
	t.Helper()
	db := setupDB(t)
	s, err := NewSessionStore(context.Background(), fc, db, logging.NewNopLogger())
	require.NoError(t, err)
	return s,
		func() (string, bool) { return getMeta(t, db, KeyToken) },
		func() (string, bool) { return getMeta(t, db, KeyUserInfo) }
}

func TestSessionStore_StartsAnonymous(t *testing.T) {
	fc := &fakeClient{}
	s, _, _ := newSession(t, fc)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Profile())
	assert.Empty(t, s.Credential())
	assert.Same(t, s, fc.creds, "store must be the transport's credential source")
	assert.Len(t, fc.handlers, 1)
}

func TestSessionStore_HydratesFromStorage(t *testing.T) {
	db := setupDB(t)
	putMeta(t, db, KeyToken, "t1")
	putMeta(t, db, KeyUserInfo, `{"userId":"1","username":"a","nickname":"A","avatar":""}`)

	s, err := NewSessionStore(context.Background(), &fakeClient{}, db, logging.NewNopLogger())
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "t1", s.Credential())
	assert.Equal(t, &models.UserProfile{UserID: "1", Username: "a", Nickname: "A"}, s.Profile())
}

func TestSessionStore_CorruptProfileHydratesAsNone(t *testing.T) {
	db := setupDB(t)
	putMeta(t, db, KeyToken, "t1")
	putMeta(t, db, KeyUserInfo, `{not json`)

	s, err := NewSessionStore(context.Background(), &fakeClient{}, db, logging.NewNopLogger())
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.Profile())
}

func TestSessionStore_Login(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResult{Token: "t1", UserID: "1", Username: "a", Nickname: "A"}}
	s, token, userInfo := newSession(t, fc)

	p, err := s.Login(context.Background(), "a", "secret")
	require.NoError(t, err)

	want := &models.UserProfile{UserID: "1", Username: "a", Nickname: "A", Avatar: ""}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, models.LoginRequest{Username: "a", Password: "secret"}, fc.LastLogin)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "t1", fc.creds.Credential())

	tok, ok := token()
	require.True(t, ok)
	assert.Equal(t, "t1", tok)
	info, ok := userInfo()
	require.True(t, ok)
	assert.JSONEq(t, `{"userId":"1","username":"a","nickname":"A","avatar":""}`, info)
}

func TestSessionStore_LoginFailureLeavesStateUnchanged(t *testing.T) {
	wrong := &client.APIError{Code: 500, Message: "wrong password"}
	fc := &fakeClient{LoginErr: wrong}
	s, token, _ := newSession(t, fc)

	_, err := s.Login(context.Background(), "a", "bad")
	require.ErrorIs(t, err, wrong)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Profile())
	_, ok := token()
	assert.False(t, ok)
}

func TestSessionStore_LoginRejectsEmptyToken(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResult{UserID: "1"}}
	s, _, _ := newSession(t, fc)

	_, err := s.Login(context.Background(), "a", "p")
	require.ErrorIs(t, err, client.ErrRequestFailed)
	assert.False(t, s.IsAuthenticated())
}

func TestSessionStore_LogoutSwallowsRemoteFailure(t *testing.T) {
	fc := &fakeClient{
		LoginRet:  &models.LoginResult{Token: "t1", UserID: "1", Username: "a"},
		LogoutErr: client.ErrUnavailable,
	}
	s, token, userInfo := newSession(t, fc)
	_, err := s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, 1, fc.LogoutCalls)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Profile())
	_, ok := token()
	assert.False(t, ok)
	_, ok = userInfo()
	assert.False(t, ok)
}

func TestSessionStore_LogoutClearsStorageAfterDeadline(t *testing.T) {
	fc := &fakeClient{
		LoginRet:  &models.LoginResult{Token: "t1", UserID: "1", Username: "a"},
		LogoutErr: fmt.Errorf("%w: %w", client.ErrUnavailable, context.DeadlineExceeded),
	}
	db := setupDB(t)
	s, err := NewSessionStore(context.Background(), fc, db, logging.NewNopLogger())
	require.NoError(t, err)
	_, err = s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	require.NoError(t, s.Logout(ctx))

	assert.False(t, s.IsAuthenticated())
	_, ok := getMeta(t, db, KeyToken)
	assert.False(t, ok)
	_, ok = getMeta(t, db, KeyUserInfo)
	assert.False(t, ok)

	reloaded, err := NewSessionStore(context.Background(), &fakeClient{}, db, logging.NewNopLogger())
	require.NoError(t, err)
	assert.False(t, reloaded.IsAuthenticated())
	assert.Nil(t, reloaded.Profile())
}

func TestSessionStore_InvalidationWithCanceledContextClearsStorage(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResult{Token: "t1", UserID: "1", Username: "a"}}
	s, token, userInfo := newSession(t, fc)
	_, err := s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fc.invalidate(ctx, client.CodeTokenExpired)

	assert.False(t, s.IsAuthenticated())
	_, ok := token()
	assert.False(t, ok)
	_, ok = userInfo()
	assert.False(t, ok)
}

func TestSessionStore_InvalidationClearsEverything(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResult{Token: "t1", UserID: "1", Username: "a"}}
	s, token, userInfo := newSession(t, fc)
	_, err := s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	fc.invalidate(context.Background(), client.CodeUnauthorized)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, fc.creds.Credential())
	assert.Nil(t, s.Profile())
	_, ok := token()
	assert.False(t, ok)
	_, ok = userInfo()
	assert.False(t, ok)

	// a second invalidation is harmless
	fc.invalidate(context.Background(), client.CodeTokenExpired)
	assert.False(t, s.IsAuthenticated())
}

func TestSessionStore_RefreshProfile(t *testing.T) {
	t.Run("anonymous is a no-op", func(t *testing.T) {
		fc := &fakeClient{UserInfoErr: errors.New("must not be called")}
		s, _, _ := newSession(t, fc)

		p, err := s.RefreshProfile(context.Background())
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("overwrites profile and storage", func(t *testing.T) {
		fc := &fakeClient{
			LoginRet:    &models.LoginResult{Token: "t1", UserID: "1", Username: "a", Nickname: "A"},
			UserInfoRet: &models.User{ID: "1", Username: "a", Nickname: "Alice", Email: "a@x.io"},
		}
		s, _, userInfo := newSession(t, fc)
		_, err := s.Login(context.Background(), "a", "p")
		require.NoError(t, err)

		p, err := s.RefreshProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Nickname)
		assert.Equal(t, "Alice", s.Profile().Nickname)

		info, _ := userInfo()
		assert.Contains(t, info, `"nickname":"Alice"`)
		assert.Equal(t, "t1", s.Credential())
	})

	t.Run("failure keeps previous profile", func(t *testing.T) {
		fc := &fakeClient{
			LoginRet:    &models.LoginResult{Token: "t1", UserID: "1", Username: "a", Nickname: "A"},
			UserInfoErr: client.ErrUnavailable,
		}
		s, _, _ := newSession(t, fc)
		_, err := s.Login(context.Background(), "a", "p")
		require.NoError(t, err)

		_, err = s.RefreshProfile(context.Background())
		require.ErrorIs(t, err, client.ErrUnavailable)
		assert.Equal(t, "A", s.Profile().Nickname)
	})
}

func TestSessionStore_UpdateProfile(t *testing.T) {
	fc := &fakeClient{
		LoginRet:         &models.LoginResult{Token: "t1", UserID: "1", Username: "a", Nickname: "A"},
		UpdateProfileRet: &models.User{ID: "1", Username: "a", Nickname: "B"},
	}
	s, _, userInfo := newSession(t, fc)
	_, err := s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	p, err := s.UpdateProfile(context.Background(), models.UpdateProfileRequest{Nickname: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", p.Nickname)

	info, _ := userInfo()
	assert.Contains(t, info, `"nickname":"B"`)
}

func TestSessionStore_ProfileIsACopy(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResult{Token: "t1", UserID: "1", Nickname: "A"}}
	s, _, _ := newSession(t, fc)
	_, err := s.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	s.Profile().Nickname = "mutated"
	assert.Equal(t, "A", s.Profile().Nickname)
}

func TestSessionStore_ExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix(), "sub": "1"}).
		SignedString([]byte("server-secret"))
	require.NoError(t, err)

	fc := &fakeClient{LoginRet: &models.LoginResult{Token: signed, UserID: "1"}}
	s, _, _ := newSession(t, fc)
	assert.True(t, s.ExpiresAt().IsZero())

	_, err = s.Login(context.Background(), "a", "p")
	require.NoError(t, err)
	assert.True(t, exp.Equal(s.ExpiresAt()))

	fc.LoginRet = &models.LoginResult{Token: "opaque", UserID: "1"}
	_, err = s.Login(context.Background(), "a", "p")
	require.NoError(t, err)
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSessionStore_Register(t *testing.T) {
	fc := &fakeClient{}
	s, _, _ := newSession(t, fc)

	u, err := s.Register(context.Background(), models.RegisterRequest{Username: "bob", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.False(t, s.IsAuthenticated())
}
