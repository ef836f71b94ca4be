package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "collabdocs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

func putMeta(t *testing.T, db *sql.DB, k, v string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES(?, ?)`, k, []byte(v))
	require.NoError(t, err)
}

// fakeClient implements client.Client for store tests. Methods the tests do
// not exercise fall through to the embedded nil interface and panic.
type fakeClient struct {
	client.Client

	mu       sync.Mutex
	creds    client.CredentialSource
	handlers []client.InvalidationHandler

	LoginRet  *models.LoginResult
	LoginErr  error
	LastLogin models.LoginRequest

	LogoutErr   error
	LogoutCalls int

	UserInfoRet *models.User
	UserInfoErr error

	UpdateProfileRet *models.User
	UpdateProfileErr error

	UserByIDRet   map[models.ID]*models.User
	UserByIDCalls int
	SearchRet     []models.User

	ListDocumentsFn func(ctx context.Context) ([]models.Document, error)
	GetDocumentFn   func(ctx context.Context, id models.ID) (*models.Document, error)
	CreateRet       *models.Document
	CreateErr       error
	UpdateRet       *models.Document
	UpdateErr       error
	LastUpdate      string
	DeleteErr       error
	Deleted         []models.ID

	FriendsRet      []models.User
	FriendsErr      error
	FriendsCalls    int
	ReceivedRet     []models.FriendRequest
	AcceptErr       error
	Accepted        []models.ID
	RejectErr       error
	DeleteFriendErr error
	LastSent        models.SendFriendRequest

	ShareCalls []models.Permission
	LinkRet    *models.ShareLink
	LastLink   models.CreateShareLinkRequest

	RollbackRet *models.HistoryVersion
}

func (f *fakeClient) SetCredentialSource(src client.CredentialSource) { f.creds = src }

func (f *fakeClient) OnSessionInvalidated(h client.InvalidationHandler) {
	f.handlers = append(f.handlers, h)
}

// invalidate simulates the transport detecting an expired session.
func (f *fakeClient) invalidate(ctx context.Context, code int) {
	for _, h := range f.handlers {
		h(ctx, client.Invalidation{Code: code})
	}
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	return &models.User{ID: "99", Username: req.Username}, nil
}

func (f *fakeClient) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) GetUserInfo(context.Context) (*models.User, error) {
	return f.UserInfoRet, f.UserInfoErr
}

func (f *fakeClient) UpdateProfile(context.Context, models.UpdateProfileRequest) (*models.User, error) {
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) GetUserByID(_ context.Context, id models.ID) (*models.User, error) {
	f.mu.Lock()
	f.UserByIDCalls++
	f.mu.Unlock()
	u, ok := f.UserByIDRet[id]
	if !ok {
		return nil, &client.APIError{Code: 404, Message: "user not found"}
	}
	return u, nil
}

func (f *fakeClient) SearchUsers(context.Context, string) ([]models.User, error) {
	return f.SearchRet, nil
}

func (f *fakeClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return f.ListDocumentsFn(ctx)
}

func (f *fakeClient) GetDocument(ctx context.Context, id models.ID) (*models.Document, error) {
	return f.GetDocumentFn(ctx, id)
}

func (f *fakeClient) CreateDocument(context.Context, models.CreateDocumentRequest) (*models.Document, error) {
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateDocument(_ context.Context, _ models.ID, content string) (*models.Document, error) {
	f.LastUpdate = content
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteDocument(_ context.Context, id models.ID) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deleted = append(f.Deleted, id)
	return nil
}

func (f *fakeClient) ShareDocument(_ context.Context, _, _ models.ID, perm models.Permission) error {
	f.ShareCalls = append(f.ShareCalls, perm)
	return nil
}

func (f *fakeClient) CreateShareLink(_ context.Context, req models.CreateShareLinkRequest) (*models.ShareLink, error) {
	f.LastLink = req
	return f.LinkRet, nil
}

func (f *fakeClient) ListFriends(context.Context) ([]models.User, error) {
	f.FriendsCalls++
	return f.FriendsRet, f.FriendsErr
}

func (f *fakeClient) ReceivedRequests(context.Context) ([]models.FriendRequest, error) {
	return f.ReceivedRet, nil
}

func (f *fakeClient) SendFriendRequest(_ context.Context, req models.SendFriendRequest) error {
	f.LastSent = req
	return nil
}

func (f *fakeClient) AcceptFriendRequest(_ context.Context, id models.ID) error {
	if f.AcceptErr != nil {
		return f.AcceptErr
	}
	f.Accepted = append(f.Accepted, id)
	return nil
}

func (f *fakeClient) RejectFriendRequest(context.Context, models.ID) error { return f.RejectErr }

func (f *fakeClient) DeleteFriend(context.Context, models.ID) error { return f.DeleteFriendErr }

func (f *fakeClient) RollbackVersion(context.Context, models.ID, int) (*models.HistoryVersion, error) {
	return f.RollbackRet, nil
}
