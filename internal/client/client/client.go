package client

import (
	"context"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

// CredentialSource provides the bearer credential attached to outbound calls.
// An empty string means no credential is held.
type CredentialSource interface {
	Credential() string
}

// Invalidation describes why the session was invalidated: either an envelope
// code from the session-invalidation set or the HTTP 401 status.
type Invalidation struct {
	Code       int
	HTTPStatus int
	Message    string
	Path       string
}

// InvalidationHandler reacts to a session invalidation. Handlers run
// synchronously before the failing call returns.
type InvalidationHandler func(ctx context.Context, inv Invalidation)

// Client is the transport contract of the collabdocs backend.
type Client interface {
	SetCredentialSource(src CredentialSource)
	OnSessionInvalidated(h InvalidationHandler)

	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	GetUserInfo(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, id models.ID) (*models.User, error)
	SearchUsers(ctx context.Context, keyword string) ([]models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)

	ListDocuments(ctx context.Context) ([]models.Document, error)
	GetDocument(ctx context.Context, id models.ID) (*models.Document, error)
	CreateDocument(ctx context.Context, req models.CreateDocumentRequest) (*models.Document, error)
	UpdateDocument(ctx context.Context, id models.ID, content string) (*models.Document, error)
	DeleteDocument(ctx context.Context, id models.ID) error
	ShareDocument(ctx context.Context, id, targetUserID models.ID, perm models.Permission) error
	CheckPermission(ctx context.Context, id models.ID, required models.Permission) (bool, error)
	ListMembers(ctx context.Context, documentID models.ID) ([]models.DocumentMember, error)
	UpdateMemberPermission(ctx context.Context, documentID, userID models.ID, perm models.Permission) error
	RemoveMember(ctx context.Context, documentID, userID models.ID) error

	CreateShareLink(ctx context.Context, req models.CreateShareLinkRequest) (*models.ShareLink, error)
	JoinByShareLink(ctx context.Context, token string) error
	ListShareLinks(ctx context.Context, documentID models.ID) ([]models.ShareLink, error)
	DisableShareLink(ctx context.Context, linkID models.ID) error
	GetShareLinkInfo(ctx context.Context, token string) (*models.ShareLink, error)

	ListFriends(ctx context.Context) ([]models.User, error)
	SendFriendRequest(ctx context.Context, req models.SendFriendRequest) error
	ReceivedRequests(ctx context.Context) ([]models.FriendRequest, error)
	SentRequests(ctx context.Context) ([]models.FriendRequest, error)
	PendingRequestCount(ctx context.Context) (int, error)
	AcceptFriendRequest(ctx context.Context, requestID models.ID) error
	RejectFriendRequest(ctx context.Context, requestID models.ID) error
	DeleteFriend(ctx context.Context, friendID models.ID) error
	CheckFriend(ctx context.Context, userID models.ID) (bool, error)

	ListVersions(ctx context.Context, documentID models.ID) ([]models.HistoryVersion, error)
	GetVersion(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error)
	RollbackVersion(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error)
	LatestVersion(ctx context.Context, documentID models.ID) (int, error)
}

var _ Client = (*HTTPClient)(nil)
