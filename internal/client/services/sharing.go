package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

var (
	ErrInvalidPermission = errors.New("invalid permission")
	ErrInvalidShareLink  = errors.New("invalid share link parameters")
)

// SharingService manages document members and share links. Nothing is cached.
type SharingService struct {
	client client.Client
}

func NewSharingService(c client.Client) *SharingService {
	return &SharingService{client: c}
}

func validPermission(p models.Permission) error {
	switch p {
	case models.PermissionRead, models.PermissionEdit, models.PermissionManage:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidPermission, int(p))
}

// ShareWith grants userID direct access to a document.
func (s *SharingService) ShareWith(ctx context.Context, documentID, userID models.ID, perm models.Permission) error {
	if err := validPermission(perm); err != nil {
		return err
	}
	return s.client.ShareDocument(ctx, documentID, userID, perm)
}

func (s *SharingService) CanAccess(ctx context.Context, documentID models.ID, required models.Permission) (bool, error) {
	if err := validPermission(required); err != nil {
		return false, err
	}
	return s.client.CheckPermission(ctx, documentID, required)
}

func (s *SharingService) Members(ctx context.Context, documentID models.ID) ([]models.DocumentMember, error) {
	return s.client.ListMembers(ctx, documentID)
}

func (s *SharingService) SetMemberPermission(ctx context.Context, documentID, userID models.ID, perm models.Permission) error {
	if err := validPermission(perm); err != nil {
		return err
	}
	return s.client.UpdateMemberPermission(ctx, documentID, userID, perm)
}

func (s *SharingService) RemoveMember(ctx context.Context, documentID, userID models.ID) error {
	return s.client.RemoveMember(ctx, documentID, userID)
}

// CreateLink creates a share link. Zero ValidDays never expires and zero
// MaxUses is unlimited; negative values are rejected locally.
func (s *SharingService) CreateLink(ctx context.Context, req models.CreateShareLinkRequest) (*models.ShareLink, error) {
	if err := validPermission(req.PermissionType); err != nil {
		return nil, err
	}
	if req.ValidDays < 0 || req.MaxUses < 0 {
		return nil, fmt.Errorf("%w: validDays=%d maxUses=%d", ErrInvalidShareLink, req.ValidDays, req.MaxUses)
	}
	return s.client.CreateShareLink(ctx, req)
}

func (s *SharingService) Links(ctx context.Context, documentID models.ID) ([]models.ShareLink, error) {
	return s.client.ListShareLinks(ctx, documentID)
}

func (s *SharingService) DisableLink(ctx context.Context, linkID models.ID) error {
	return s.client.DisableShareLink(ctx, linkID)
}

// LinkInfo does not require a session.
func (s *SharingService) LinkInfo(ctx context.Context, token string) (*models.ShareLink, error) {
	return s.client.GetShareLinkInfo(ctx, token)
}

func (s *SharingService) Join(ctx context.Context, token string) error {
	return s.client.JoinByShareLink(ctx, token)
}
