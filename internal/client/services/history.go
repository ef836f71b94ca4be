package services

import (
	"context"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

// HistoryService exposes the saved versions of a document.
type HistoryService struct {
	client client.Client
	docs   *DocumentStore
}

// NewHistoryService builds the service. When docs is non-nil a rollback of
// the focused document reloads it.
func NewHistoryService(c client.Client, docs *DocumentStore) *HistoryService {
	return &HistoryService{client: c, docs: docs}
}

func (h *HistoryService) Versions(ctx context.Context, documentID models.ID) ([]models.HistoryVersion, error) {
	return h.client.ListVersions(ctx, documentID)
}

func (h *HistoryService) Version(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error) {
	return h.client.GetVersion(ctx, documentID, version)
}

func (h *HistoryService) Latest(ctx context.Context, documentID models.ID) (int, error) {
	return h.client.LatestVersion(ctx, documentID)
}

func (h *HistoryService) Rollback(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error) {
	v, err := h.client.RollbackVersion(ctx, documentID, version)
	if err != nil {
		return nil, err
	}
	if h.docs == nil {
		return v, nil
	}
	if cur := h.docs.Current(); cur != nil && cur.ID == documentID {
		if _, err := h.docs.Fetch(ctx, documentID); err != nil {
			return v, err
		}
	}
	return v, nil
}
