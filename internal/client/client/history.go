package client

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func historyPath(documentID models.ID) string {
	return "/history" + segment(documentID.String())
}

func (c *HTTPClient) ListVersions(ctx context.Context, documentID models.ID) ([]models.HistoryVersion, error) {
	var versions []models.HistoryVersion
	if err := c.get(ctx, historyPath(documentID)+"/list", nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (c *HTTPClient) GetVersion(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error) {
	var v models.HistoryVersion
	if err := c.get(ctx, historyPath(documentID)+"/version/"+strconv.Itoa(version), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) RollbackVersion(ctx context.Context, documentID models.ID, version int) (*models.HistoryVersion, error) {
	var v models.HistoryVersion
	if err := c.post(ctx, historyPath(documentID)+"/rollback/"+strconv.Itoa(version), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) LatestVersion(ctx context.Context, documentID models.ID) (int, error) {
	var v int
	if err := c.get(ctx, historyPath(documentID)+"/latest-version", nil, &v); err != nil {
		return 0, err
	}
	return v, nil
}
