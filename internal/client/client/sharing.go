package client

import (
	"context"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func (c *HTTPClient) CreateShareLink(ctx context.Context, req models.CreateShareLinkRequest) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := c.post(ctx, "/share/link", nil, req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// JoinByShareLink redeems a share token for the current user.
func (c *HTTPClient) JoinByShareLink(ctx context.Context, token string) error {
	return c.post(ctx, "/share/join"+segment(token), nil, nil, nil)
}

func (c *HTTPClient) ListShareLinks(ctx context.Context, documentID models.ID) ([]models.ShareLink, error) {
	var links []models.ShareLink
	if err := c.get(ctx, "/share/links"+segment(documentID.String()), nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *HTTPClient) DisableShareLink(ctx context.Context, linkID models.ID) error {
	return c.delete(ctx, "/share/link"+segment(linkID.String()))
}

// GetShareLinkInfo looks a token up without requiring a session.
func (c *HTTPClient) GetShareLinkInfo(ctx context.Context, token string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := c.get(ctx, "/share/info"+segment(token), nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}
