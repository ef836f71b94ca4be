package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func documentPath(id models.ID) string {
	return "/document" + segment(id.String())
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := c.get(ctx, "/document/list", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *HTTPClient) GetDocument(ctx context.Context, id models.ID) (*models.Document, error) {
	var d models.Document
	if err := c.get(ctx, documentPath(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) CreateDocument(ctx context.Context, req models.CreateDocumentRequest) (*models.Document, error) {
	var d models.Document
	if err := c.post(ctx, "/document", nil, req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDocument replaces the document content. The content travels as raw
// text, not JSON.
func (c *HTTPClient) UpdateDocument(ctx context.Context, id models.ID, content string) (*models.Document, error) {
	var d models.Document
	if err := c.put(ctx, documentPath(id), nil, TextBody(content), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id models.ID) error {
	return c.delete(ctx, documentPath(id))
}

// ShareDocument grants targetUserID direct access to the document.
func (c *HTTPClient) ShareDocument(ctx context.Context, id, targetUserID models.ID, perm models.Permission) error {
	q := url.Values{
		"targetUserId":   {targetUserID.String()},
		"permissionType": {strconv.Itoa(int(perm))},
	}
	return c.post(ctx, documentPath(id)+"/share", q, nil, nil)
}

func (c *HTTPClient) CheckPermission(ctx context.Context, id models.ID, required models.Permission) (bool, error) {
	var ok bool
	q := url.Values{"requiredPermission": {strconv.Itoa(int(required))}}
	if err := c.get(ctx, documentPath(id)+"/permission", q, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *HTTPClient) ListMembers(ctx context.Context, documentID models.ID) ([]models.DocumentMember, error) {
	var members []models.DocumentMember
	if err := c.get(ctx, documentPath(documentID)+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *HTTPClient) UpdateMemberPermission(ctx context.Context, documentID, userID models.ID, perm models.Permission) error {
	q := url.Values{"permissionType": {strconv.Itoa(int(perm))}}
	return c.put(ctx, documentPath(documentID)+"/members"+segment(userID.String()), q, nil, nil)
}

func (c *HTTPClient) RemoveMember(ctx context.Context, documentID, userID models.ID) error {
	return c.delete(ctx, documentPath(documentID)+"/members"+segment(userID.String()))
}
