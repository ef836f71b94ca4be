package client

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.post(ctx, "/user/login", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.post(ctx, "/user/register", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/user/logout", nil, nil, nil)
}

// GetUserInfo returns the profile of the authenticated user.
func (c *HTTPClient) GetUserInfo(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/user/info", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetUserByID(ctx context.Context, id models.ID) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/user"+segment(id.String()), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) SearchUsers(ctx context.Context, keyword string) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/user/search", url.Values{"keyword": {keyword}}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var u models.User
	if err := c.put(ctx, "/user/profile", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
