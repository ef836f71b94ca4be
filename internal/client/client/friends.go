package client

import (
	"context"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func (c *HTTPClient) ListFriends(ctx context.Context) ([]models.User, error) {
	var friends []models.User
	if err := c.get(ctx, "/friend/list", nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (c *HTTPClient) SendFriendRequest(ctx context.Context, req models.SendFriendRequest) error {
	return c.post(ctx, "/friend/request", nil, req, nil)
}

func (c *HTTPClient) ReceivedRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	if err := c.get(ctx, "/friend/requests/received", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *HTTPClient) SentRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	if err := c.get(ctx, "/friend/requests/sent", nil, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *HTTPClient) PendingRequestCount(ctx context.Context) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/friend/requests/pending/count", nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (c *HTTPClient) AcceptFriendRequest(ctx context.Context, requestID models.ID) error {
	return c.post(ctx, "/friend/request"+segment(requestID.String())+"/accept", nil, nil, nil)
}

func (c *HTTPClient) RejectFriendRequest(ctx context.Context, requestID models.ID) error {
	return c.post(ctx, "/friend/request"+segment(requestID.String())+"/reject", nil, nil, nil)
}

func (c *HTTPClient) DeleteFriend(ctx context.Context, friendID models.ID) error {
	return c.delete(ctx, "/friend"+segment(friendID.String()))
}

func (c *HTTPClient) CheckFriend(ctx context.Context, userID models.ID) (bool, error) {
	var res struct {
		IsFriend bool `json:"isFriend"`
	}
	if err := c.get(ctx, "/friend/check"+segment(userID.String()), nil, &res); err != nil {
		return false, err
	}
	return res.IsFriend, nil
}
