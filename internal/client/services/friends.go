package services

import (
	"context"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
)

// FriendStore mirrors the friend list and the incoming friend requests.
type FriendStore struct {
	client   client.Client
	logger   logging.Logger
	loading  inflight
	friends  syncedList[models.User]
	requests syncedList[models.FriendRequest]
}

func NewFriendStore(c client.Client, logger logging.Logger) *FriendStore {
	return &FriendStore{client: c, logger: logger}
}

func (s *FriendStore) List(ctx context.Context) ([]models.User, error) {
	defer s.loading.start()()
	gen := s.friends.issue()

	friends, err := s.client.ListFriends(ctx)
	if err != nil {
		return nil, err
	}
	if !s.friends.replace(gen, friends) {
		s.logger.Debug(ctx, "dropping stale friend list", "generation", gen)
	}
	return s.friends.snapshot(), nil
}

// ListRequests reloads the requests addressed to the current user.
func (s *FriendStore) ListRequests(ctx context.Context) ([]models.FriendRequest, error) {
	defer s.loading.start()()
	gen := s.requests.issue()

	reqs, err := s.client.ReceivedRequests(ctx)
	if err != nil {
		return nil, err
	}
	if !s.requests.replace(gen, reqs) {
		s.logger.Debug(ctx, "dropping stale request list", "generation", gen)
	}
	return s.requests.snapshot(), nil
}

// SentRequests is not cached.
func (s *FriendStore) SentRequests(ctx context.Context) ([]models.FriendRequest, error) {
	defer s.loading.start()()
	return s.client.SentRequests(ctx)
}

func (s *FriendStore) Send(ctx context.Context, to models.ID, message string) error {
	defer s.loading.start()()
	return s.client.SendFriendRequest(ctx, models.SendFriendRequest{ToUserID: to, Message: message})
}

// Accept accepts a request, drops it locally and reloads the friend list.
func (s *FriendStore) Accept(ctx context.Context, requestID models.ID) error {
	done := s.loading.start()
	err := s.client.AcceptFriendRequest(ctx, requestID)
	if err == nil {
		s.requests.removeFunc(sameRequest(requestID))
	}
	done()
	if err != nil {
		return err
	}
	_, err = s.List(ctx)
	return err
}

func (s *FriendStore) Reject(ctx context.Context, requestID models.ID) error {
	defer s.loading.start()()

	if err := s.client.RejectFriendRequest(ctx, requestID); err != nil {
		return err
	}
	s.requests.removeFunc(sameRequest(requestID))
	return nil
}

// Remove unfriends friendID. An id missing from the local list is a no-op
// locally.
func (s *FriendStore) Remove(ctx context.Context, friendID models.ID) error {
	defer s.loading.start()()

	if err := s.client.DeleteFriend(ctx, friendID); err != nil {
		return err
	}
	s.friends.removeFunc(func(u models.User) bool { return u.ID == friendID })
	return nil
}

func (s *FriendStore) PendingCount(ctx context.Context) (int, error) {
	defer s.loading.start()()
	return s.client.PendingRequestCount(ctx)
}

func (s *FriendStore) IsFriend(ctx context.Context, userID models.ID) (bool, error) {
	defer s.loading.start()()
	return s.client.CheckFriend(ctx, userID)
}

func (s *FriendStore) Friends() []models.User { return s.friends.snapshot() }

func (s *FriendStore) Requests() []models.FriendRequest { return s.requests.snapshot() }

func (s *FriendStore) Loading() bool { return s.loading.active() }

func (s *FriendStore) Reset() {
	s.friends.reset()
	s.requests.reset()
}

func sameRequest(id models.ID) func(models.FriendRequest) bool {
	return func(r models.FriendRequest) bool { return r.ID == id }
}
