package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/patrickmn/go-cache"
)

const (
	DefaultUserTTL      = 5 * time.Minute
	userCleanupInterval = 10 * time.Minute
)

// UserDirectory resolves other users. Lookups by id are cached for a TTL;
// search results refresh the cache.
type UserDirectory struct {
	client client.Client
	cache  *cache.Cache
}

// NewUserDirectory builds a directory. A non-positive ttl selects DefaultUserTTL.
func NewUserDirectory(c client.Client, ttl time.Duration) *UserDirectory {
	if ttl <= 0 {
		ttl = DefaultUserTTL
	}
	return &UserDirectory{client: c, cache: cache.New(ttl, userCleanupInterval)}
}

func (d *UserDirectory) Get(ctx context.Context, id models.ID) (*models.User, error) {
	if v, ok := d.cache.Get(id.String()); ok {
		u := v.(models.User)
		return &u, nil
	}
	u, err := d.client.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.cache.SetDefault(id.String(), *u)
	return u, nil
}

func (d *UserDirectory) Search(ctx context.Context, keyword string) ([]models.User, error) {
	users, err := d.client.SearchUsers(ctx, keyword)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID != "" {
			d.cache.SetDefault(u.ID.String(), u)
		}
	}
	return users, nil
}

// Purge drops every cached user.
func (d *UserDirectory) Purge() {
	d.cache.Flush()
}
