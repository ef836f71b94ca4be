package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
)

// DocumentStore mirrors the caller's document list and holds the document
// currently in focus.
type DocumentStore struct {
	client  client.Client
	logger  logging.Logger
	loading inflight
	docs    syncedList[models.Document]
	current focus[models.Document]
}

func NewDocumentStore(c client.Client, logger logging.Logger) *DocumentStore {
	return &DocumentStore{client: c, logger: logger}
}

func sameDocument(id models.ID) func(models.Document) bool {
	return func(d models.Document) bool { return d.ID == id }
}

// List reloads the document list. If a later List was issued and already
// applied, this response is dropped and the current list is returned.
func (s *DocumentStore) List(ctx context.Context) ([]models.Document, error) {
	defer s.loading.start()()
	gen := s.docs.issue()

	docs, err := s.client.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if !s.docs.replace(gen, docs) {
		s.logger.Debug(ctx, "dropping stale document list", "generation", gen)
	}
	return s.docs.snapshot(), nil
}

// Fetch loads one document into the focus slot.
func (s *DocumentStore) Fetch(ctx context.Context, id models.ID) (*models.Document, error) {
	defer s.loading.start()()
	gen := s.current.issue()

	doc, err := s.client.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	s.current.set(gen, *doc)
	return doc, nil
}

// Create creates a document and prepends the server's representation to the
// local list.
func (s *DocumentStore) Create(ctx context.Context, req models.CreateDocumentRequest) (*models.Document, error) {
	defer s.loading.start()()

	doc, err := s.client.CreateDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.ID == "" {
		return nil, fmt.Errorf("create document: %w: no id in response", client.ErrRequestFailed)
	}
	s.docs.prepend(*doc)
	return doc, nil
}

// Save replaces the document content and refreshes the cached copies.
func (s *DocumentStore) Save(ctx context.Context, id models.ID, content string) (*models.Document, error) {
	defer s.loading.start()()

	doc, err := s.client.UpdateDocument(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if doc.ID == "" {
		doc.ID = id
	}
	s.docs.updateFunc(sameDocument(id), *doc)
	s.current.update(sameDocument(id), *doc)
	return doc, nil
}

// Remove deletes a document. Removing an id that is not in the local list
// succeeds without changing it.
func (s *DocumentStore) Remove(ctx context.Context, id models.ID) error {
	defer s.loading.start()()

	if err := s.client.DeleteDocument(ctx, id); err != nil {
		return err
	}
	s.docs.removeFunc(sameDocument(id))
	s.current.clearIf(sameDocument(id))
	return nil
}

func (s *DocumentStore) Documents() []models.Document { return s.docs.snapshot() }

func (s *DocumentStore) Current() *models.Document { return s.current.get() }

func (s *DocumentStore) Loading() bool { return s.loading.active() }

// Reset forgets all cached state, e.g. after logout.
func (s *DocumentStore) Reset() {
	s.docs.reset()
	s.current.reset()
}
