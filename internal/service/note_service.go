package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"booknotes/internal/cache"
	"booknotes/internal/errors"
	"booknotes/internal/model"
	"booknotes/internal/repository"
)

const noteListCacheTTL = 5 * time.Minute

// NoteService handles note operations scoped to the authenticated owner.
type NoteService interface {
	Create(ctx context.Context, ownerID uint, title, author, content string) (*model.Note, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.NoteSummary, error)
	Get(ctx context.Context, id, ownerID uint) (*model.Note, error)
	Delete(ctx context.Context, id, ownerID uint) error
}

type noteService struct {
	repo  repository.NoteRepository
	cache *cache.Client
}

// NewNoteService creates a new note service.
func NewNoteService(repo repository.NoteRepository, cache *cache.Client) NoteService {
	return &noteService{
		repo:  repo,
		cache: cache,
	}
}

func (s *noteService) listCacheKey(ownerID uint) string {
	return fmt.Sprintf("notes:owner:%d", ownerID)
}

// Create inserts a note for the owner and returns the persisted row with its
// generated id and timestamp.
func (s *noteService) Create(ctx context.Context, ownerID uint, title, author, content string) (*model.Note, error) {
	note := &model.Note{
		OwnerID: ownerID,
		Title:   title,
		Author:  author,
		Content: content,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))

	return note, nil
}

// ListByOwner returns the owner's note summaries, most recent first, with caching.
func (s *noteService) ListByOwner(ctx context.Context, ownerID uint) ([]model.NoteSummary, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(ownerID)); data != nil {
		var cached []model.NoteSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	summaries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	if payload, err := json.Marshal(summaries); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(ownerID), payload, noteListCacheTTL)
	}

	return summaries, nil
}

// Get returns the note only if it belongs to the owner.
func (s *noteService) Get(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	note, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// Delete removes the note only if it belongs to the owner. Zero affected rows
// means not found, whether the note never existed, was already deleted, or
// belongs to someone else.
func (s *noteService) Delete(ctx context.Context, id, ownerID uint) error {
	affected, err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if !affected {
		return errors.ErrNoteNotFound
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))

	return nil
}
