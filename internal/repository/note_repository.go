package repository

import (
	"context"

	"gorm.io/gorm"

	"booknotes/internal/model"
)

// NoteRepository defines note persistence operations. Every read and delete
// filters on both note id and owner id so a note under a different owner is
// indistinguishable from a nonexistent one.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.NoteSummary, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) (bool, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository builds a GORM-backed repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// ListByOwner returns the owner's notes as summaries, most recent first.
func (r *noteRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.NoteSummary, error) {
	summaries := []model.NoteSummary{}
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *noteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteByIDAndOwner deletes the note if both predicates match and reports
// whether a row was affected. The affected-row count is the single source of
// truth, so concurrent deletes of the same note cannot both report success.
func (r *noteRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
