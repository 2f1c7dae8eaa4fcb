package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"booknotes/internal/cache"
	"booknotes/internal/errors"
	"booknotes/internal/model"
)

// MockNoteRepository is a mock implementation of NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.NoteSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NoteSummary), args.Error(1)
}

func (m *MockNoteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Note, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

// nilCache is tolerated by the cache client: every call behaves like a miss.
var nilCache *cache.Client

func TestNoteService_Create(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Note")).Return(nil)

	service := NewNoteService(mockRepo, nilCache)

	note, err := service.Create(context.Background(), 1, "Dune", "Herbert", "desert planet")

	assert.NoError(t, err)
	assert.NotNil(t, note)
	assert.Equal(t, uint(1), note.OwnerID)
	assert.Equal(t, "Dune", note.Title)
	assert.Equal(t, "Herbert", note.Author)
	assert.Equal(t, "desert planet", note.Content)
	mockRepo.AssertExpectations(t)
}

func TestNoteService_Get(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		ownerID       uint
		setupMock     func(*MockNoteRepository)
		expectedError error
	}{
		{
			name:    "owner gets their note",
			id:      5,
			ownerID: 1,
			setupMock: func(m *MockNoteRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(5), uint(1)).Return(&model.Note{
					ID:      5,
					OwnerID: 1,
					Title:   "Dune",
				}, nil)
			},
		},
		{
			name:    "nonexistent note",
			id:      99,
			ownerID: 1,
			setupMock: func(m *MockNoteRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(99), uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNoteNotFound,
		},
		{
			name:    "note owned by someone else looks nonexistent",
			id:      5,
			ownerID: 2,
			setupMock: func(m *MockNoteRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(5), uint(2)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNoteRepository)
			tt.setupMock(mockRepo)

			service := NewNoteService(mockRepo, nilCache)
			note, err := service.Get(context.Background(), tt.id, tt.ownerID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				assert.Equal(t, tt.id, note.ID)
				assert.Equal(t, tt.ownerID, note.OwnerID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		ownerID       uint
		setupMock     func(*MockNoteRepository)
		expectedError error
	}{
		{
			name:    "owner deletes their note",
			id:      5,
			ownerID: 1,
			setupMock: func(m *MockNoteRepository) {
				m.On("DeleteByIDAndOwner", mock.Anything, uint(5), uint(1)).Return(true, nil)
			},
		},
		{
			name:    "deleting someone else's note reports not found",
			id:      5,
			ownerID: 2,
			setupMock: func(m *MockNoteRepository) {
				m.On("DeleteByIDAndOwner", mock.Anything, uint(5), uint(2)).Return(false, nil)
			},
			expectedError: errors.ErrNoteNotFound,
		},
		{
			name:    "deleting a nonexistent note reports not found",
			id:      99,
			ownerID: 1,
			setupMock: func(m *MockNoteRepository) {
				m.On("DeleteByIDAndOwner", mock.Anything, uint(99), uint(1)).Return(false, nil)
			},
			expectedError: errors.ErrNoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNoteRepository)
			tt.setupMock(mockRepo)

			service := NewNoteService(mockRepo, nilCache)
			err := service.Delete(context.Background(), tt.id, tt.ownerID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Second delete of the same id sees zero affected rows and must report not found.
func TestNoteService_DeleteTwice(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	mockRepo.On("DeleteByIDAndOwner", mock.Anything, uint(5), uint(1)).Return(true, nil).Once()
	mockRepo.On("DeleteByIDAndOwner", mock.Anything, uint(5), uint(1)).Return(false, nil).Once()

	service := NewNoteService(mockRepo, nilCache)

	assert.NoError(t, service.Delete(context.Background(), 5, 1))
	assert.Equal(t, errors.ErrNoteNotFound, service.Delete(context.Background(), 5, 1))
	mockRepo.AssertExpectations(t)
}

func TestNoteService_ListByOwner(t *testing.T) {
	mockRepo := new(MockNoteRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(1)).Return([]model.NoteSummary{
		{ID: 2, Title: "Snow Crash", Author: "Stephenson"},
		{ID: 1, Title: "Dune", Author: "Herbert"},
	}, nil)

	service := NewNoteService(mockRepo, nilCache)

	summaries, err := service.ListByOwner(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, uint(2), summaries[0].ID)
	mockRepo.AssertExpectations(t)
}
