package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// ConversationRepository implements the chat repository interface using
// GORM
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) outbound.ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create creates a new conversation
func (r *ConversationRepository) Create(ctx context.Context, c *chat.Conversation) error {
	model := ConversationToModel(c)

	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing conversation, transcript included
func (r *ConversationRepository) Update(ctx context.Context, c *chat.Conversation) error {
	model := ConversationToModel(c)

	result := r.db.WithContext(ctx).Model(&ConversationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("conversation not found")
	}

	return nil
}

// Delete deletes a conversation. Unknown ids are a no-op.
func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ConversationModel{}, "id = ?", id).Error
}

// FindByID finds a conversation by id, returning (nil, nil) when the
// id is unknown
func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*chat.Conversation, error) {
	var model ConversationModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToConversation(&model), nil
}

// FindAll returns all conversations in insertion order
func (r *ConversationRepository) FindAll(ctx context.Context) ([]*chat.Conversation, error) {
	var models []ConversationModel

	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	conversations := make([]*chat.Conversation, len(models))
	for i := range models {
		conversations[i] = ModelToConversation(&models[i])
	}
	return conversations, nil
}
