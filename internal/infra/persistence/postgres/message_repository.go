package postgres

import (
	"context"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// messageRepository implements repository.MessageRepository with GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.AdminMessage) error {
	messageM := &model.AdminMessageModel{
		ID:    message.ID,
		Title: message.Title,
		Body:  message.Body,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// List returns messages newest first.
func (repo *messageRepository) List(ctx context.Context) ([]*entity.AdminMessage, error) {
	var messageMs []model.AdminMessageModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&messageMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list messages")
	}

	messages := make([]*entity.AdminMessage, 0, len(messageMs))
	for _, m := range messageMs {
		messages = append(messages, &entity.AdminMessage{
			ID:        m.ID,
			Title:     m.Title,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, nil
}

// Delete removes a message.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdminMessageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}
