package repositories

import (
	"errors"
	"fmt"
	"time"

	"furniro/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMStateRepository is a GORM implementation of StateRepository.
type GORMStateRepository struct {
	db *gorm.DB
}

// NewGORMStateRepository creates a new instance of GORMStateRepository.
func NewGORMStateRepository(db *gorm.DB) *GORMStateRepository {
	return &GORMStateRepository{db: db}
}

// Load reads the blob stored for clientID under namespace.
func (r *GORMStateRepository) Load(clientID, namespace string) ([]byte, error) {
	var state models.ClientState
	err := r.db.First(&state, "client_id = ? AND namespace = ?", clientID, namespace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s of client %s: %w", namespace, clientID, err)
	}
	return state.Data, nil
}

// Save upserts the blob for clientID under namespace.
func (r *GORMStateRepository) Save(clientID, namespace string, data []byte) error {
	state := models.ClientState{
		ClientID:  clientID,
		Namespace: namespace,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return fmt.Errorf("failed to save %s of client %s: %w", namespace, clientID, err)
	}
	return nil
}

// Delete removes every namespace stored for clientID.
func (r *GORMStateRepository) Delete(clientID string) error {
	if err := r.db.Where("client_id = ?", clientID).Delete(&models.ClientState{}).Error; err != nil {
		return fmt.Errorf("failed to delete state of client %s: %w", clientID, err)
	}
	return nil
}
