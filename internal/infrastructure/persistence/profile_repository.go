package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vena/backend/internal/domain/identity"
	"github.com/vena/backend/internal/domain/shared"
	"github.com/vena/backend/internal/infrastructure/persistence/models"
)

// GormProfileRepository implements identity.ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new profile repository
func NewGormProfileRepository(db *gorm.DB) identity.ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByOwner returns the single business profile owned by ownerID
func (r *GormProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*identity.Profile, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrUnauthenticated
	}
	var row models.ProfileRow
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrProfileMissing
		}
		return nil, shared.NewRemoteError("find profile", err)
	}
	profile := row.ToRecord()
	return &profile, nil
}

// Create persists a new profile
func (r *GormProfileRepository) Create(ctx context.Context, profile *identity.Profile) error {
	row := models.ProfileRowFromRecord(*profile)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return shared.NewRemoteError("create profile", err)
	}
	return nil
}

// Update persists changes to an existing profile
func (r *GormProfileRepository) Update(ctx context.Context, profile *identity.Profile) error {
	row := models.ProfileRowFromRecord(*profile)
	res := r.db.WithContext(ctx).
		Model(&models.ProfileRow{}).
		Where("id = ? AND owner_id = ?", profile.ID, profile.AdminUserID).
		Omit("id", "owner_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return shared.NewRemoteError("update profile", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
