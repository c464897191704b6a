package postgres

import (
	"context"
	"time"

	"cliphub/internal/domain/entity"
	domainerrors "cliphub/internal/domain/errors"
	"cliphub/internal/domain/repository"
	"cliphub/internal/errors"
	"cliphub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// socialAccountRepository implements repository.SocialAccountRepository with GORM.
type socialAccountRepository struct {
	db *gorm.DB
}

// NewSocialAccountRepository is the constructor for socialAccountRepository.
func NewSocialAccountRepository(db *gorm.DB) repository.SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

// Upsert writes the linked account in one statement. On a conflict with an
// existing (platform, external account) row the tokens, expiry and display
// metadata are overwritten and last_sync is bumped; user_id is preserved, so
// the record keeps its original owner. Concurrent callbacks for the same
// account resolve to whichever statement ran last.
func (r *socialAccountRepository) Upsert(ctx context.Context, account *entity.SocialAccount) error {
	m := toSocialAccountModel(account)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.LastSync.IsZero() {
		m.LastSync = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "platform"},
			{Name: "external_account_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"username",
			"profile_url",
			"follower_count",
			"access_token",
			"refresh_token",
			"token_expiry",
			"last_sync",
			"updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert social account")
	}

	account.ID = m.ID
	account.LastSync = m.LastSync

	return nil
}

// FindByUserAndPlatform returns the most recently synced account the user
// holds on the platform.
func (r *socialAccountRepository) FindByUserAndPlatform(ctx context.Context, userID uuid.UUID, platform entity.Platform) (*entity.SocialAccount, error) {
	var m model.SocialAccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform.String()).
		Order("last_sync DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find social account by user and platform")
	}

	return toSocialAccountEntity(&m), nil
}

// FindByUserPlatformAccount returns one specific linked account.
func (r *socialAccountRepository) FindByUserPlatformAccount(ctx context.Context, userID uuid.UUID, platform entity.Platform, externalAccountID string) (*entity.SocialAccount, error) {
	var m model.SocialAccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND external_account_id = ?", userID, platform.String(), externalAccountID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find social account")
	}

	return toSocialAccountEntity(&m), nil
}

// ListByUserID returns every linked account the user has, newest first.
func (r *socialAccountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SocialAccount, error) {
	var models []model.SocialAccountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social accounts")
	}

	accounts := make([]*entity.SocialAccount, 0, len(models))
	for i := range models {
		accounts = append(accounts, toSocialAccountEntity(&models[i]))
	}

	return accounts, nil
}

// Delete removes the user's linked accounts on a platform. Zero rows affected
// is not an error.
func (r *socialAccountRepository) Delete(ctx context.Context, userID uuid.UUID, platform entity.Platform) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND platform = ?", userID, platform.String()).
		Delete(&model.SocialAccountModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete social account")
	}

	return nil
}

// --- Mapper functions ---

func toSocialAccountModel(account *entity.SocialAccount) *model.SocialAccountModel {
	return &model.SocialAccountModel{
		ID:                account.ID,
		UserID:            account.UserID,
		Platform:          account.Platform.String(),
		ExternalAccountID: account.ExternalAccountID,
		Username:          account.Username,
		ProfileURL:        account.ProfileURL,
		FollowerCount:     account.FollowerCount,
		AccessToken:       account.AccessToken,
		RefreshToken:      account.RefreshToken,
		TokenExpiry:       account.TokenExpiry,
		LastSync:          account.LastSync,
		CreatedAt:         account.CreatedAt,
	}
}

func toSocialAccountEntity(m *model.SocialAccountModel) *entity.SocialAccount {
	return &entity.SocialAccount{
		ID:                m.ID,
		UserID:            m.UserID,
		Platform:          entity.Platform(m.Platform),
		ExternalAccountID: m.ExternalAccountID,
		Username:          m.Username,
		ProfileURL:        m.ProfileURL,
		FollowerCount:     m.FollowerCount,
		AccessToken:       m.AccessToken,
		RefreshToken:      m.RefreshToken,
		TokenExpiry:       m.TokenExpiry,
		LastSync:          m.LastSync,
		CreatedAt:         m.CreatedAt,
	}
}
