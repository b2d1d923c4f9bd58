package v1

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shiftclock.app/shiftclock/core/models"
)

const syncPageSize = 200

// SyncUsers mirrors the provider's directory into the local users table.
// Signature keys are local state and are never overwritten by a sync.
func SyncUsers(ctx context.Context, client *IdentityClient, db *gorm.DB) (int, error) {
	synced := 0
	offset := 0
	for {
		page, total, err := client.Users.List(ctx, syncPageSize, offset)
		if err != nil {
			return synced, err
		}
		if len(page) == 0 {
			return synced, nil
		}

		users := make([]models.User, len(page))
		for i, dto := range page {
			users[i] = models.User{
				ID:         dto.ID,
				FirstName:  dto.FirstName,
				Surname:    dto.Surname,
				Email:      dto.Email,
				Permission: dto.Permission,
			}
		}

		err = db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "surname", "email", "permission"}),
		}).Create(&users).Error
		if err != nil {
			return synced, err
		}

		synced += len(page)
		offset += len(page)
		if offset >= total {
			return synced, nil
		}
	}
}
