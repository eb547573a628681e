package warming

import (
	"context"

	"gestorzap/models"

	"github.com/jinzhu/gorm"
)

// GormStore is the Adapter over a gorm table. Rows are always filtered by user_id.
type GormStore[T any] struct {
	DB   *gorm.DB
	Kind Kind[T]
}

func NewGormStore[T any](db *gorm.DB, kind Kind[T]) GormStore[T] {
	return GormStore[T]{DB: db, Kind: kind}
}

func NumberStore(db *gorm.DB) GormStore[models.WarmingNumber] {
	return NewGormStore[models.WarmingNumber](db, NumberKind{})
}

func GroupStore(db *gorm.DB) GormStore[models.WarmingGroup] {
	return NewGormStore[models.WarmingGroup](db, GroupKind{})
}

func (s GormStore[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []T{}
	if err := s.DB.Where("user_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// InsertMany creates every record in one transaction; any failure rolls the batch back.
func (s GormStore[T]) InsertMany(ctx context.Context, ownerID int64, records []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	saved := make([]T, 0, len(records))
	for _, r := range records {
		s.Kind.Assign(&r, ownerID)
		if err := tx.Create(&r).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		saved = append(saved, r)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return saved, nil
}

func (s GormStore[T]) DeleteOne(ctx context.Context, ownerID int64, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var zero T
	res := s.DB.Where("id = ? AND user_id = ?", id, ownerID).Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// NewNumberBook and NewGroupBook build a gorm-backed Book for the owner.
func NewNumberBook(db *gorm.DB, ownerID int64) *Book[models.WarmingNumber] {
	return NewBook[models.WarmingNumber](ownerID, NumberKind{}, NumberStore(db))
}

func NewGroupBook(db *gorm.DB, ownerID int64) *Book[models.WarmingGroup] {
	return NewBook[models.WarmingGroup](ownerID, GroupKind{}, GroupStore(db))
}
