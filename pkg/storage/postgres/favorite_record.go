package postgres

import "time"

// FavoriteRecord is one favorited symbol. The unique index on Symbol keeps
// the set duplicate-free; CreatedAt drives the newest-first list order.
type FavoriteRecord struct {
	ID uint `gorm:"primaryKey"`

	Symbol string `gorm:"type:text;not null;index:idx_favorite_symbol,unique"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_favorite_created_at"`
}

// TableName overrides the default table name for GORM.
func (FavoriteRecord) TableName() string {
	return "favorite_record"
}
