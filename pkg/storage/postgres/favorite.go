package postgres

import (
	"context"

	"gorm.io/gorm/clause"
)

// InsertFavorite stores a favorite symbol. Inserting an already-favorited
// symbol is a no-op, keeping its original position in the order.
func (p *Client) InsertFavorite(ctx context.Context, symbol string) error {
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "symbol"},
		},
		DoNothing: true,
	}).Create(&FavoriteRecord{Symbol: symbol})

	return tx.Error
}

// DeleteFavorite removes a favorite symbol. Removing an absent symbol is a
// no-op.
func (p *Client) DeleteFavorite(ctx context.Context, symbol string) error {
	return p.DB.WithContext(ctx).
		Where("symbol = ?", symbol).
		Delete(&FavoriteRecord{}).Error
}

// ListFavorites returns all favorite symbols, newest-added first.
func (p *Client) ListFavorites(ctx context.Context) ([]string, error) {
	var records []FavoriteRecord
	err := p.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(records))
	for _, r := range records {
		symbols = append(symbols, r.Symbol)
	}
	return symbols, nil
}

// HasFavorite reports whether symbol is currently favorited.
func (p *Client) HasFavorite(ctx context.Context, symbol string) (bool, error) {
	var count int64
	err := p.DB.WithContext(ctx).
		Model(&FavoriteRecord{}).
		Where("symbol = ?", symbol).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
