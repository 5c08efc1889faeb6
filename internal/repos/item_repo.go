package repos

import (
	"ecoleta/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) List() ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `
	  SELECT id, image, title
	  FROM items
	  ORDER BY id
	`)
	return out, err
}

// TitlesForPoint returns the titles of every item category a point accepts.
func (r *ItemRepo) TitlesForPoint(pointID int64) ([]domain.ItemTitle, error) {
	var out []domain.ItemTitle
	err := r.db.Select(&out, `
	  SELECT items.title
	  FROM items
	  JOIN points_items ON items.id = points_items.item_id
	  WHERE points_items.point_id = ?
	  ORDER BY items.id
	`, pointID)
	return out, err
}
