package repos

import (
	"ecoleta/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PointRepo struct{ db *sqlx.DB }

func NewPointRepo(db *sqlx.DB) *PointRepo { return &PointRepo{db: db} }

// CreateWithItems inserts the point row and one association row per listed
// item id inside a single transaction; either everything lands or nothing
// does. Duplicate ids insert duplicate rows (no dedup).
func (r *PointRepo) CreateWithItems(p domain.Point, itemIDs []int64) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO points(image, name, email, whatsapp, latitude, longitude, city, uf)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Image, p.Name, p.Email, p.Whatsapp, p.Latitude, p.Longitude, p.City, p.UF)
	if err != nil {
		return 0, err
	}
	pointID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, itemID := range itemIDs {
		if _, err := tx.Exec(`
		  INSERT INTO points_items(point_id, item_id) VALUES (?, ?)
		`, pointID, itemID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return pointID, nil
}

func (r *PointRepo) Get(id int64) (domain.Point, error) {
	var p domain.Point
	err := r.db.Get(&p, `
	  SELECT id, image, name, email, whatsapp, latitude, longitude, city, uf
	  FROM points
	  WHERE id = ?
	`, id)
	return p, err
}

// Recent returns the newest registered points.
func (r *PointRepo) Recent(limit int) ([]domain.Point, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []domain.Point
	err := r.db.Select(&out, `
	  SELECT id, image, name, email, whatsapp, latitude, longitude, city, uf
	  FROM points
	  ORDER BY id DESC
	  LIMIT ?
	`, limit)
	return out, err
}

// Filter lists points in a city/uf. With item ids it joins the association
// table and dedups, so a point matching several requested items appears once.
func (r *PointRepo) Filter(city, uf string, itemIDs []int64) ([]domain.Point, error) {
	var out []domain.Point

	if len(itemIDs) == 0 {
		err := r.db.Select(&out, `
		  SELECT id, image, name, email, whatsapp, latitude, longitude, city, uf
		  FROM points
		  WHERE city = ? AND uf = ?
		  ORDER BY id
		`, city, uf)
		return out, err
	}

	query, args, err := sqlx.In(`
	  SELECT DISTINCT points.id, points.image, points.name, points.email, points.whatsapp,
	         points.latitude, points.longitude, points.city, points.uf
	  FROM points
	  JOIN points_items ON points.id = points_items.point_id
	  WHERE points_items.item_id IN (?) AND points.city = ? AND points.uf = ?
	  ORDER BY points.id
	`, itemIDs, city, uf)
	if err != nil {
		return nil, err
	}
	err = r.db.Select(&out, r.db.Rebind(query), args...)
	return out, err
}
