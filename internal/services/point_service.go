package services

import (
	"database/sql"
	"errors"

	"ecoleta/internal/domain"
	"ecoleta/internal/repos"
)

type CreatePointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
	ItemIDs   []int64
	Image     string // stored upload filename, produced by the HTTP layer
}

type PointService struct {
	Points  *repos.PointRepo
	Items   *repos.ItemRepo
	BaseURL string
}

func NewPointService(points *repos.PointRepo, items *repos.ItemRepo, baseURL string) *PointService {
	return &PointService{Points: points, Items: items, BaseURL: baseURL}
}

// Create registers a point together with its item associations. The two
// inserts share one transaction: a point is never visible without its items.
func (s *PointService) Create(in CreatePointInput) (domain.Point, error) {
	p := domain.Point{
		Image:     in.Image,
		Name:      in.Name,
		Email:     in.Email,
		Whatsapp:  in.Whatsapp,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		City:      in.City,
		UF:        in.UF,
	}
	id, err := s.Points.CreateWithItems(p, in.ItemIDs)
	if err != nil {
		return domain.Point{}, err
	}
	p.ID = id
	return p, nil
}

func (s *PointService) Show(id int64) (domain.PointDetail, error) {
	p, err := s.Points.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PointDetail{}, domain.ErrPointNotFound
		}
		return domain.PointDetail{}, err
	}

	titles, err := s.Items.TitlesForPoint(p.ID)
	if err != nil {
		return domain.PointDetail{}, err
	}
	if titles == nil {
		titles = []domain.ItemTitle{}
	}

	return domain.PointDetail{
		Point: domain.PointView{Point: p, ImageURL: imageURL(s.BaseURL, p.Image)},
		Items: titles,
	}, nil
}

func (s *PointService) Index(city, uf string, itemIDs []int64) ([]domain.PointView, error) {
	points, err := s.Points.Filter(city, uf, itemIDs)
	if err != nil {
		return nil, err
	}
	return s.views(points), nil
}

// Recent lists the newest registered points for the browse page.
func (s *PointService) Recent(limit int) ([]domain.PointView, error) {
	points, err := s.Points.Recent(limit)
	if err != nil {
		return nil, err
	}
	return s.views(points), nil
}

func (s *PointService) views(points []domain.Point) []domain.PointView {
	out := make([]domain.PointView, 0, len(points))
	for _, p := range points {
		out = append(out, domain.PointView{Point: p, ImageURL: imageURL(s.BaseURL, p.Image)})
	}
	return out
}
