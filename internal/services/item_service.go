package services

import (
	"ecoleta/internal/domain"
	"ecoleta/internal/repos"
)

type ItemService struct {
	Items   *repos.ItemRepo
	BaseURL string
}

func NewItemService(items *repos.ItemRepo, baseURL string) *ItemService {
	return &ItemService{Items: items, BaseURL: baseURL}
}

func (s *ItemService) List() ([]domain.ItemView, error) {
	items, err := s.Items.List()
	if err != nil {
		return nil, err
	}
	out := make([]domain.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ItemView{
			ID:       it.ID,
			Title:    it.Title,
			ImageURL: imageURL(s.BaseURL, it.Image),
		})
	}
	return out, nil
}

// imageURL builds the public URL for a stored upload filename.
func imageURL(base, filename string) string {
	return base + "/uploads/" + filename
}
