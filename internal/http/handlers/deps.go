package handlers

import (
	"ecoleta/internal/config"
	"ecoleta/internal/repos"
	"ecoleta/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ItemHandler  *ItemHandler
	PointHandler *PointHandler
	PageHandler  *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	itemRepo := repos.NewItemRepo(db)
	pointRepo := repos.NewPointRepo(db)

	itemSvc := services.NewItemService(itemRepo, cfg.PublicURL)
	pointSvc := services.NewPointService(pointRepo, itemRepo, cfg.PublicURL)

	return &Deps{
		ItemHandler:  &ItemHandler{Items: itemSvc},
		PointHandler: &PointHandler{Points: pointSvc, UploadsDir: cfg.UploadsDir},
		PageHandler:  &PageHandler{Items: itemSvc, Points: pointSvc},
	}
}
