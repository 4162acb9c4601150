package handler

import (
	"tarkov_market/internal/domain/service/market"
	"tarkov_market/internal/worker"
)

type Handler struct {
	svc       *market.Service
	refresher *worker.CatalogRefresher
}

func New(svc *market.Service, refresher *worker.CatalogRefresher) *Handler {
	return &Handler{
		svc:       svc,
		refresher: refresher,
	}
}
