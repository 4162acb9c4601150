package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/httpx/req"
	"tarkov_market/pkg/rest"

	"github.com/samber/lo"
)

type watchService interface {
	CreateWatch(ctx context.Context, watch *entity.Watch) error
	ListWatches(ctx context.Context) ([]entity.Watch, error)
	DeleteWatch(ctx context.Context, id int64) error
}

type WatchServer struct {
	watchService watchService
}

func NewWatchServer(watchService watchService) WatchServer {
	return WatchServer{
		watchService: watchService,
	}
}

func (s WatchServer) getV1Watches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	watches, err := s.watchService.ListWatches(ctx)
	if err != nil {
		return asFailure(fmt.Errorf("watchService.ListWatches: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, lo.Map(watches, func(watch entity.Watch, _ int) rest.Watch {
		return newRESTWatch(watch)
	}))

	return nil
}

func (s WatchServer) postV1Watch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Watch

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	watch := entity.Watch{
		ItemID:       request.ItemID,
		ThresholdRUB: request.ThresholdRUB,
		ChatID:       request.ChatID,
	}

	if err := s.watchService.CreateWatch(ctx, &watch); err != nil {
		return asFailure(fmt.Errorf("watchService.CreateWatch: %w", err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTWatch(watch))

	return nil
}

func (s WatchServer) deleteV1Watch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("parse watch id: %w", err),
			failure.WithCode(errcodes.InvalidWatch),
		)
	}

	if err := s.watchService.DeleteWatch(ctx, id); err != nil {
		return asFailure(fmt.Errorf("watchService.DeleteWatch: %w", err))
	}

	reply.OK(w)

	return nil
}
