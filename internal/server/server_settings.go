package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/httpx/reply"
	"tarkov_market/pkg/httpx/req"
	"tarkov_market/pkg/rest"
)

type settingsService interface {
	SettingsFor(ctx context.Context, mode value.GameMode) (entity.Settings, error)
	UpdateSettings(ctx context.Context, settings entity.Settings) error
}

type SettingsServer struct {
	settingsService settingsService
}

func NewSettingsServer(settingsService settingsService) SettingsServer {
	return SettingsServer{
		settingsService: settingsService,
	}
}

func (s SettingsServer) getV1Settings(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := parseGameMode(r.PathValue("gameMode"))
	if err != nil {
		return err
	}

	settings, err := s.settingsService.SettingsFor(ctx, mode)
	if err != nil {
		return asFailure(fmt.Errorf("settingsService.SettingsFor: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSettings(settings))

	return nil
}

func (s SettingsServer) putV1Settings(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := parseGameMode(r.PathValue("gameMode"))
	if err != nil {
		return err
	}

	var request rest.Settings

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.settingsService.UpdateSettings(ctx, newDomainSettings(mode, request)); err != nil {
		return asFailure(fmt.Errorf("settingsService.UpdateSettings: %w", err))
	}

	reply.OK(w)

	return nil
}

func parseGameMode(raw string) (value.GameMode, error) {
	mode := value.GameMode(raw)
	if !mode.Valid() {
		return "", failure.NewInvalidArgumentError(
			"unknown game mode: "+raw,
			failure.WithCode(errcodes.InvalidGameMode),
		)
	}
	return mode, nil
}
