package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/rest"

	"github.com/samber/lo"
)

func newRESTItem(item *entity.Item) rest.Item {
	return rest.Item{
		ID:             item.ID,
		Name:           item.Name,
		NormalizedName: item.NormalizedName,
		BasePrice:      item.BasePrice,
		LastLowPrice:   item.LastLowPrice,
	}
}

func newRESTQuote(quote entity.PriceQuote) rest.PriceQuote {
	out := rest.PriceQuote{
		Type:         quote.Type.String(),
		Vendor:       quote.Vendor,
		Price:        quote.Price,
		PriceRUB:     quote.PriceRUB,
		PricePerUnit: quote.PricePerUnit,
		Count:        quote.Count,
		Currency:     quote.Currency,
		BestPriceFee: quote.BestPriceFee,
		Usable:       quote.Usable(),
	}

	if quote.Barter != nil {
		out.Trader = quote.Barter.Trader
	}
	if quote.Craft != nil {
		out.Station = quote.Craft.Station
	}

	return out
}

func newRESTSettings(settings entity.Settings) rest.Settings {
	return rest.Settings{
		GameMode:                settings.GameMode.String(),
		PlayerLevel:             settings.PlayerLevel,
		HasFlea:                 settings.HasFlea,
		TraderLevels:            settings.TraderLevels,
		StationLevels:           settings.StationLevels,
		IntelligenceCenterLevel: settings.IntelligenceCenterLevel,
		HideoutManagementLevel:  settings.HideoutManagementLevel,
		MinDogtagLevel:          settings.MinDogtagLevel,
		HideDogtagBarters:       settings.HideDogtagBarters,
		CompletedTasks:          lo.Keys(settings.CompletedTasks),
		CustomPrices:            settings.CustomPrices,
	}
}

func newDomainSettings(mode value.GameMode, settings rest.Settings) entity.Settings {
	return entity.Settings{
		GameMode:                mode,
		PlayerLevel:             settings.PlayerLevel,
		HasFlea:                 settings.HasFlea,
		TraderLevels:            settings.TraderLevels,
		StationLevels:           settings.StationLevels,
		IntelligenceCenterLevel: settings.IntelligenceCenterLevel,
		HideoutManagementLevel:  settings.HideoutManagementLevel,
		MinDogtagLevel:          settings.MinDogtagLevel,
		HideDogtagBarters:       settings.HideDogtagBarters,
		CompletedTasks: lo.SliceToMap(settings.CompletedTasks, func(id string) (string, bool) {
			return id, true
		}),
		CustomPrices: settings.CustomPrices,
	}
}

func newRESTWatch(watch entity.Watch) rest.Watch {
	return rest.Watch{
		ID:           watch.ID,
		ItemID:       watch.ItemID,
		ThresholdRUB: watch.ThresholdRUB,
		ChatID:       watch.ChatID,
		CreatedAt:    watch.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// asFailure lifts domain error codes into transport classified errors so the
// reply helper picks the right HTTP status.
func asFailure(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Code {
	case errcodes.ItemNotFound, errcodes.SettingsNotFound, errcodes.WatchNotFound:
		return failure.NewNotFoundErrorFromError(err, failure.WithCode(appErr.Code))
	case errcodes.InvalidItemID, errcodes.InvalidGameMode, errcodes.InvalidSellPrice, errcodes.InvalidWatch:
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(appErr.Code))
	case errcodes.CatalogNotReady:
		return failure.NewUnprocessableEntityErrorFromError(err, failure.WithCode(appErr.Code))
	default:
		return err
	}
}
