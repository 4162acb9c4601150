package persistence

import (
	"encoding/json"
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// settingsSchema maps one game mode's progress profile row. Level maps and
// id sets travel as JSONB.
type settingsSchema struct {
	GameMode                string    `db:"game_mode"`
	PlayerLevel             int       `db:"player_level"`
	HasFlea                 bool      `db:"has_flea"`
	TraderLevels            []byte    `db:"trader_levels"`
	StationLevels           []byte    `db:"station_levels"`
	IntelligenceCenterLevel int       `db:"intelligence_center_level"`
	HideoutManagementLevel  int       `db:"hideout_management_level"`
	MinDogtagLevel          int       `db:"min_dogtag_level"`
	HideDogtagBarters       bool      `db:"hide_dogtag_barters"`
	CompletedTasks          []byte    `db:"completed_tasks"`
	CustomPrices            []byte    `db:"custom_prices"`
	UpdatedAt               time.Time `db:"updated_at"`
}

func fromSettings(s entity.Settings) (*settingsSchema, error) {
	traderLevels, err := json.Marshal(s.TraderLevels)
	if err != nil {
		return nil, err
	}

	stationLevels, err := json.Marshal(s.StationLevels)
	if err != nil {
		return nil, err
	}

	completedTasks, err := json.Marshal(s.CompletedTasks)
	if err != nil {
		return nil, err
	}

	customPrices, err := json.Marshal(s.CustomPrices)
	if err != nil {
		return nil, err
	}

	return &settingsSchema{
		GameMode:                s.GameMode.String(),
		PlayerLevel:             s.PlayerLevel,
		HasFlea:                 s.HasFlea,
		TraderLevels:            traderLevels,
		StationLevels:           stationLevels,
		IntelligenceCenterLevel: s.IntelligenceCenterLevel,
		HideoutManagementLevel:  s.HideoutManagementLevel,
		MinDogtagLevel:          s.MinDogtagLevel,
		HideDogtagBarters:       s.HideDogtagBarters,
		CompletedTasks:          completedTasks,
		CustomPrices:            customPrices,
	}, nil
}

func (s *settingsSchema) toDomain() (entity.Settings, error) {
	settings := entity.Settings{
		GameMode:                value.GameMode(s.GameMode),
		PlayerLevel:             s.PlayerLevel,
		HasFlea:                 s.HasFlea,
		IntelligenceCenterLevel: s.IntelligenceCenterLevel,
		HideoutManagementLevel:  s.HideoutManagementLevel,
		MinDogtagLevel:          s.MinDogtagLevel,
		HideDogtagBarters:       s.HideDogtagBarters,
	}

	if err := unmarshalJSONB(s.TraderLevels, &settings.TraderLevels); err != nil {
		return settings, err
	}
	if err := unmarshalJSONB(s.StationLevels, &settings.StationLevels); err != nil {
		return settings, err
	}
	if err := unmarshalJSONB(s.CompletedTasks, &settings.CompletedTasks); err != nil {
		return settings, err
	}
	if err := unmarshalJSONB(s.CustomPrices, &settings.CustomPrices); err != nil {
		return settings, err
	}

	return settings, nil
}

func unmarshalJSONB(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

// watchSchema maps a price-watch row.
type watchSchema struct {
	ID           int64     `db:"id"`
	ItemID       string    `db:"item_id"`
	ThresholdRUB int64     `db:"threshold_rub"`
	ChatID       int64     `db:"chat_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s *watchSchema) toDomain() entity.Watch {
	return entity.Watch{
		ID:           s.ID,
		ItemID:       s.ItemID,
		ThresholdRUB: s.ThresholdRUB,
		ChatID:       s.ChatID,
		CreatedAt:    s.CreatedAt,
	}
}
