package entity

import (
	"tarkov_market/internal/domain/value"
)

// Settings is one game mode's progress profile. It gates which offers,
// barters and crafts the resolver may consider.
type Settings struct {
	GameMode    value.GameMode `json:"game_mode"`
	PlayerLevel int            `json:"player_level"`
	HasFlea     bool           `json:"has_flea"`

	// TraderLevels maps trader normalized name to unlocked loyalty level.
	TraderLevels map[string]int `json:"trader_levels"`
	// StationLevels maps hideout station normalized name to built level.
	StationLevels map[string]int `json:"station_levels"`

	IntelligenceCenterLevel int `json:"intelligence_center_level"`
	HideoutManagementLevel  int `json:"hideout_management_level"`

	MinDogtagLevel    int  `json:"min_dogtag_level"`
	HideDogtagBarters bool `json:"hide_dogtag_barters"`

	// CompletedTasks is the set of finished quest ids; offers and recipes
	// behind an unfinished task unlock are hidden.
	CompletedTasks map[string]bool `json:"completed_tasks"`

	// CustomPrices overrides the observed flea price per item id.
	CustomPrices map[string]int64 `json:"custom_prices"`
}

func (s Settings) TraderLevel(trader string) int {
	if lvl, ok := s.TraderLevels[trader]; ok {
		return lvl
	}
	return 1
}

func (s Settings) StationLevel(station string) int {
	return s.StationLevels[station]
}

func (s Settings) TaskCompleted(taskID string) bool {
	return s.CompletedTasks[taskID]
}

// DefaultSettings is the max-progress profile the original application
// starts from: every trader and station fully unlocked, flea available.
func DefaultSettings(mode value.GameMode) Settings {
	return Settings{
		GameMode:    mode,
		PlayerLevel: 79,
		HasFlea:     mode != value.GameModePVE,
		TraderLevels: map[string]int{
			"prapor":      4,
			"therapist":   4,
			"fence":       1,
			"skier":       4,
			"peacekeeper": 4,
			"mechanic":    4,
			"ragman":      4,
			"jaeger":      4,
			"ref":         4,
		},
		StationLevels: map[string]int{
			"workbench":           3,
			"intelligence-center": 3,
			"lavatory":            3,
			"medstation":          3,
			"nutrition-unit":      3,
			"water-collector":     3,
			"booze-generator":     1,
			"bitcoin-farm":        3,
		},
		IntelligenceCenterLevel: 3,
		HideoutManagementLevel:  0,
		MinDogtagLevel:          1,
		CompletedTasks:          map[string]bool{},
		CustomPrices:            map[string]int64{},
	}
}
