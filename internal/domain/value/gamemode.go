package value

// GameMode selects which progress/settings profile applies. Prices and
// recipes are fetched separately per mode.
type GameMode string

const (
	GameModeRegular GameMode = "regular"
	GameModePVE     GameMode = "pve"
)

func (m GameMode) String() string {
	return string(m)
}

func (m GameMode) Valid() bool {
	return m == GameModeRegular || m == GameModePVE
}

type Language string

const LanguageEN Language = "en"

func (l Language) String() string {
	return string(l)
}
