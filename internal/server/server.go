package server

// Server composes the entity specific HTTP servers into one routing unit.
type Server struct {
	MarketServer
	SettingsServer
	WatchServer
}

func NewServer(
	marketServer MarketServer,
	settingsServer SettingsServer,
	watchServer WatchServer,
) Server {
	return Server{
		MarketServer:   marketServer,
		SettingsServer: settingsServer,
		WatchServer:    watchServer,
	}
}
