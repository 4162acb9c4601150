package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	ItemNotFound     failure.ErrorCode = "ItemNotFound"
	InvalidItemID    failure.ErrorCode = "InvalidItemID"
	InvalidGameMode  failure.ErrorCode = "InvalidGameMode"
	InvalidSellPrice failure.ErrorCode = "InvalidSellPrice"
	SettingsNotFound failure.ErrorCode = "SettingsNotFound"
	WatchNotFound    failure.ErrorCode = "WatchNotFound"
	InvalidWatch     failure.ErrorCode = "InvalidWatch"
	CatalogNotReady  failure.ErrorCode = "CatalogNotReady"
	UpstreamError    failure.ErrorCode = "UpstreamError"
)
