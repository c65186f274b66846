package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда запись настроек отсутствует
	ErrSettingsNotFound = errors.New("settings.repository: club settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEmptyUpdate возвращается при попытке выполнить пустое обновление
	ErrEmptyUpdate = errors.New("settings.repository: empty update")
)
