package hours

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда в store_settings нет ни одной строки
	ErrSettingsNotFound = errors.New("hours.repository: store settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
