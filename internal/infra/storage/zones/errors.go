package zones

import "errors"

var (
	// ErrZoneNotFound возвращается, когда активная зона для индекса не найдена
	ErrZoneNotFound = errors.New("zones.repository: zone not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("zones.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("zones.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("zones.repository: failed to scan row")
)
