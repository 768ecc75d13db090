package hours

import "github.com/m04kA/SMC-StoreAvailability/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
