package get_store_status

import "time"

// OpenState последнее известное состояние магазина (поллер)
type OpenState interface {
	IsOpen() bool
	LastChecked() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
