package domain

// Параметры генерации слотов
const (
	SlotIntervalMinutes = 15 // Шаг сетки слотов
	DefaultHorizonDays  = 7  // Сколько дней вперед показываются для самовывоза
	MaxHorizonDays      = 60 // Верхняя граница horizon_days в конфиге
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
