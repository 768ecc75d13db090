package hours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

// Repository репозиторий для чтения часов работы и настроек магазина
// Только чтение: расписание редактируется админкой, а не этим сервисом
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FetchWeeklySchedule читает недельное расписание из store_hours
//
// Правила сборки:
//   - day_of_week нормализуется и проверяется по каноничному набору из семи дней
//   - строка с неизвестным днем пропускается
//   - при дубликате дня остается первая строка
//   - неразбираемое время обнуляется, такой день дальше считается закрытым
//   - отсутствующий день отсутствует и в результате (потребители трактуют его как закрытый)
func (r *Repository) FetchWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("store_hours").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, len(domain.AllWeekdays))

	for rows.Next() {
		var (
			rawDay              string
			openTime, closeTime interface{}
			isClosed            bool
		)

		if err := rows.Scan(&rawDay, &openTime, &closeTime, &isClosed); err != nil {
			return nil, fmt.Errorf("%w: FetchWeeklySchedule - scan row: %v", ErrScanRow, err)
		}

		day, ok := domain.ParseWeekday(rawDay)
		if !ok {
			continue
		}
		if _, exists := schedule[day]; exists {
			continue
		}

		schedule[day] = domain.DaySchedule{
			IsClosed:  isClosed,
			OpenTime:  parseTime(openTime),
			CloseTime: parseTime(closeTime),
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// FetchSettings читает настройки магазина (единственная строка store_settings)
func (r *Repository) FetchSettings(ctx context.Context) (*domain.StoreSettings, error) {
	query, args, err := psqlbuilder.Select(
		"store_name",
		"address",
		"accept_preorders",
	).
		From("store_settings").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchSettings - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.StoreSettings
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.StoreName,
		&settings.Address,
		&settings.AcceptPreorders,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FetchSettings - scan settings: %v", ErrScanRow, err)
	}

	return &settings, nil
}

// parseTime разбирает значение колонки TIME (драйвер отдает time.Time, строку или байты)
// NULL и неразбираемое значение дают nil
func parseTime(value interface{}) *types.TimeString {
	if value == nil {
		return nil
	}
	var parsed types.TimeString
	if err := parsed.Scan(value); err != nil {
		return nil
	}
	return &parsed
}
