package zones

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/psqlbuilder"
)

// normalizedPostcodeExpr нормализует индекс на стороне БД так же, как domain.NormalizePostcode
const normalizedPostcodeExpr = "UPPER(REPLACE(postcode, ' ', '')) = ?"

// Repository репозиторий для чтения зон доставки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зон доставки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByPostcode получает активную зону доставки по почтовому индексу
// Неактивная зона не отличается от отсутствующей: обе дают ErrZoneNotFound
func (r *Repository) GetActiveByPostcode(ctx context.Context, postcode string) (*domain.DeliveryZone, error) {
	query, args, err := psqlbuilder.Select(
		"postcode",
		"estimated_minutes",
		"active",
	).
		From("delivery_zones").
		Where(squirrel.Expr(normalizedPostcodeExpr, domain.NormalizePostcode(postcode))).
		Where(squirrel.Eq{"active": true}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPostcode - build select query: %v", ErrBuildQuery, err)
	}

	var zone domain.DeliveryZone
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&zone.Postcode,
		&zone.EstimatedMinutes,
		&zone.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPostcode - scan zone: %v", ErrScanRow, err)
	}

	return &zone, nil
}

// GetAllActive получает все активные зоны доставки, отсортированные по индексу
func (r *Repository) GetAllActive(ctx context.Context) ([]*domain.DeliveryZone, error) {
	query, args, err := psqlbuilder.Select(
		"postcode",
		"estimated_minutes",
		"active",
	).
		From("delivery_zones").
		Where(squirrel.Eq{"active": true}).
		OrderBy("postcode ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	zones := make([]*domain.DeliveryZone, 0)

	for rows.Next() {
		var zone domain.DeliveryZone
		if err := rows.Scan(&zone.Postcode, &zone.EstimatedMinutes, &zone.Active); err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan row: %v", ErrScanRow, err)
		}
		zones = append(zones, &zone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - rows error: %v", ErrScanRow, err)
	}

	return zones, nil
}
