package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"heritage-server/internal/interfaces"
	"heritage-server/internal/schemas"
)

const eventColumns = `id, name, date, location, description, category, created_by, created_at`

type EventRepository interface {
	List(ctx context.Context) ([]*schemas.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*schemas.Event, error)
	Create(ctx context.Context, event *schemas.Event) error
	Update(ctx context.Context, event *schemas.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PgEventRepository struct {
	pool interfaces.PgxPoolIface
}

func NewEventRepository(pool interfaces.PgxPoolIface) *PgEventRepository {
	return &PgEventRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*schemas.Event, error) {
	event := &schemas.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Description,
		&event.Category,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return event, nil
}

// List returns all events ordered by date.
func (r *PgEventRepository) List(ctx context.Context) ([]*schemas.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*schemas.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *PgEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Event, error) {
	return scanEvent(r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
}

func (r *PgEventRepository) Create(ctx context.Context, event *schemas.Event) error {
	query := `INSERT INTO events (` + eventColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Date,
		event.Location,
		event.Description,
		event.Category,
		event.CreatedBy,
		event.CreatedAt,
	)
	return err
}

func (r *PgEventRepository) Update(ctx context.Context, event *schemas.Event) error {
	query := `UPDATE events SET name = $2, date = $3, location = $4, description = $5, category = $6 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Date,
		event.Location,
		event.Description,
		event.Category,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PgEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
