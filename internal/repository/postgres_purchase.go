package repository

import (
	"context"
	"errors"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPurchaseSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPurchaseSessionRepository(db *pgxpool.Pool) *PostgresPurchaseSessionRepository {
	return &PostgresPurchaseSessionRepository{
		db: db,
	}
}

// Create allocates the session id before the insert so that it can flow into
// the Stripe request of the same checkout attempt.
func (p *PostgresPurchaseSessionRepository) Create(ctx context.Context, session *domain.PurchaseSession) error {
	session.ID = uuid.NewString()

	query := `INSERT INTO purchase_sessions (id, user_id, course_id, pricing_plan_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := p.db.QueryRow(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.CourseID,
		session.PricingPlanID,
		session.Status,
	).Scan(&session.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}
