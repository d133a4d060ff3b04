package repository

import (
	"context"
	"errors"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCourseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{
		db: db,
	}
}

func (p *PostgresCourseRepository) GetById(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT id, url, description, long_description, price, created_at
		FROM courses
		WHERE id = $1`

	var course domain.Course

	err := p.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Url,
		&course.Titles.Description,
		&course.Titles.LongDescription,
		&course.Price,
		&course.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &course, nil
}
