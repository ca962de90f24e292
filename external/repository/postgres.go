package repository

import (
	"context"

	"github.com/foxseedlab/practicasbot/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.MeetingRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) AddMeeting(ctx context.Context, meeting repository.Meeting) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO meetings (day, place) VALUES ($1, $2)`,
		meeting.Day, meeting.Place)
	return err
}

func (r *PostgresRepository) ListMeetings(ctx context.Context) ([]repository.Meeting, error) {
	rows, err := r.pool.Query(ctx, `SELECT day, place FROM meetings ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[repository.Meeting])
}
