package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dodotable/internal/condition"
	"dodotable/internal/domain"
)

const musicColumns = "id, created_at, updated_at, name, artist, genre, plays, released_at, note"

type musicRepo struct {
	pool *pgxpool.Pool
}

func NewMusicRepository(pool *pgxpool.Pool) domain.MusicRepository {
	return &musicRepo{pool: pool}
}

func (r *musicRepo) Count(ctx context.Context, where []*condition.Clause) (int, error) {
	whereSQL, args := buildWhere(where, 1)
	query := "SELECT COUNT(*) FROM music"
	if whereSQL != "" {
		query += " WHERE " + whereSQL
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count music: %w", err)
	}
	return total, nil
}

func (r *musicRepo) Select(ctx context.Context, where []*condition.Clause, order []string, limit, offset int) ([]any, error) {
	whereSQL, args := buildWhere(where, 1)
	query := "SELECT " + musicColumns + " FROM music"
	if whereSQL != "" {
		query += " WHERE " + whereSQL
	}
	if len(order) > 0 {
		query += " ORDER BY " + strings.Join(order, ", ")
	}
	pos := len(args) + 1
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select music: %w", err)
	}
	defer rows.Close()

	var data []any
	for rows.Next() {
		m, err := scanMusic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan music row: %w", err)
		}
		data = append(data, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate music rows: %w", err)
	}
	return data, nil
}

func (r *musicRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Music, error) {
	query := "SELECT " + musicColumns + " FROM music WHERE id = $1"
	m, err := scanMusic(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMusicNotFound
		}
		return nil, fmt.Errorf("get music by id: %w", err)
	}
	return m, nil
}

func scanMusic(row pgx.Row) (*domain.Music, error) {
	m := &domain.Music{}
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt,
		&m.Name, &m.Artist, &m.Genre,
		&m.Plays, &m.ReleasedAt, &m.Note,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// buildWhere joins clauses with AND, renumbering `?` placeholders to
// positional $n parameters starting at startPos.
func buildWhere(clauses []*condition.Clause, startPos int) (string, []any) {
	var conds []string
	var args []any
	pos := startPos
	for _, cl := range clauses {
		if cl == nil {
			continue
		}
		var b strings.Builder
		for _, ch := range cl.SQL {
			if ch == '?' {
				fmt.Fprintf(&b, "$%d", pos)
				pos++
			} else {
				b.WriteRune(ch)
			}
		}
		conds = append(conds, b.String())
		args = append(args, cl.Args...)
	}
	return strings.Join(conds, " AND "), args
}
