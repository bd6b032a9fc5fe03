package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dodotable/internal/condition"
	"dodotable/internal/config"
	"dodotable/internal/domain"
	"dodotable/internal/environment"
	"dodotable/internal/schema"
	"dodotable/internal/util"
)

// MusicTableUseCase assembles the catalog table from request arguments.
type MusicTableUseCase struct {
	repo domain.MusicRepository
	cfg  config.TableConfig
}

func NewMusicTableUseCase(repo domain.MusicRepository, cfg config.TableConfig) *MusicTableUseCase {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	return &MusicTableUseCase{repo: repo, cfg: cfg}
}

// Page builds and selects one page of the catalog table.
func (uc *MusicTableUseCase) Page(ctx context.Context, env environment.Environment, args condition.Args) (*schema.Table, error) {
	identifier := util.CamelToUnderscore("Music")
	orderBy := args.Get("order_by")

	name := schema.NewLinkedColumn("Name", "Name", orderBy, func(data any) string {
		m := data.(*domain.Music)
		return "/music/" + m.ID.String()
	})
	name.AddFilter(&condition.LikeFilter{
		Identifier: identifier, Column: "name", Attr: "name", Args: args,
	})

	artist := schema.NewColumn("Artist", "Artist", orderBy)
	artist.AddFilter(&condition.LikeFilter{
		Identifier: identifier, Column: "artist", Attr: "artist", Args: args,
	})

	genre := schema.NewColumn("Genre", "Genre", orderBy)

	plays := schema.NewColumn("Plays", "Plays", orderBy)
	plays.AddFilter(&condition.EqualFilter{
		Identifier: identifier, Column: "plays", Attr: "plays", Args: args,
		Parse: func(s string) (any, error) {
			return strconv.ParseInt(s, 10, 64)
		},
	})

	released := schema.NewColumn("Released", "ReleasedAt", orderBy)
	released.Repr = func(v any) string {
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02")
		}
		return util.StringLiteral(v)
	}

	note := schema.NewMarkdownColumn("Note", "Note")

	columns := []schema.ColumnSchema{name, artist, genre, plays, released, note}
	table := schema.NewTable(identifier, "Music catalog", "entries", columns, uc.repo)

	genreChoices := make([]condition.Choice, 0, len(domain.Genres))
	for _, g := range domain.Genres {
		genreChoices = append(genreChoices, condition.Choice{Name: g, Description: g})
	}
	table.AddFilter(condition.NewSelectFilter("genre", "genre", genreChoices, args, condition.ChoiceAll))

	table.AddFilter(condition.NewSearchSet(identifier, args, table.SearchFilters(), []condition.SearchOption{
		{Value: "name", Label: "Name"},
		{Value: "artist", Label: "Artist"},
		{Value: "plays", Label: "Plays"},
	}))

	limit := intArg(args, "limit", uc.cfg.DefaultLimit)
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	if limit > uc.cfg.MaxLimit {
		limit = uc.cfg.MaxLimit
	}
	offset := intArg(args, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	table.AddFilter(condition.NewLimit(identifier, args, limit))

	table.Bind(env)
	if err := table.Select(ctx, offset, limit); err != nil {
		return nil, err
	}
	return table, nil
}

// Get looks up one catalog entry for the detail endpoint.
func (uc *MusicTableUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Music, error) {
	return uc.repo.GetByID(ctx, id)
}

func intArg(args condition.Args, key string, def int) int {
	raw := args.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
