package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dodotable/internal/condition"
	"dodotable/internal/config"
	"dodotable/internal/domain"
	"dodotable/internal/testutil"
)

func tableConfig() config.TableConfig {
	return config.TableConfig{DefaultLimit: 20, MaxLimit: 100}
}

func sampleMusic(name string) *domain.Music {
	return &domain.Music{
		ID:         uuid.New(),
		Name:       name,
		Artist:     "Band",
		Genre:      "rock",
		Plays:      42,
		ReleasedAt: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPage_Defaults(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	repo.On("Count", mock.Anything, mock.Anything).Return(3, nil)
	repo.On("Select", mock.Anything, mock.Anything, []string{"name DESC"}, 20, 0).
		Return([]any{sampleMusic("one")}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	table, err := uc.Page(context.Background(), nil, condition.Args{})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Count)
	assert.Len(t, table.Rows, 1)
	assert.Equal(t, 20, table.Pager.Limit)
	repo.AssertExpectations(t)
}

func TestPage_NoFilterClausesByDefault(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	empty := mock.MatchedBy(func(where []*condition.Clause) bool {
		return len(where) == 0
	})
	repo.On("Count", mock.Anything, empty).Return(0, nil)
	repo.On("Select", mock.Anything, empty, mock.Anything, 20, 0).
		Return([]any{}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_LimitClamped(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	repo.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("Select", mock.Anything, mock.Anything, mock.Anything, 100, 0).
		Return([]any{}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{"limit": "500"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_BadLimitFallsBack(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	repo.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("Select", mock.Anything, mock.Anything, mock.Anything, 20, 0).
		Return([]any{}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{"limit": "lots", "offset": "-5"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_OrderBy(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	repo.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("Select", mock.Anything, mock.Anything, []string{"plays ASC"}, 20, 0).
		Return([]any{}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{"order_by": "plays.asc"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_Search(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	artistSearch := mock.MatchedBy(func(where []*condition.Clause) bool {
		return len(where) == 1 &&
			where[0].SQL == "artist ILIKE ?" &&
			len(where[0].Args) == 1 && where[0].Args[0] == "%bee%"
	})
	repo.On("Count", mock.Anything, artistSearch).Return(1, nil)
	repo.On("Select", mock.Anything, artistSearch, mock.Anything, 20, 0).
		Return([]any{sampleMusic("one")}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{
		"search_music.type": "artist",
		"search_music.word": "bee",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_GenreFilter(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	genreEq := mock.MatchedBy(func(where []*condition.Clause) bool {
		return len(where) == 1 &&
			where[0].SQL == "genre = ?" && where[0].Args[0] == "jazz"
	})
	repo.On("Count", mock.Anything, genreEq).Return(0, nil)
	repo.On("Select", mock.Anything, genreEq, mock.Anything, 20, 0).
		Return([]any{}, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{"select.genre": "jazz"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPage_BadGenreChoice(t *testing.T) {
	repo := new(testutil.MockMusicRepo)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Page(context.Background(), nil, condition.Args{"select.genre": "ska"})
	assert.ErrorIs(t, err, condition.ErrBadChoice)
	repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestGet(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	want := sampleMusic("one")
	repo.On("GetByID", mock.Anything, want.ID).Return(want, nil)

	uc := NewMusicTableUseCase(repo, tableConfig())
	got, err := uc.Get(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(testutil.MockMusicRepo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrMusicNotFound)

	uc := NewMusicTableUseCase(repo, tableConfig())
	_, err := uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrMusicNotFound)
}
