package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivamraghav1010/Player/internal/dto"
	"github.com/shivamraghav1010/Player/internal/repository"
	"github.com/shivamraghav1010/Player/pkg/apperror"
)

func setupSportService(t *testing.T) SportService {
	t.Helper()
	return NewSportService(repository.NewSportRepository(setupDB(t)))
}

func TestCreateSport(t *testing.T) {
	svc := setupSportService(t)

	sport, err := svc.Create(ctx(), dto.CreateSportInput{Name: "Cricket", Order: 1})
	require.NoError(t, err)
	assert.True(t, sport.IsActive)

	_, err = svc.Create(ctx(), dto.CreateSportInput{Name: "Cricket"})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	_, err = svc.Create(ctx(), dto.CreateSportInput{})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestListActiveOrdering(t *testing.T) {
	svc := setupSportService(t)

	for _, s := range []dto.CreateSportInput{
		{Name: "Swimming", Order: 3},
		{Name: "Cricket", Order: 1},
		{Name: "Football", Order: 2},
	} {
		_, err := svc.Create(ctx(), s)
		require.NoError(t, err)
	}

	badminton, err := svc.Create(ctx(), dto.CreateSportInput{Name: "Badminton", Order: 4})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx(), badminton.ID, dto.UpdateSportInput{IsActive: &inactive})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx())
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "Cricket", active[0].Name)
	assert.Equal(t, "Football", active[1].Name)
	assert.Equal(t, "Swimming", active[2].Name)

	all, err := svc.ListAll(ctx())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateSport(t *testing.T) {
	svc := setupSportService(t)

	cricket, err := svc.Create(ctx(), dto.CreateSportInput{Name: "Cricket"})
	require.NoError(t, err)
	_, err = svc.Create(ctx(), dto.CreateSportInput{Name: "Football"})
	require.NoError(t, err)

	taken := "Football"
	_, err = svc.Update(ctx(), cricket.ID, dto.UpdateSportInput{Name: &taken})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	desc := "bat and ball"
	updated, err := svc.Update(ctx(), cricket.ID, dto.UpdateSportInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Cricket", updated.Name)
	assert.Equal(t, "bat and ball", updated.Description)

	_, err = svc.Update(ctx(), uuid.New(), dto.UpdateSportInput{Description: &desc})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteSport(t *testing.T) {
	svc := setupSportService(t)

	cricket, err := svc.Create(ctx(), dto.CreateSportInput{Name: "Cricket"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx(), cricket.ID))
	assert.True(t, errors.Is(svc.Delete(ctx(), cricket.ID), apperror.ErrNotFound))
}
