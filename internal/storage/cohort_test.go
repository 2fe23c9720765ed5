package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cohort-tools-backend/internal/models"
)

func TestListCohorts(t *testing.T) {
	store, mock := newStorageWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "attributes"}).
		AddRow("cohort-1", []byte(`{"cohortName":"Web Dev Jan 2024"}`)).
		AddRow("cohort-2", []byte(`{"cohortName":"UX Mar 2024","inProgress":true}`))
	mock.ExpectQuery(`SELECT id, attributes FROM cohorts ORDER BY id`).WillReturnRows(rows)

	cohorts, err := store.ListCohorts(context.Background())
	require.NoError(t, err)
	require.Len(t, cohorts, 2)
	assert.Equal(t, "Web Dev Jan 2024", cohorts[0].Attributes["cohortName"])
	assert.Equal(t, true, cohorts[1].Attributes["inProgress"])
}

func TestListCohorts_Empty(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(`SELECT id, attributes FROM cohorts ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "attributes"}))

	cohorts, err := store.ListCohorts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cohorts)
	assert.Empty(t, cohorts)
}

func TestGetCohort_NotFound(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, attributes FROM cohorts WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetCohort(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCohortNotFound)
}

func TestCreateCohort(t *testing.T) {
	store, mock := newStorageWithMock(t)

	attrs := models.Attributes{"cohortName": "Web Dev Jan 2024"}
	mock.ExpectQuery(`INSERT INTO cohorts`).
		WithArgs(sqlmock.AnyArg(), []byte(`{"cohortName":"Web Dev Jan 2024"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "attributes"}).
			AddRow("cohort-1", []byte(`{"cohortName":"Web Dev Jan 2024"}`)))

	cohort, err := store.CreateCohort(context.Background(), attrs)
	require.NoError(t, err)
	assert.Equal(t, "cohort-1", cohort.ID)
	assert.Equal(t, "Web Dev Jan 2024", cohort.Attributes["cohortName"])
}

func TestUpdateCohort_Merges(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(`UPDATE cohorts`).
		WithArgs("cohort-1", []byte(`{"inProgress":true}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "attributes"}).
			AddRow("cohort-1", []byte(`{"cohortName":"Web Dev Jan 2024","inProgress":true}`)))

	cohort, err := store.UpdateCohort(context.Background(), "cohort-1", models.Attributes{"inProgress": true})
	require.NoError(t, err)
	assert.Equal(t, true, cohort.Attributes["inProgress"])
	assert.Equal(t, "Web Dev Jan 2024", cohort.Attributes["cohortName"])
}

func TestUpdateCohort_NotFound(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(`UPDATE cohorts`).
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := store.UpdateCohort(context.Background(), "missing", models.Attributes{"inProgress": true})
	assert.ErrorIs(t, err, ErrCohortNotFound)
}
