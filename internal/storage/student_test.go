package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cohort-tools-backend/internal/models"
)

func TestListStudents(t *testing.T) {
	store, mock := newStorageWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "attributes"}).
		AddRow("student-1", []byte(`{"firstName":"Christine","languages":["English","Dutch"]}`))
	mock.ExpectQuery(`SELECT id, attributes FROM students ORDER BY id`).WillReturnRows(rows)

	students, err := store.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Christine", students[0].Attributes["firstName"])
}

func TestCreateStudent(t *testing.T) {
	store, mock := newStorageWithMock(t)

	mock.ExpectQuery(`INSERT INTO students`).
		WithArgs(sqlmock.AnyArg(), []byte(`{"firstName":"Austin"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "attributes"}).
			AddRow("student-1", []byte(`{"firstName":"Austin"}`)))

	student, err := store.CreateStudent(context.Background(), models.Attributes{"firstName": "Austin"})
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.Equal(t, "Austin", student.Attributes["firstName"])
}
