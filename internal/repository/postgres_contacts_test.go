package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresContactsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewPostgresContactsRepository(db)
	return db, mock, repo
}

var recordRowColumns = []string{
	"record_id", "rank", "f_name", "l_name", "phone", "phone1", "phone2",
	"location_id", "mk_cat_id", "md_cat_id", "muas_cat_id", "nrt_cat_id",
	"field_cat_id", "medical_cat_id", "service_cat_id",
	"province_name", "state_name",
}

func TestListRecords_SearchFilter(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(recordRowColumns).
		AddRow(1, "Alhaji", "John", "Doe", "08011112222", nil, nil,
			3, nil, nil, nil, nil, nil, nil, nil, "Lagos", "Lagos State").
		AddRow(2, nil, nil, nil, nil, "08031230001", nil,
			nil, 5, nil, nil, nil, nil, nil, nil, nil, nil)

	pattern := "%john%"
	mock.ExpectQuery(`SELECT`).
		WithArgs(pattern, pattern, pattern, pattern, pattern, 50, 0).
		WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background(), ContactFilter{
		Search: "john",
		Limit:  50,
		Offset: 0,
	})

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(1), records[0].RecordID)
	assert.Equal(t, "John", records[0].FirstName.String)
	assert.Equal(t, int64(3), records[0].LocationID.Int64)
	assert.Equal(t, "Lagos", records[0].ProvinceName.String)

	assert.Equal(t, int64(2), records[1].RecordID)
	assert.False(t, records[1].FirstName.Valid)
	assert.False(t, records[1].LocationID.Valid)
	assert.Equal(t, int64(5), records[1].MkCatID.Int64)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecords_AllFiltersConjunctive(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	pattern := "%ada%"
	mock.ExpectQuery(`SELECT`).
		WithArgs(pattern, pattern, pattern, pattern, pattern, "%Lagos%", "%Lagos State%", int64(3), 10, 20).
		WillReturnRows(sqlmock.NewRows(recordRowColumns))

	records, err := repo.ListRecords(context.Background(), ContactFilter{
		Search:      "ada",
		Province:    "Lagos",
		State:       "Lagos State",
		LocationSet: true,
		LocationID:  3,
		Limit:       10,
		Offset:      20,
	})

	require.NoError(t, err)
	assert.Len(t, records, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRecords_SharesFilterPredicate(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	pattern := "%john%"
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs(pattern, pattern, pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.CountRecords(context.Background(), ContactFilter{
		Search: "john",
		Limit:  50,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecord_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRecord(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecord_Found(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(recordRowColumns).
		AddRow(42, nil, "John", "Doe", "08011112222", nil, nil,
			3, nil, nil, nil, nil, nil, nil, nil, "Lagos", "Lagos State")

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	rec, err := repo.GetRecord(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.RecordID)
	assert.Equal(t, "Doe", rec.LastName.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLocationID_FirstMatch(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT location_id FROM location`).
		WithArgs("%lagos%").
		WillReturnRows(sqlmock.NewRows([]string{"location_id"}).AddRow(3))

	id, found, err := repo.FindLocationID(context.Background(), "lagos")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLocationID_NoMatch(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT location_id FROM location`).
		WithArgs("%nowhere%").
		WillReturnError(sql.ErrNoRows)

	id, found, err := repo.FindLocationID(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryLabel_FoundAndMissing(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT mk_cat_name FROM mk_cat`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"mk_cat_name"}).AddRow("MK Five"))

	label, found, err := repo.CategoryLabel(context.Background(), FamilyMk, 5)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "MK Five", label)

	mock.ExpectQuery(`SELECT md_cat_name FROM md_cat`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, found, err = repo.CategoryLabel(context.Background(), FamilyMd, 7)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryLabel_UnknownFamily(t *testing.T) {
	db, _, repo := setupMockDB(t)
	defer db.Close()

	_, _, err := repo.CategoryLabel(context.Background(), CategoryFamily("bogus"), 1)
	assert.Error(t, err)
}

func TestCategoryLabels_PropagatesQueryError(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT location_name FROM location`).
		WillReturnError(errors.New("relation missing"))

	_, err := repo.CategoryLabels(context.Background(), FamilyLocation)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProvinces(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT province_id, province_name FROM province_info`).
		WillReturnRows(sqlmock.NewRows([]string{"province_id", "province_name"}).
			AddRow(1, "Lagos").
			AddRow(2, "Kano"))

	provinces, err := repo.ListProvinces(context.Background())
	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, "Lagos", provinces[0].ProvinceName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresContactsRepository(db)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
