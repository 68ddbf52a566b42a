package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mueed25/new-nahcon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strVal(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func idVal(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: true}
}

func TestMemoryListRecords_SearchMatchesNamesAndPhones(t *testing.T) {
	mem := NewMemoryContactsRepository()
	mem.AddRecord(&domain.PhoneRecord{RecordID: 1, FirstName: strVal("John"), LastName: strVal("Doe")})
	mem.AddRecord(&domain.PhoneRecord{RecordID: 2, Phone1: strVal("08031230001")})
	mem.AddRecord(&domain.PhoneRecord{RecordID: 3, FirstName: strVal("Ada")})
	ctx := context.Background()

	records, err := mem.ListRecords(ctx, ContactFilter{Search: "JOHN", Limit: 10})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].RecordID)

	records, err = mem.ListRecords(ctx, ContactFilter{Search: "1230001", Limit: 10})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].RecordID)
}

func TestMemoryListRecords_LocationPredicate(t *testing.T) {
	mem := NewMemoryContactsRepository()
	mem.AddRecord(&domain.PhoneRecord{RecordID: 1, LocationID: idVal(3)})
	mem.AddRecord(&domain.PhoneRecord{RecordID: 2, LocationID: idVal(4)})
	ctx := context.Background()

	records, err := mem.ListRecords(ctx, ContactFilter{LocationSet: true, LocationID: 3, Limit: 10})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].RecordID)

	// unresolved location name: unsatisfiable predicate
	records, err = mem.ListRecords(ctx, ContactFilter{LocationSet: true, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, records, 0)

	total, err := mem.CountRecords(ctx, ContactFilter{LocationSet: true})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestMemoryFindLocationID_Substring(t *testing.T) {
	mem := NewMemoryContactsRepository()
	mem.SetLabel(FamilyLocation, 3, "Lagos Hub")

	id, found, err := mem.FindLocationID(context.Background(), "lag")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), id)

	_, found, err = mem.FindLocationID(context.Background(), "abuja")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryGetRecord_NotFound(t *testing.T) {
	mem := NewMemoryContactsRepository()

	_, err := mem.GetRecord(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPing_Injectable(t *testing.T) {
	mem := NewMemoryContactsRepository()
	require.NoError(t, mem.Ping(context.Background()))

	down := errors.New("store down")
	mem.SetPingError(down)
	assert.ErrorIs(t, mem.Ping(context.Background()), down)
}
