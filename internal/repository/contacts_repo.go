package repository

import (
	"context"
	"errors"

	"github.com/mueed25/new-nahcon/internal/domain"
)

// ErrNotFound is returned when a record id has no matching row.
var ErrNotFound = errors.New("record not found")

// ContactFilter carries the conjunctive filters shared by the list and
// count queries. String filters are expected pre-trimmed; empty means
// absent. LocationID is only consulted when LocationSet is true;
// LocationSet with LocationID == 0 means the location name matched no row
// and the predicate can never be satisfied.
type ContactFilter struct {
	Search      string
	Province    string
	State       string
	LocationSet bool
	LocationID  int64
	Limit       int
	Offset      int
}

// CategoryFamily identifies one of the eight id->label lookup tables.
type CategoryFamily string

const (
	FamilyLocation CategoryFamily = "location"
	FamilyMk       CategoryFamily = "mk"
	FamilyMd       CategoryFamily = "md"
	FamilyMuas     CategoryFamily = "muas"
	FamilyNrt      CategoryFamily = "nrt"
	FamilyField    CategoryFamily = "field"
	FamilyMedical  CategoryFamily = "medical"
	FamilyService  CategoryFamily = "service"
)

// CategoryOrder is the fixed resolution priority. The locations union
// iterates the same list so the two stay in sync.
var CategoryOrder = []CategoryFamily{
	FamilyLocation,
	FamilyMk,
	FamilyMd,
	FamilyMuas,
	FamilyNrt,
	FamilyField,
	FamilyMedical,
	FamilyService,
}

// categoryTable describes where a family's labels live. Each family has its
// own table with family-specific column names.
type categoryTable struct {
	Table   string
	IDCol   string
	NameCol string
}

var categoryTables = map[CategoryFamily]categoryTable{
	FamilyLocation: {Table: "location", IDCol: "location_id", NameCol: "location_name"},
	FamilyMk:       {Table: "mk_cat", IDCol: "mk_cat_id", NameCol: "mk_cat_name"},
	FamilyMd:       {Table: "md_cat", IDCol: "md_cat_id", NameCol: "md_cat_name"},
	FamilyMuas:     {Table: "muas_cat", IDCol: "muas_cat_id", NameCol: "muas_cat_name"},
	FamilyNrt:      {Table: "nrt_cat", IDCol: "nrt_cat_id", NameCol: "nrt_cat_name"},
	FamilyField:    {Table: "field_cat", IDCol: "field_cat_id", NameCol: "field_cat_name"},
	FamilyMedical:  {Table: "medical_cat", IDCol: "medical_cat_id", NameCol: "medical_cat_name"},
	FamilyService:  {Table: "service_cat", IDCol: "service_cat_id", NameCol: "service_cat_name"},
}

// CategoryKey returns the record's foreign key value for a family
// (0 when the column is NULL).
func CategoryKey(rec *domain.PhoneRecord, fam CategoryFamily) int64 {
	switch fam {
	case FamilyLocation:
		return rec.LocationID.Int64
	case FamilyMk:
		return rec.MkCatID.Int64
	case FamilyMd:
		return rec.MdCatID.Int64
	case FamilyMuas:
		return rec.MuasCatID.Int64
	case FamilyNrt:
		return rec.NrtCatID.Int64
	case FamilyField:
		return rec.FieldCatID.Int64
	case FamilyMedical:
		return rec.MedicalCatID.Int64
	case FamilyService:
		return rec.ServiceCatID.Int64
	}
	return 0
}

// ContactsRepo is the read-only view over the directory schema. The service
// never writes; every method maps to one or more SELECTs.
type ContactsRepo interface {
	// ListRecords returns one page of phone records matching the filter,
	// joined with their province/state names. Ordering is whatever the
	// store returns.
	ListRecords(ctx context.Context, f ContactFilter) ([]*domain.PhoneRecord, error)

	// CountRecords counts all records matching the same predicate as
	// ListRecords, ignoring pagination.
	CountRecords(ctx context.Context, f ContactFilter) (int, error)

	// GetRecord fetches a single record by primary key. ErrNotFound when
	// absent.
	GetRecord(ctx context.Context, recordID int64) (*domain.PhoneRecord, error)

	// FindLocationID resolves a location name substring to a single
	// location id, first match only. found=false when nothing matches.
	FindLocationID(ctx context.Context, name string) (id int64, found bool, err error)

	// CategoryLabel looks up one family's label by exact id.
	// found=false when the id has no row.
	CategoryLabel(ctx context.Context, fam CategoryFamily, id int64) (label string, found bool, err error)

	// CategoryLabels returns the distinct non-empty labels of one family.
	CategoryLabels(ctx context.Context, fam CategoryFamily) ([]string, error)

	ListProvinces(ctx context.Context) ([]*domain.Province, error)
	ListStates(ctx context.Context) ([]*domain.State, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
