package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mueed25/new-nahcon/internal/domain"
)

type PostgresContactsRepository struct {
	db *sql.DB
}

func NewPostgresContactsRepository(db *sql.DB) *PostgresContactsRepository {
	return &PostgresContactsRepository{db: db}
}

const recordColumns = `
	pr.record_id,
	pr.rank,
	pr.f_name,
	pr.l_name,
	pr.phone,
	pr.phone1,
	pr.phone2,
	pr.location_id,
	pr.mk_cat_id,
	pr.md_cat_id,
	pr.muas_cat_id,
	pr.nrt_cat_id,
	pr.field_cat_id,
	pr.medical_cat_id,
	pr.service_cat_id,
	p.province_name,
	s.state_name`

const recordFrom = `
	FROM phone_record pr
	LEFT JOIN province_info p ON p.province_id = pr.province_id
	LEFT JOIN state_info s ON s.state_id = pr.state_id`

// buildWhere renders the conjunctive filter. List and Count share it so the
// reported total always describes the same predicate as the page.
func buildWhere(f ContactFilter) (string, []any) {
	conds := []string{}
	args := []any{}
	argIdx := 1

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, fmt.Sprintf(
			"(pr.f_name ILIKE $%d OR pr.l_name ILIKE $%d OR pr.phone ILIKE $%d OR pr.phone1 ILIKE $%d OR pr.phone2 ILIKE $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3, argIdx+4,
		))
		args = append(args, pattern, pattern, pattern, pattern, pattern)
		argIdx += 5
	}
	if f.Province != "" {
		conds = append(conds, fmt.Sprintf("p.province_name ILIKE $%d", argIdx))
		args = append(args, "%"+f.Province+"%")
		argIdx++
	}
	if f.State != "" {
		conds = append(conds, fmt.Sprintf("s.state_name ILIKE $%d", argIdx))
		args = append(args, "%"+f.State+"%")
		argIdx++
	}
	if f.LocationSet {
		if f.LocationID > 0 {
			conds = append(conds, fmt.Sprintf("pr.location_id = $%d", argIdx))
			args = append(args, f.LocationID)
			argIdx++
		} else {
			// location name matched nothing: the filter can never hold
			conds = append(conds, "1 = 0")
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRecord(scan func(dest ...any) error) (*domain.PhoneRecord, error) {
	var rec domain.PhoneRecord
	err := scan(
		&rec.RecordID,
		&rec.Rank,
		&rec.FirstName,
		&rec.LastName,
		&rec.Phone,
		&rec.Phone1,
		&rec.Phone2,
		&rec.LocationID,
		&rec.MkCatID,
		&rec.MdCatID,
		&rec.MuasCatID,
		&rec.NrtCatID,
		&rec.FieldCatID,
		&rec.MedicalCatID,
		&rec.ServiceCatID,
		&rec.ProvinceName,
		&rec.StateName,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecords: no ORDER BY here; the client contract makes no ordering
// promise for the list endpoint.
func (r *PostgresContactsRepository) ListRecords(ctx context.Context, f ContactFilter) ([]*domain.PhoneRecord, error) {
	where, args := buildWhere(f)

	q := "SELECT" + recordColumns + recordFrom + where +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.PhoneRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresContactsRepository) CountRecords(ctx context.Context, f ContactFilter) (int, error) {
	where, args := buildWhere(f)

	q := "SELECT COUNT(*)" + recordFrom + where
	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresContactsRepository) GetRecord(ctx context.Context, recordID int64) (*domain.PhoneRecord, error) {
	q := "SELECT" + recordColumns + recordFrom + " WHERE pr.record_id = $1"
	rec, err := scanRecord(r.db.QueryRowContext(ctx, q, recordID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// FindLocationID: first match only, no ORDER BY — with an ambiguous
// substring, whichever row the store returns first wins.
func (r *PostgresContactsRepository) FindLocationID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT location_id FROM location WHERE location_name ILIKE $1 LIMIT 1`,
		"%"+name+"%",
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (r *PostgresContactsRepository) CategoryLabel(ctx context.Context, fam CategoryFamily, id int64) (string, bool, error) {
	t, ok := categoryTables[fam]
	if !ok {
		return "", false, fmt.Errorf("unknown category family: %s", fam)
	}

	// table/column names come from the fixed family map, never from input
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.NameCol, t.Table, t.IDCol)
	var label sql.NullString
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&label); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return label.String, true, nil
}

func (r *PostgresContactsRepository) CategoryLabels(ctx context.Context, fam CategoryFamily) ([]string, error) {
	t, ok := categoryTables[fam]
	if !ok {
		return nil, fmt.Errorf("unknown category family: %s", fam)
	}

	q := fmt.Sprintf(
		"SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL AND btrim(%s) <> ''",
		t.NameCol, t.Table, t.NameCol, t.NameCol,
	)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	return out, rows.Err()
}

func (r *PostgresContactsRepository) ListProvinces(ctx context.Context) ([]*domain.Province, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT province_id, province_name FROM province_info ORDER BY province_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Province{}
	for rows.Next() {
		var p domain.Province
		if err := rows.Scan(&p.ProvinceID, &p.ProvinceName); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PostgresContactsRepository) ListStates(ctx context.Context) ([]*domain.State, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT state_id, state_name FROM state_info ORDER BY state_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.State{}
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.StateID, &s.StateName); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *PostgresContactsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
