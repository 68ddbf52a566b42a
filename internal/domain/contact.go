package domain

import "database/sql"

// PhoneRecord is one phone_record row joined with its province/state
// reference names. All category foreign keys are nullable; by convention
// at most one is meaningfully non-zero, but that is not enforced anywhere.
type PhoneRecord struct {
	RecordID     int64
	Rank         sql.NullString
	FirstName    sql.NullString
	LastName     sql.NullString
	Phone        sql.NullString
	Phone1       sql.NullString
	Phone2       sql.NullString
	LocationID   sql.NullInt64
	MkCatID      sql.NullInt64
	MdCatID      sql.NullInt64
	MuasCatID    sql.NullInt64
	NrtCatID     sql.NullInt64
	FieldCatID   sql.NullInt64
	MedicalCatID sql.NullInt64
	ServiceCatID sql.NullInt64
	ProvinceName sql.NullString
	StateName    sql.NullString
}

// Contact is the flat representation the client consumes. Built per request,
// never persisted. Location and Category carry the same resolved label.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Rank     string `json:"rank"`
	Province string `json:"province"`
	State    string `json:"state"`
}

// Province is a province_info reference row.
type Province struct {
	ProvinceID   int64  `json:"province_id"`
	ProvinceName string `json:"province_name"`
}

// State is a state_info reference row.
type State struct {
	StateID   int64  `json:"state_id"`
	StateName string `json:"state_name"`
}
