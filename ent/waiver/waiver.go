// Code generated by ent, DO NOT EDIT.

package waiver

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the waiver type in the database.
	Label = "waiver"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldTargetID holds the string denoting the target_id field in the database.
	FieldTargetID = "target_id"
	// FieldWaiverType holds the string denoting the waiver_type field in the database.
	FieldWaiverType = "waiver_type"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldGrantedAt holds the string denoting the granted_at field in the database.
	FieldGrantedAt = "granted_at"
	// Table holds the table name of the waiver in the database.
	Table = "waivers"
)

// Columns holds all SQL columns for waiver fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldTargetID,
	FieldWaiverType,
	FieldNote,
	FieldGrantedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	SourceIDValidator func(string) error
	// TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	TargetIDValidator func(string) error
	// WaiverTypeValidator is a validator for the "waiver_type" field. It is called by the builders before save.
	WaiverTypeValidator func(string) error
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
	// DefaultGrantedAt holds the default value on creation for the "granted_at" field.
	DefaultGrantedAt func() time.Time
)

// OrderOption defines the ordering options for the Waiver queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByTargetID orders the results by the target_id field.
func ByTargetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetID, opts...).ToFunc()
}

// ByWaiverType orders the results by the waiver_type field.
func ByWaiverType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaiverType, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByGrantedAt orders the results by the granted_at field.
func ByGrantedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedAt, opts...).ToFunc()
}
