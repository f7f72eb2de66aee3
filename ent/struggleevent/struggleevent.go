// Code generated by ent, DO NOT EDIT.

package struggleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the struggleevent type in the database.
	Label = "struggle_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldModule holds the string denoting the module field in the database.
	FieldModule = "module"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldFailureMode holds the string denoting the failure_mode field in the database.
	FieldFailureMode = "failure_mode"
	// FieldStaticWeight holds the string denoting the static_weight field in the database.
	FieldStaticWeight = "static_weight"
	// FieldDynamicWeight holds the string denoting the dynamic_weight field in the database.
	FieldDynamicWeight = "dynamic_weight"
	// Table holds the table name of the struggleevent in the database.
	Table = "struggle_events"
)

// Columns holds all SQL columns for struggleevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldModule,
	FieldSection,
	FieldTrigger,
	FieldFailureMode,
	FieldStaticWeight,
	FieldDynamicWeight,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ModuleValidator is a validator for the "module" field. It is called by the builders before save.
	ModuleValidator func(string) error
	// DefaultSection holds the default value on creation for the "section" field.
	DefaultSection string
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
	// DefaultFailureMode holds the default value on creation for the "failure_mode" field.
	DefaultFailureMode string
)

// OrderOption defines the ordering options for the StruggleEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByModule orders the results by the module field.
func ByModule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModule, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByFailureMode orders the results by the failure_mode field.
func ByFailureMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureMode, opts...).ToFunc()
}

// ByStaticWeight orders the results by the static_weight field.
func ByStaticWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStaticWeight, opts...).ToFunc()
}

// ByDynamicWeight orders the results by the dynamic_weight field.
func ByDynamicWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDynamicWeight, opts...).ToFunc()
}
