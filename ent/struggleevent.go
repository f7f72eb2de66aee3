// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/okanta/memloop/ent/struggleevent"
)

// StruggleEvent is the model entity for the StruggleEvent schema.
type StruggleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Module holds the value of the "module" field.
	Module string `json:"module,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// What caused the mutation: diagnosis, decay
	Trigger string `json:"trigger,omitempty"`
	// FailureMode holds the value of the "failure_mode" field.
	FailureMode string `json:"failure_mode,omitempty"`
	// StaticWeight holds the value of the "static_weight" field.
	StaticWeight float64 `json:"static_weight,omitempty"`
	// DynamicWeight holds the value of the "dynamic_weight" field.
	DynamicWeight float64 `json:"dynamic_weight,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StruggleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case struggleevent.FieldStaticWeight, struggleevent.FieldDynamicWeight:
			values[i] = new(sql.NullFloat64)
		case struggleevent.FieldID, struggleevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case struggleevent.FieldModule, struggleevent.FieldSection, struggleevent.FieldTrigger, struggleevent.FieldFailureMode:
			values[i] = new(sql.NullString)
		case struggleevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StruggleEvent fields.
func (_m *StruggleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case struggleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case struggleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case struggleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case struggleevent.FieldModule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module", values[i])
			} else if value.Valid {
				_m.Module = value.String
			}
		case struggleevent.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case struggleevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case struggleevent.FieldFailureMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_mode", values[i])
			} else if value.Valid {
				_m.FailureMode = value.String
			}
		case struggleevent.FieldStaticWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field static_weight", values[i])
			} else if value.Valid {
				_m.StaticWeight = value.Float64
			}
		case struggleevent.FieldDynamicWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field dynamic_weight", values[i])
			} else if value.Valid {
				_m.DynamicWeight = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StruggleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StruggleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StruggleEvent.
// Note that you need to call StruggleEvent.Unwrap() before calling this method if this StruggleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StruggleEvent) Update() *StruggleEventUpdateOne {
	return NewStruggleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StruggleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StruggleEvent) Unwrap() *StruggleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StruggleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StruggleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StruggleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("module=")
	builder.WriteString(_m.Module)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("failure_mode=")
	builder.WriteString(_m.FailureMode)
	builder.WriteString(", ")
	builder.WriteString("static_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.StaticWeight))
	builder.WriteString(", ")
	builder.WriteString("dynamic_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.DynamicWeight))
	builder.WriteByte(')')
	return builder.String()
}

// StruggleEvents is a parsable slice of StruggleEvent.
type StruggleEvents []*StruggleEvent
