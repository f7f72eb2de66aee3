// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/okanta/memloop/ent/waiver"
)

// Waiver is the model entity for the Waiver schema.
type Waiver struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Prerequisite concept being waived
	SourceID string `json:"source_id,omitempty"`
	// Concept whose gate the waiver unlocks
	TargetID string `json:"target_id,omitempty"`
	// WaiverType holds the value of the "waiver_type" field.
	WaiverType string `json:"waiver_type,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// GrantedAt holds the value of the "granted_at" field.
	GrantedAt    time.Time `json:"granted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Waiver) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case waiver.FieldID:
			values[i] = new(sql.NullInt64)
		case waiver.FieldSourceID, waiver.FieldTargetID, waiver.FieldWaiverType, waiver.FieldNote:
			values[i] = new(sql.NullString)
		case waiver.FieldGrantedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Waiver fields.
func (_m *Waiver) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case waiver.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case waiver.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case waiver.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case waiver.FieldWaiverType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field waiver_type", values[i])
			} else if value.Valid {
				_m.WaiverType = value.String
			}
		case waiver.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case waiver.FieldGrantedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field granted_at", values[i])
			} else if value.Valid {
				_m.GrantedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Waiver.
// This includes values selected through modifiers, order, etc.
func (_m *Waiver) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Waiver.
// Note that you need to call Waiver.Unwrap() before calling this method if this Waiver
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Waiver) Update() *WaiverUpdateOne {
	return NewWaiverClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Waiver entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Waiver) Unwrap() *Waiver {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Waiver is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Waiver) String() string {
	var builder strings.Builder
	builder.WriteString("Waiver(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("waiver_type=")
	builder.WriteString(_m.WaiverType)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("granted_at=")
	builder.WriteString(_m.GrantedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Waivers is a parsable slice of Waiver.
type Waivers []*Waiver
