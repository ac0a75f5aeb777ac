// models/nulls.go
package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// Layouts used when rendering dates and timestamps in the dataset file.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// NullString is a string column that may be absent.
// Absent values are written as an empty CSV field and stored as SQL NULL.
type NullString struct {
	String string
	Valid  bool
}

// SomeString wraps a present value.
func SomeString(s string) NullString {
	return NullString{String: s, Valid: true}
}

func (n NullString) MarshalCSV() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return []byte(n.String), nil
}

func (n *NullString) UnmarshalCSV(data []byte) error {
	if len(data) == 0 {
		*n = NullString{}
		return nil
	}
	*n = SomeString(string(data))
	return nil
}

func (n NullString) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.String, nil
}

// NullInt is an integer column that may be absent.
type NullInt struct {
	Int   int
	Valid bool
}

// SomeInt wraps a present value.
func SomeInt(i int) NullInt {
	return NullInt{Int: i, Valid: true}
}

func (n NullInt) MarshalCSV() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return strconv.AppendInt(nil, int64(n.Int), 10), nil
}

func (n *NullInt) UnmarshalCSV(data []byte) error {
	if len(data) == 0 {
		*n = NullInt{}
		return nil
	}
	i, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", data, err)
	}
	*n = SomeInt(i)
	return nil
}

func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.Int), nil
}

// Date is a calendar date rendered as YYYY-MM-DD.
type Date struct {
	Time time.Time
}

func (d Date) MarshalCSV() ([]byte, error) {
	return []byte(d.Time.Format(DateLayout)), nil
}

func (d *Date) UnmarshalCSV(data []byte) error {
	t, err := time.Parse(DateLayout, string(data))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", data, err)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Timestamp is a wall-clock time rendered as "YYYY-MM-DD HH:MM:SS".
type Timestamp struct {
	Time time.Time
}

func (ts Timestamp) MarshalCSV() ([]byte, error) {
	return []byte(ts.Time.Format(TimestampLayout)), nil
}

func (ts *Timestamp) UnmarshalCSV(data []byte) error {
	t, err := time.Parse(TimestampLayout, string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", data, err)
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) Value() (driver.Value, error) {
	return ts.Time, nil
}

// NullTime is a timestamp column that may be absent.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// SomeTime wraps a present value.
func SomeTime(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

func (n NullTime) MarshalCSV() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return []byte(n.Time.Format(TimestampLayout)), nil
}

func (n *NullTime) UnmarshalCSV(data []byte) error {
	if len(data) == 0 {
		*n = NullTime{}
		return nil
	}
	t, err := time.Parse(TimestampLayout, string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", data, err)
	}
	*n = SomeTime(t)
	return nil
}

func (n NullTime) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Time, nil
}
