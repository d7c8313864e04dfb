// Package timex provides a wall-clock time type that stores cleanly in the
// database and serializes as RFC3339 in JSON payloads.
// Package timex 提供可存储于数据库、JSON 序列化为 RFC3339 的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dbLayout = "2006-01-02 15:04:05.999999999-07:00"

type Time time.Time

// Now returns the current time as a timex.Time.
func Now() Time {
	return Time(time.Now())
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339)
}

// MarshalJSON outputs RFC3339, matching the wire contract for
// createdAt / lastUpdatedAt.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(time.RFC3339) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timex: invalid time literal %s", s)
	}
	parsed, err := time.Parse(time.RFC3339, s[1:len(s)-1])
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer so gorm can persist the wrapper directly.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner. sqlite hands back time.Time or a string
// depending on the driver path, so both are accepted.
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	case nil:
		*t = Time(time.Time{})
		return nil
	}
	return fmt.Errorf("timex: cannot scan %T into timex.Time", v)
}

func (t *Time) scanString(s string) error {
	for _, layout := range []string{dbLayout, time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Time(parsed)
			return nil
		}
	}
	return fmt.Errorf("timex: cannot parse %q", s)
}
