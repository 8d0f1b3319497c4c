package utils

import (
	"database/sql/driver"
	"fmt"
	"time"

	"rsiboard/internal/consts"
)

// JsonTime is a time.Time that marshals to the API's fixed timestamp layout
// and scans from mysql datetime columns.
type JsonTime time.Time

func (t JsonTime) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + tt.Format(consts.ResponseTimeLayout) + `"`), nil
}

func (t *JsonTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*t = JsonTime(time.Time{})
		return nil
	}
	tt, err := time.Parse(`"`+consts.ResponseTimeLayout+`"`, s)
	if err != nil {
		return err
	}
	*t = JsonTime(tt)
	return nil
}

func (t JsonTime) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

func (t *JsonTime) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = JsonTime(value)
		return nil
	case nil:
		*t = JsonTime(time.Time{})
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JsonTime", v)
	}
}

func (t JsonTime) String() string {
	return time.Time(t).Format(consts.ResponseTimeLayout)
}
