package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray stores string lists (screenshot paths) as a JSON column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(value any) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("model.StringArray: unsupported Scan type %T", value)
	}

	if len(raw) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(raw, a)
}

// CountMap stores a label -> count mapping (achievement reactions) as a
// JSON column.
type CountMap map[string]int

func (m CountMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]int(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *CountMap) Scan(value any) error {
	if value == nil {
		*m = CountMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("model.CountMap: unsupported Scan type %T", value)
	}

	if len(raw) == 0 {
		*m = CountMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}
