package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of strings as a jsonb column. Used for skill
// labels and stored date-range strings.
type StringList []string

// Value implements driver.Valuer for writing the list as jsonb.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// GormDataType tells GORM which column type to migrate to.
func (StringList) GormDataType() string {
	return "jsonb"
}
