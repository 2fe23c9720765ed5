package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Attributes holds the caller-defined fields of a record. It is stored as a
// single jsonb column so cohorts and students keep an open schema.
type Attributes map[string]any

func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *Attributes) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Attributes{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("attributes: cannot scan %T", src)
	}
}

type Cohort struct {
	ID         string     `db:"id"`
	Attributes Attributes `db:"attributes"`
}

// MarshalJSON flattens the attribute map into the top-level document, the
// shape clients see: {"id": "...", "name": "...", ...}.
func (c Cohort) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(c.Attributes)+1)
	for k, v := range c.Attributes {
		doc[k] = v
	}
	doc["id"] = c.ID
	return json.Marshal(doc)
}
