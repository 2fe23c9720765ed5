package models

import "encoding/json"

type Student struct {
	ID         string     `db:"id"`
	Attributes Attributes `db:"attributes"`
}

func (s Student) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Attributes)+1)
	for k, v := range s.Attributes {
		doc[k] = v
	}
	doc["id"] = s.ID
	return json.Marshal(doc)
}
