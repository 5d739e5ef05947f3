package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a permissive string field. Numbers and booleans are rendered as text,
// anything else (null, objects, arrays) decodes to the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(decodeScalar(data))
	return nil
}

// Value implements the driver.Valuer interface
func (t Text) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements the sql.Scanner interface
func (t *Text) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case []byte:
		*t = Text(v)
	case string:
		*t = Text(v)
	default:
		*t = Text(fmt.Sprint(v))
	}
	return nil
}

// String returns the trimmed text
func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// StringList is a permissive list of strings stored as JSON text in SQL.
// A bare string decodes to a one-element list, null to an empty list.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (a *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		if s := decodeScalar(data); s != "" {
			*a = StringList{s}
		} else {
			*a = StringList{}
		}
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		*a = StringList{}
		return nil
	}

	list := make(StringList, 0, len(elems))
	for _, e := range elems {
		if s := decodeScalar(e); s != "" {
			list = append(list, s)
		}
	}
	*a = list
	return nil
}

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*a = StringList{}
		return nil
	}

	return a.UnmarshalJSON(data)
}

func decodeScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return ""
		}
		return strconv.FormatBool(b)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return ""
		}
		return n.String()
	}
	return ""
}
