// File: /models/types.go
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"cars-api/utils"
)

// NumericString keeps a JSON string verbatim, and a JSON number as its
// integer part, so it can be validated and coerced later. JSON null, false and
// numeric zero decode to "".
type NumericString string

// UnmarshalJSON implements json.Unmarshaler interface
func (ns *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*ns = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*ns = NumericString(s)
		return nil
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*ns = NumericString(data)
			return nil
		}
		if f == 0 {
			*ns = ""
			return nil
		}
		// Numbers are converted by value so 2.023e3 reads as 2023.
		*ns = NumericString(strconv.FormatFloat(math.Trunc(f), 'f', 0, 64))
		return nil
	default:
		*ns = NumericString(data)
		return nil
	}
}

// Provided reports whether a value was sent at all.
func (ns NumericString) Provided() bool {
	return ns != ""
}

// Int coerces the value using leading-integer parsing.
func (ns NumericString) Int() (int, bool) {
	return utils.ParseLeadingInt(string(ns))
}
