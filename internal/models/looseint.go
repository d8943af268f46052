package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LooseInt is an int that unmarshals from either a JSON number or a quoted
// numeric string, so form-originated payloads like {"duration":"30"} coerce
// the same as {"duration":30}.
type LooseInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *LooseInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a whole number: %q", s)
	}
	*n = LooseInt(v)
	return nil
}
