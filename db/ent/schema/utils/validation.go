package utils

import (
	"fmt"
	"strings"
)

// EnumValidator restricts a string field to a fixed value set. The policy
// status field uses it to keep free-text extracts out of the lifecycle column.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not one of [%s]", s, strings.Join(allowed, ", "))
	}
}
