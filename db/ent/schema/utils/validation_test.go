package utils

import (
	"strings"
	"testing"
)

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("Active", "Lapsed", "Matured", "Surrendered")

	for _, ok := range []string{"Active", "Lapsed", "Matured", "Surrendered"} {
		if err := validate(ok); err != nil {
			t.Errorf("%q rejected: %v", ok, err)
		}
	}

	err := validate("Pending")
	if err == nil {
		t.Fatal("unlisted value accepted")
	}
	if !strings.Contains(err.Error(), "Pending") || !strings.Contains(err.Error(), "Active") {
		t.Errorf("error does not name the value and the allowed set: %v", err)
	}
}
