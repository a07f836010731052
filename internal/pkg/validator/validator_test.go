package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "code is required"},
		{Field: "name", Message: "name is required"},
	}
	m := errs.ToMap()
	if m["code"] != "code is required" || m["name"] != "name is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "code: code is required; name: name is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
