package validator

import (
	"strings"
	"testing"
)

func TestFits(t *testing.T) {
	cases := []struct {
		value     string
		precision int
		scale     int
		want      bool
	}{
		{"65.4300", 8, 4, true},
		{"0", 8, 4, true},
		{"100", 8, 4, true},
		{"9999.9999", 8, 4, true},
		{"-42.5", 8, 4, true},
		{"0.00000001", 20, 8, true},
		{"123456789012.12345678", 20, 8, true},

		// five integral digits, then five fractional digits
		{"12345.1", 8, 4, false},
		{"65.12345", 8, 4, false},
		{"100.123456789", 20, 8, false},
		{"", 8, 4, false},
		{"abc", 8, 4, false},
		{"1.2.3", 8, 4, false},
	}
	for _, tc := range cases {
		if got := Fits(tc.value, tc.precision, tc.scale); got != tc.want {
			t.Errorf("Fits(%q, %d, %d) = %v, want %v", tc.value, tc.precision, tc.scale, got, tc.want)
		}
	}
}

func TestStructDecimalTag(t *testing.T) {
	type payload struct {
		RSI string `json:"rsi_value" binding:"required,decimal=8.4"`
	}

	if err := Struct(&payload{RSI: "70.25"}); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
	if err := Struct(&payload{RSI: "12345.12345"}); err == nil {
		t.Error("over-precision value accepted")
	}
	if err := Struct(&payload{RSI: ""}); err == nil {
		t.Error("missing required value accepted")
	}
}

func TestStructUsesJsonFieldNames(t *testing.T) {
	type payload struct {
		Email string `json:"email" binding:"required,email"`
	}

	err := Struct(&payload{Email: "nope"})
	if err == nil {
		t.Fatal("bad email accepted")
	}
	if got := err.Error(); !strings.Contains(got, "email") {
		t.Errorf("message should name the json field, got %q", got)
	}
}
