package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		err error
	}{
		{"1", 1, nil},
		{"1.0", 1, nil},
		{"99.50", 99.5, nil},
		{"12,34", 12.34, nil},
		{"0", 0, nil},
		{" 2.50 ", 2.5, nil},
		{"-1", 0, ErrNegativeAmount},
		{"-0.01", 0, ErrNegativeAmount},
		{"abc", 0, ErrInvalidAmount},
		{"1.2.3", 0, ErrInvalidAmount},
		{"", 0, ErrInvalidAmount},
		{"NaN", 0, ErrInvalidAmount},
		{"Inf", 0, ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.err == nil {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("%q expected %v, got %v", tc.in, tc.err, err)
		}
	}
}
