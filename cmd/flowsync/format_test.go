package main

import "testing"

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:          "0",
		99_999:     "99999",
		160_000:    "1.60 L",
		71_562_500: "7.16 Cr",
		-375_000:   "-3.75 L",
	}
	for in, want := range cases {
		if got := formatINR(in); got != want {
			t.Errorf("formatINR(%d) = %q, want %q", in, got, want)
		}
	}
}
