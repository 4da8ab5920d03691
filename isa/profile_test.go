package isa

import "testing"

func TestParseProfile(t *testing.T) {
	cases := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"v4t", V4T, false},
		{"V4T", V4T, false},
		{"", V4T, false},
		{"v5te", V5TE, false},
		{"V5TE", V5TE, false},
		{"v6", V6, false},
		{"v7", 0, true},
	}
	for _, c := range cases {
		got, err := ParseProfile(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseProfile(%q) = %v, want error", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProfile(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseProfile(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
