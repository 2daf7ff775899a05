package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Assisted Living", "assisted-living"},
		{"Health & Wellness Programs", "health-and-wellness-programs"},
		{"Alzheimer's / Dementia Care", "alzheimers-dementia-care"},
		{"  24x7 Nursing Care  ", "24x7-nursing-care"},
		{"Yoga --- Session!!", "yoga-session"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
