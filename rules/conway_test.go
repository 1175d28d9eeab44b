package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	cases := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{0, true, false},  // isolation
		{1, true, false},  // isolation
		{2, true, true},   // survival at lower limit
		{3, true, true},   // survival at upper limit
		{4, true, false},  // overpopulation
		{8, true, false},  // overpopulation
		{2, false, false}, // dead cell stays dead
		{3, false, true},  // reproduction
		{4, false, false},
		{0, false, false},
	}
	for _, c := range cases {
		if got := ApplyConwayRules(c.neighbors, c.alive); got != c.want {
			t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v",
				c.neighbors, c.alive, got, c.want)
		}
	}
}
