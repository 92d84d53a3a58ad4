package component

import "testing"

func TestParseContactTag(t *testing.T) {
	cases := []struct {
		name string
		want ContactTag
	}{
		{"enemy-spawn", TagHazard},
		{"star", TagCollectible},
		{"ladder", TagClimbable},
		{"ground", TagGround},
		{"climbable", TagClimbable},
		{"sign", TagUnclassified},
		{"", TagUnclassified},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseContactTag(tc.name); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
