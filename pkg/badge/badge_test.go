package badge

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		Tag      string
		Expected Kind
	}{
		{Tag: "Personality & Behavior", Expected: KindSoft},
		{Tag: "Personality", Expected: KindSoft},
		{Tag: "Behavioral Traits", Expected: KindSoft},
		{Tag: "Competencies", Expected: KindSoft},
		{Tag: "Core Competency", Expected: KindSoft},
		{Tag: "Knowledge & Skills", Expected: KindDefault},
		{Tag: "Ability & Aptitude", Expected: KindDefault},
		{Tag: "personality", Expected: KindDefault},
		{Tag: "", Expected: KindDefault},
	}

	for _, tc := range testCases {
		t.Run(tc.Tag, func(t *testing.T) {
			if e, g := tc.Expected, Classify(tc.Tag); e != g {
				t.Errorf("Classify(%q): expected %q, got %q", tc.Tag, e, g)
			}
		})
	}
}
