package model

import "testing"

func TestSurveyTypeValid(t *testing.T) {
	cases := []struct {
		value SurveyType
		want  bool
	}{
		{SurveyTypeStudent, true},
		{SurveyTypeTeacher, true},
		{"", false},
		{"admin", false},
		{"Student", false},
	}
	for _, tc := range cases {
		if got := tc.value.Valid(); got != tc.want {
			t.Errorf("SurveyType(%q).Valid() = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestEnumerationOrders(t *testing.T) {
	if len(AgeRanges) != 5 || AgeRanges[0] != AgeRange8to15 || AgeRanges[4] != AgeRange40Plus {
		t.Errorf("AgeRanges = %v", AgeRanges)
	}
	if len(Genders) != 2 || Genders[0] != GenderMale {
		t.Errorf("Genders = %v", Genders)
	}
	if len(SessionLengths) != 4 || SessionLengths[0] != 20 || SessionLengths[3] != 60 {
		t.Errorf("SessionLengths = %v", SessionLengths)
	}
}
