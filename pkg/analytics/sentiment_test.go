package analytics

import (
	"testing"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
)

func TestSurveySentimentSampleProject(t *testing.T) {
	_, _, survey := loadSample(t)
	s := SurveySentiment(survey)

	if s.Responses != 20 {
		t.Errorf("Responses = %d, want 20", s.Responses)
	}

	wantWilling := []Count{{"Yes", 14}, {"No", 4}, {"Maybe", 2}}
	assertCounts(t, "willingness", s.Willingness, wantWilling)

	wantIncentives := []Count{
		{"Flexible hours", 9},
		{"Shuttle pass", 5},
		{"Meal voucher", 3},
		{"Parking discount", 3},
	}
	assertCounts(t, "incentives", s.Incentives, wantIncentives)

	if len(s.Slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(s.Slots))
	}
	if s.Slots[0].Label != "17:00" || s.Slots[11].Label != "19:45" {
		t.Errorf("slots span %s..%s, want 17:00..19:45", s.Slots[0].Label, s.Slots[11].Label)
	}
	total := 0
	for _, c := range s.Slots {
		total += c.Count
		if c.Label == "18:00" && c.Count != 5 {
			t.Errorf("18:00 count = %d, want 5", c.Count)
		}
	}
	if total != 20 {
		t.Errorf("slot counts sum to %d, want 20", total)
	}
}

func TestSurveySentimentSkipsBlank(t *testing.T) {
	survey := []dataset.SurveyResponse{
		{WillingToShift: "Yes", PreferredSlot: "", IncentivePreference: "Shuttle pass"},
		{WillingToShift: "  ", PreferredSlot: "18:00", IncentivePreference: ""},
	}
	s := SurveySentiment(survey)

	assertCounts(t, "willingness", s.Willingness, []Count{{"Yes", 1}})
	assertCounts(t, "slots", s.Slots, []Count{{"18:00", 1}})
	assertCounts(t, "incentives", s.Incentives, []Count{{"Shuttle pass", 1}})
}

func TestSurveySentimentEmpty(t *testing.T) {
	s := SurveySentiment(nil)
	if s.Responses != 0 || len(s.Willingness) != 0 || len(s.Slots) != 0 || len(s.Incentives) != 0 {
		t.Errorf("expected empty sentiment, got %+v", s)
	}
	if s.Willingness == nil {
		t.Error("counts should be empty slices, not nil")
	}
}

func assertCounts(t *testing.T, name string, got, want []Count) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", name, i, got[i], want[i])
		}
	}
}
