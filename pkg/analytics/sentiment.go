package analytics

import (
	"sort"
	"strings"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
)

// Count is the number of responses sharing one answer.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Sentiment holds the answer distributions of the commuter survey.
type Sentiment struct {
	Responses   int     `json:"responses"`
	Willingness []Count `json:"willingness"`
	Slots       []Count `json:"preferred_slots"`
	Incentives  []Count `json:"incentives"`
}

// SurveySentiment counts survey answers. Willingness and incentives are
// ordered by count descending then label; slots are ordered by slot.
// Blank answers are not counted.
func SurveySentiment(survey []dataset.SurveyResponse) Sentiment {
	willing := make(map[string]int)
	slots := make(map[string]int)
	incentives := make(map[string]int)
	for _, r := range survey {
		tally(willing, r.WillingToShift)
		tally(slots, r.PreferredSlot)
		tally(incentives, r.IncentivePreference)
	}

	s := Sentiment{
		Responses:   len(survey),
		Willingness: counts(willing),
		Slots:       counts(slots),
		Incentives:  counts(incentives),
	}
	sortByCount(s.Willingness)
	sortByCount(s.Incentives)
	sort.Slice(s.Slots, func(i, j int) bool { return s.Slots[i].Label < s.Slots[j].Label })
	return s
}

func label(raw string) string {
	return strings.TrimSpace(raw)
}

func tally(m map[string]int, raw string) {
	if l := label(raw); l != "" {
		m[l]++
	}
}

func counts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for l, n := range m {
		out = append(out, Count{Label: l, Count: n})
	}
	return out
}

func sortByCount(c []Count) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Count != c[j].Count {
			return c[i].Count > c[j].Count
		}
		return c[i].Label < c[j].Label
	})
}
