package pilot

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/analytics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// Departure schedule of the pilot. Every company leaves at BaselineDeparture
// today; the plan spreads them over SlotInterval steps in [FirstSlot, LastSlot].
const (
	BaselineDeparture = "18:00"
	FirstSlot         = "17:00"
	LastSlot          = "20:00"
	SlotInterval      = 15 * time.Minute
)

// Assignment places one company on a staggered departure slot.
type Assignment struct {
	Company           string `json:"company_name"`
	Employees         int    `json:"employees"`
	BaselineDeparture string `json:"baseline_departure"`
	StaggeredSlot     string `json:"staggered_slot"`
}

// SlotLoad is the number of employees departing in one slot.
type SlotLoad struct {
	Slot      string `json:"slot"`
	Employees int    `json:"employees"`
	Companies int    `json:"companies"`
}

// Plan is the before/after comparison of one staggering run.
type Plan struct {
	Assignments  []Assignment       `json:"assignments"`
	Before       []SlotLoad         `json:"before"`
	After        []SlotLoad         `json:"after"`
	PeakBefore   int                `json:"peak_before"`
	PeakAfter    int                `json:"peak_after"`
	SmoothingPct float64            `json:"smoothing_pct"`
	Report       *validation.Report `json:"report"`
}

// Slots returns the staggered departure slots as HH:MM, FirstSlot through
// LastSlot inclusive.
func Slots() []string {
	first, _ := time.Parse("15:04", FirstSlot)
	last, _ := time.Parse("15:04", LastSlot)

	var slots []string
	for t := first; !t.After(last); t = t.Add(SlotInterval) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

// Build takes the topN largest companies and assigns them to slots
// round-robin in rank order.
func Build(companies []dataset.Company, topN int) (*Plan, error) {
	if err := analytics.ValidateTopN(topN); err != nil {
		return nil, err
	}

	report := validation.NewReport()
	selected := dataset.RankCompanies(companies, topN)
	slots := Slots()

	plan := &Plan{
		Assignments: make([]Assignment, len(selected)),
		Before:      []SlotLoad{},
		Report:      report,
	}

	after := make(map[string]*SlotLoad)
	baseline := SlotLoad{Slot: BaselineDeparture}
	for i, c := range selected {
		slot := slots[i%len(slots)]
		plan.Assignments[i] = Assignment{
			Company:           c.Name,
			Employees:         c.Employees,
			BaselineDeparture: BaselineDeparture,
			StaggeredSlot:     slot,
		}

		baseline.Employees += c.Employees
		baseline.Companies++

		load, ok := after[slot]
		if !ok {
			load = &SlotLoad{Slot: slot}
			after[slot] = load
		}
		load.Employees += c.Employees
		load.Companies++
	}

	if baseline.Companies > 0 {
		plan.Before = append(plan.Before, baseline)
		plan.PeakBefore = baseline.Employees
	}

	plan.After = make([]SlotLoad, 0, len(after))
	for _, load := range after {
		plan.After = append(plan.After, *load)
		if load.Employees > plan.PeakAfter {
			plan.PeakAfter = load.Employees
		}
	}
	sort.Slice(plan.After, func(i, j int) bool { return plan.After[i].Slot < plan.After[j].Slot })

	if plan.PeakBefore > 0 {
		pct := float64(plan.PeakBefore-plan.PeakAfter) / float64(plan.PeakBefore) * 100
		plan.SmoothingPct = math.Round(pct*10) / 10
	}

	if len(selected) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: "no companies to stagger",
			Field:   "companies",
		})
	} else {
		report.AddInfo(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: fmt.Sprintf("staggered %d companies across %d of %d slots", len(selected), len(plan.After), len(slots)),
		})
	}

	return plan, nil
}

// PlanColumns is the header of the staggered plan CSV.
var PlanColumns = []string{"company_name", "estimated_employees_in_hyderabad", "baseline_departure", "staggered_slot"}

// WriteCSV writes the company assignments as CSV.
func (p *Plan) WriteCSV(w io.Writer) error {
	rows := make([][]string, len(p.Assignments))
	for i, a := range p.Assignments {
		rows[i] = []string{a.Company, strconv.Itoa(a.Employees), a.BaselineDeparture, a.StaggeredSlot}
	}
	return dataset.WriteFrame(w, PlanColumns, rows)
}
