package main

import (
	"fmt"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/analytics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/impact"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/pilot"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.Field != "" {
		if res.Line > 0 {
			fmt.Printf("    -> line %d, %s = %v\n", res.Line, res.Field, res.ActualValue)
		} else if res.ActualValue != nil {
			fmt.Printf("    -> %s = %v\n", res.Field, res.ActualValue)
		}
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printOverview(o *analytics.Overview, s analytics.Sentiment) {
	fmt.Println("HITEC City Corridor Overview")
	fmt.Println("============================")
	fmt.Println()
	fmt.Printf("  Peak evening vehicles/hr:    %d\n", o.PeakEveningVehicles)
	fmt.Printf("  Avg commute for 10 km:       %.1f min\n", o.AvgCommuteMin10KM)
	fmt.Printf("  Companies in sample:         %d\n", o.Companies)
	fmt.Printf("  Survey responses:            %d\n", o.Responses)
	fmt.Printf("  Willing to shift departure:  %.1f%%\n", o.WillingPct)

	printCounts("Willingness to shift", s.Willingness)
	printCounts("Preferred evening departure", s.Slots)
	printCounts("Incentive preference", s.Incentives)

	fmt.Println()
	fmt.Println("Congestion hotspots")
	fmt.Println("-------------------")
	for _, h := range analytics.MapHotspots(dataset.Hotspots()).Hotspots {
		fmt.Printf("  %-36s %.4f, %.4f  %5.2f km at %3.0f deg\n", h.Name, h.Lat, h.Lon, h.DistanceKM, h.BearingDeg)
	}
}

func printCounts(title string, counts []analytics.Count) {
	fmt.Println()
	fmt.Println(title)
	for _, c := range counts {
		fmt.Printf("  %-20s %4d\n", c.Label, c.Count)
	}
}

func printScenario(p scenario.Parameters, base, s scenario.KPISummary) {
	fmt.Printf("Scenario: %.0f%% flex adoption x %.0f%% incentive uptake -> %s\n",
		p.FlexAdoptionRate*100, p.IncentiveUptake*100, p.TargetMode)
	fmt.Printf("Shifted %d of %d eligible commuters (%d surveyed)\n", s.Shifted, s.Eligible, s.Records)
	fmt.Println()

	fmt.Printf("%-20s %12s %12s %12s\n", "KPI", "Baseline", "Scenario", "Change")
	fmt.Printf("%-20s %12s %12s %12s\n", "--------------------", "------------", "------------", "------------")
	printKPIRow("Congestion index", base.CongestionIndex, s.CongestionIndex)
	printKPIRow("Emissions (kg/day)", base.TotalEmissionsKG, s.TotalEmissionsKG)
	printKPIRow("Mean sentiment", base.MeanSentiment, s.MeanSentiment)

	fmt.Println()
	fmt.Printf("%-12s %10s %10s\n", "Mode", "Baseline", "Scenario")
	for _, m := range dataset.Modes {
		fmt.Printf("%-12s %10d %10d\n", m, base.ModeShare[m], s.ModeShare[m])
	}

	fmt.Println()
	fmt.Printf("%-16s %8s %8s %12s %14s\n", "Company", "Records", "Shifted", "Congestion", "Emissions kg")
	for _, c := range s.Companies {
		fmt.Printf("%-16s %8d %8d %12.1f %14.2f\n", c.CompanyID, c.Records, c.Shifted, c.CongestionIndex, c.EmissionsKG)
	}
}

func printKPIRow(label string, before, after float64) {
	fmt.Printf("%-20s %12.2f %12.2f %+12.2f\n", label, before, after, after-before)
}

func printImpact(r *impact.Report, reference []dataset.EmissionEstimate) {
	a := r.Assumptions
	fmt.Printf("Impact Estimate (%.0f%% km reduction, %.0f min saved, INR %.0f/hr)\n",
		a.ReductionPct, a.TimeSavedMin, a.ValuePerHour)
	fmt.Println("================================================================")
	fmt.Println()
	fmt.Printf("  Commuters:              %d\n", r.TotalCommuters)
	fmt.Printf("  Daily km:               %d -> %d\n", r.BaselineKM, r.AfterKM)
	fmt.Printf("  Daily CO2 (tonnes):     %.2f -> %.2f (saved %.2f)\n",
		r.BaselineCO2Tonnes, r.AfterCO2Tonnes, r.CO2SavedTonnes)

	fmt.Println()
	fmt.Println("Weekly value")
	fmt.Println("------------")
	for _, item := range r.Waterfall {
		fmt.Printf("  %-20s INR %12s\n", item.Item, formatINR(item.Value))
	}

	if len(reference) > 0 {
		fmt.Println()
		fmt.Println("Reference estimates")
		fmt.Println("-------------------")
		for _, e := range reference {
			fmt.Printf("  %-36s %g %s\n", e.Metric, e.Value, e.Unit)
		}
	}
}

func printPlan(p *pilot.Plan) {
	fmt.Printf("Staggered Departure Pilot (%d companies)\n", len(p.Assignments))
	fmt.Println("=========================================")
	fmt.Println()

	fmt.Printf("%-32s %10s %10s %10s\n", "Company", "Employees", "Baseline", "Slot")
	for _, a := range p.Assignments {
		fmt.Printf("%-32s %10d %10s %10s\n", a.Company, a.Employees, a.BaselineDeparture, a.StaggeredSlot)
	}

	fmt.Println()
	fmt.Printf("%-8s %10s\n", "Slot", "Employees")
	for _, l := range p.After {
		fmt.Printf("%-8s %10d\n", l.Slot, l.Employees)
	}

	fmt.Println()
	fmt.Printf("  Peak departures before:  %d\n", p.PeakBefore)
	fmt.Printf("  Peak departures after:   %d\n", p.PeakAfter)
	fmt.Printf("  Peak smoothing:          %.1f%%\n", p.SmoothingPct)
}

// formatINR abbreviates rupee amounts in crore and lakh.
func formatINR(v int64) string {
	f := float64(v)
	if v < 0 {
		return "-" + formatINR(-v)
	}
	if f >= 1e7 {
		return fmt.Sprintf("%.2f Cr", f/1e7)
	}
	if f >= 1e5 {
		return fmt.Sprintf("%.2f L", f/1e5)
	}
	return fmt.Sprintf("%d", v)
}
