package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowsync",
		Short: "Commuter survey analytics and what-if scenarios for the HITEC City corridor",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(overviewCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(impactCmd())
	rootCmd.AddCommand(pilotCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Check the project file and its datasets without computing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func overviewCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "overview [project-path]",
		Short: "Show the headline corridor KPIs and survey sentiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOverview(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

type simulateFlags struct {
	flex   float64
	uptake float64
	target string
	asJSON bool
}

func simulateCmd() *cobra.Command {
	var f simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Recompute commute KPIs for a flex-adoption scenario",
		Long: "Recompute commute KPIs assuming a share of flex-eligible commuters move to a target mode.\n" +
			"Flags that are not set keep the scenario defaults from flowsync.yaml.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args[0], f)
		},
	}

	f.bind(cmd)
	return cmd
}

func (f *simulateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.flex, "flex", 0, "flex adoption rate, 0 to 1")
	cmd.Flags().Float64Var(&f.uptake, "uptake", 0, "incentive uptake, 0 to 1")
	cmd.Flags().StringVar(&f.target, "target", string(dataset.ModeShuttle), "target mode: car, bus, shuttle, walk_cycle, wfh")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
}

type impactFlags struct {
	reduction    float64
	timeSaved    float64
	valuePerHour float64
	asJSON       bool
}

func impactCmd() *cobra.Command {
	var f impactFlags

	cmd := &cobra.Command{
		Use:   "impact [project-path]",
		Short: "Estimate CO2 savings and weekly economic value of a km reduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd, args[0], f)
		},
	}

	f.bind(cmd)
	return cmd
}

func (f *impactFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.reduction, "reduction", 0, "km reduction in percent, 10 to 60")
	cmd.Flags().Float64Var(&f.timeSaved, "time-saved", 0, "minutes saved per commuter per day, 5 to 60")
	cmd.Flags().Float64Var(&f.valuePerHour, "value-per-hour", 0, "value of a productive hour in INR")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
}

func pilotCmd() *cobra.Command {
	var (
		top     int
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "pilot [project-path]",
		Short: "Build a staggered departure plan for the largest employers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPilot(cmd, args[0], top, csvPath)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of companies in the pilot, 5 to 25")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write the plan as CSV to this file")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [project-path] [dataset]",
		Short: "Write a loaded dataset back out as CSV",
		Long:  "Write a loaded dataset back out as CSV. Datasets: commutes, traffic, companies, survey, emissions.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], args[1], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the dashboard data API",
		Long: "Start the dashboard data API. Settings come from FLOWSYNC_* environment variables\n" +
			"and an optional .env file; the project path defaults to FLOWSYNC_PROJECT_DIR.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default FLOWSYNC_BIND_ADDR or :8080)")
	return cmd
}
