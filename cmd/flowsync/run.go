package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/config"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/logging"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/metrics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/publish"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/server"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/internal/session"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/analytics"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/dataset"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/impact"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/pilot"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/project"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/scenario"
	"github.com/Adharshini-Kumaresan/FlowSync-Commuter-Survey-2025---Hyderabad/pkg/validation"
)

// loadAndValidate loads the project file and checks it before any dataset is read.
func loadAndValidate(projectPath string) (*project.Project, *validation.Report, error) {
	p, err := project.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return p, project.Validate(p), nil
}

// openSession loads a valid project and all of its datasets.
func openSession(projectPath string) (*session.Session, error) {
	p, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("project has validation errors; run flowsync validate for details")
	}
	return session.Open(p)
}

func runValidate(projectPath string) error {
	p, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Datasets are only parsed once the project file itself is sound.
	if report.Valid {
		sess, err := session.Open(p)
		var dfe *dataset.DataFormatError
		switch {
		case errors.As(err, &dfe):
			report.Merge(dfe.Report)
			if report.Valid {
				report.AddError(validation.Result{Level: validation.LevelRecord, Message: dfe.Error(), Field: "datasets"})
			}
		case err != nil:
			report.AddError(validation.Result{
				Level:   validation.LevelProject,
				Message: err.Error(),
				Field:   "datasets",
			})
		default:
			_, analyticsReport := analytics.Resolve(sess.Traffic(), sess.Companies(), sess.Survey())
			report.Merge(analyticsReport)
		}
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runOverview(projectPath string, asJSON bool) error {
	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}

	overview, report := analytics.Resolve(sess.Traffic(), sess.Companies(), sess.Survey())
	sentiment := analytics.SurveySentiment(sess.Survey())

	if asJSON {
		return writeJSON(os.Stdout, map[string]any{
			"overview":   overview,
			"sentiment":  sentiment,
			"hotspots":   analytics.MapHotspots(dataset.Hotspots()),
			"validation": report,
		})
	}

	printOverview(overview, sentiment)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runSimulate(cmd *cobra.Command, projectPath string, f simulateFlags) error {
	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}

	params, err := scenarioParams(cmd, sess.Project.Scenario, f)
	if err != nil {
		return err
	}

	table := sess.Commutes()
	summary, err := scenario.Simulate(table, params)
	if err != nil {
		return err
	}
	baseline := scenario.Baseline(table)

	if f.asJSON {
		return writeJSON(os.Stdout, map[string]any{
			"parameters": params,
			"summary":    summary,
			"baseline":   baseline,
		})
	}
	printScenario(params, baseline, summary)
	return nil
}

// scenarioParams overlays the flags that were set on the project's scenario defaults.
func scenarioParams(cmd *cobra.Command, defaults scenario.Parameters, f simulateFlags) (scenario.Parameters, error) {
	params := defaults
	flags := cmd.Flags()
	if flags.Changed("flex") {
		params.FlexAdoptionRate = f.flex
	}
	if flags.Changed("uptake") {
		params.IncentiveUptake = f.uptake
	}
	if flags.Changed("target") {
		if err := params.TargetMode.UnmarshalText([]byte(f.target)); err != nil {
			return scenario.Parameters{}, err
		}
	}
	return params, nil
}

func runImpact(cmd *cobra.Command, projectPath string, f impactFlags) error {
	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}

	report, err := impact.Estimate(sess.Companies(), impactAssumptions(cmd, sess.Project.Dashboard, f))
	if err != nil {
		return err
	}

	if f.asJSON {
		return writeJSON(os.Stdout, map[string]any{
			"estimate":  report,
			"reference": sess.Emissions(),
		})
	}
	printImpact(report, sess.Emissions())
	return nil
}

// impactAssumptions overlays the flags that were set on the project's dashboard defaults.
func impactAssumptions(cmd *cobra.Command, d project.Dashboard, f impactFlags) impact.Assumptions {
	a := impact.Assumptions{ReductionPct: d.ReductionPct, TimeSavedMin: d.TimeSavedMin, ValuePerHour: d.ValuePerHour}
	flags := cmd.Flags()
	if flags.Changed("reduction") {
		a.ReductionPct = f.reduction
	}
	if flags.Changed("time-saved") {
		a.TimeSavedMin = f.timeSaved
	}
	if flags.Changed("value-per-hour") {
		a.ValuePerHour = f.valuePerHour
	}
	return a
}

func runPilot(cmd *cobra.Command, projectPath string, top int, csvPath string) error {
	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}
	plan, err := pilot.Build(sess.Companies(), pilotTopN(cmd, sess.Project.Dashboard, top))
	if err != nil {
		return err
	}
	printPlan(plan)

	if csvPath == "" {
		return nil
	}
	return writeFile(csvPath, plan.WriteCSV)
}

// pilotTopN returns the --top flag when set, else the project's top_n.
func pilotTopN(cmd *cobra.Command, d project.Dashboard, top int) int {
	if cmd.Flags().Changed("top") {
		return top
	}
	return d.TopN
}

func runExport(projectPath, name, out string) error {
	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}

	var write func(io.Writer) error
	switch name {
	case session.Commutes:
		write = func(w io.Writer) error { return dataset.WriteCommutes(w, sess.Commutes()) }
	case session.Traffic:
		write = func(w io.Writer) error { return dataset.WriteTraffic(w, sess.Traffic()) }
	case session.Companies:
		write = func(w io.Writer) error { return dataset.WriteCompanies(w, sess.Companies()) }
	case session.Survey:
		write = func(w io.Writer) error { return dataset.WriteSurvey(w, sess.Survey()) }
	case session.Emissions:
		if !sess.HasEmissions() {
			return fmt.Errorf("emissions estimates are not part of this project")
		}
		write = func(w io.Writer) error { return dataset.WriteEmissions(w, sess.Emissions()) }
	default:
		return fmt.Errorf("unknown dataset %q: expected commutes, traffic, companies, survey or emissions", name)
	}

	if out == "" {
		return write(os.Stdout)
	}
	return writeFile(out, write)
}

func runServe(cmd *cobra.Command, args []string, addr string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	projectPath := cfg.ProjectDir
	if len(args) == 1 {
		projectPath = args[0]
	}
	if cmd.Flags().Changed("addr") {
		cfg.BindAddr = addr
	}

	logs, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logs.Close()
	log := logs.Logger

	sess, err := openSession(projectPath)
	if err != nil {
		return err
	}
	log.Info("session_loaded",
		slog.String("session_id", sess.ID),
		slog.String("project_dir", sess.Project.Dir),
		slog.Any("rows", sess.Counts()))

	var publisher publish.Publisher = publish.Nop{}
	if cfg.PublishEnabled() {
		k, err := publish.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			return err
		}
		publisher = k
		log.Info("scenario_events_enabled", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
	}

	srv := server.New(sess, server.Options{
		Addr:      cfg.BindAddr,
		Logger:    log,
		Metrics:   metrics.New(),
		Publisher: publisher,
		AccessLog: logs.Writer(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown_requested", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
