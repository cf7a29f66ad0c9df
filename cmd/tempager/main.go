// tempager is a munin plugin for the AVTECH TemPageR 4E temperature
// sensor (firmware v2.6.0). One invocation performs a single fetch,
// repair, classify and render cycle, then exits.
//
// The output mode is selected by the first argument, munin-style:
//
//	tempager config   munin graph definition
//	tempager alert    one-line status summary, severity exit code
//	tempager          current values (default)
//
// Configuration comes from the environment, see internal/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jakeobsen/monitoring-plugins/internal/config"
	"github.com/jakeobsen/monitoring-plugins/internal/logger"
	"github.com/jakeobsen/monitoring-plugins/internal/models"
	"github.com/jakeobsen/monitoring-plugins/internal/payload"
	"github.com/jakeobsen/monitoring-plugins/internal/report"
	"github.com/jakeobsen/monitoring-plugins/internal/sensor"

	"go.uber.org/zap"
)

const (
	modeConfig = "config"
	modeAlert  = "alert"

	// exitFatal is the original plugin's exit status for connect and
	// parse failures in config/value modes. Alert mode maps failures
	// to the Unknown severity exit code instead.
	exitFatal = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()
	mode := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return fatalCode(mode)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return fatalCode(mode)
	}
	defer log.Sync()

	client := sensor.NewClient(cfg.Sensor.Host, cfg.Sensor.Timeout, log)

	raw, err := client.Fetch(context.Background())
	if err != nil {
		log.Error("Unable to fetch sensor data", zap.Error(err))
		return fatalCode(mode)
	}

	readings, err := payload.Normalize(raw, cfg.Graph.Scale)
	if err != nil {
		log.Error("Unable to parse sensor payload", zap.Error(err))
		return fatalCode(mode)
	}

	switch mode {
	case modeConfig:
		report.WriteGraphConfig(os.Stdout, readings, report.GraphConfig{
			Title:    cfg.Graph.Title,
			Warning:  cfg.Graph.Warning,
			Critical: cfg.Graph.Critical,
			Scale:    cfg.Graph.Scale,
		})
		return 0
	case modeAlert:
		classified := report.Classify(readings, cfg.Graph.Warning, cfg.Graph.Critical, cfg.Graph.Scale)
		summary, aggregate := report.AlertSummary(classified, cfg.Graph.Scale)
		fmt.Fprintln(os.Stdout, summary)
		return aggregate.ExitCode()
	default:
		report.WriteValues(os.Stdout, readings, cfg.Graph.Scale)
		return 0
	}
}

// fatalCode picks the failure exit status for the active mode: alert
// consumers read exit codes as severities, so failures there must map
// to Unknown rather than Critical.
func fatalCode(mode string) int {
	if mode == modeAlert {
		return models.SeverityUnknown.ExitCode()
	}
	return exitFatal
}
