package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dakotatools/dakgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dakgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dakgo - A declarative DAKOTA study toolkit.

Usage:
  dakgo [options] [STUDY_PATH]
  dakgo -driver NAME PARAMS_FILE RESULTS_FILE

Arguments:
  STUDY_PATH
    Path to a single .hcl study file or a directory containing .hcl files.

The second form runs a single analysis driver evaluation; DAKOTA's
generated shim script invokes it once per evaluation.

Options:
`)
		flagSet.PrintDefaults()
	}

	studyFlag := flagSet.String("study", "", "Path to the study file or directory.")
	sFlag := flagSet.String("s", "", "Path to the study file or directory (shorthand).")
	driverFlag := flagSet.String("driver", "", "Run one analysis driver evaluation instead of a study.")
	binFlag := flagSet.String("bin", "dakota", "Path to the DAKOTA executable.")
	workdirFlag := flagSet.String("workdir", "dakota_study", "Root directory for study run artifacts.")
	renderFlag := flagSet.Bool("render", false, "Print the rendered input decks and exit without running DAKOTA.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of studies to run concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *driverFlag != "" {
		if flagSet.NArg() != 2 {
			return nil, false, &ExitError{Code: 2, Message: "driver mode requires exactly two arguments: PARAMS_FILE RESULTS_FILE"}
		}
		config, err := app.NewConfig(app.Config{
			DriverName:  *driverFlag,
			ParamsPath:  flagSet.Arg(0),
			ResultsPath: flagSet.Arg(1),
			LogFormat:   logFormat,
			LogLevel:    logLevel,
		})
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		return config, false, nil
	}

	path := ""
	if *studyFlag != "" {
		path = *studyFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Study path determined.", "path", path)

	if path == "" {
		slog.Debug("No study path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		StudyPath:       path,
		DakotaBin:       *binFlag,
		Workdir:         *workdirFlag,
		RenderOnly:      *renderFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
