package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	StudyPath string // hcl study files
	DakotaBin string // DAKOTA executable
	Workdir   string // root directory for study runs

	DriverName  string // run as an analysis driver instead of a study
	ParamsPath  string
	ResultsPath string

	RenderOnly bool // print rendered decks and exit

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
}

// NewConfig validates a configuration. Driver mode needs no study path;
// study mode requires one.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DriverName != "" {
		if cfg.ParamsPath == "" || cfg.ResultsPath == "" {
			return nil, errors.New("driver mode requires the parameters and results file paths")
		}
		return &cfg, nil
	}
	if cfg.StudyPath == "" {
		return nil, errors.New("StudyPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
