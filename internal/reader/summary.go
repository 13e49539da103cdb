package reader

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Moment holds the four sample moments DAKOTA reports per response.
type Moment struct {
	Mean     float64 `yaml:"mean"`
	StdDev   float64 `yaml:"std_dev"`
	Skewness float64 `yaml:"skewness"`
	Kurtosis float64 `yaml:"kurtosis"`
}

// Interval holds the 95% confidence bounds on a response's mean and
// standard deviation.
type Interval struct {
	LowerMean   float64 `yaml:"lower_mean"`
	UpperMean   float64 `yaml:"upper_mean"`
	LowerStdDev float64 `yaml:"lower_std_dev"`
	UpperStdDev float64 `yaml:"upper_std_dev"`
}

// Summary aggregates the statistics parsed from a study's output.
type Summary struct {
	Evaluations         int                 `yaml:"evaluations,omitempty"`
	Moments             map[string]Moment   `yaml:"moments,omitempty"`
	ConfidenceIntervals map[string]Interval `yaml:"confidence_intervals,omitempty"`
}

// Summarize extracts whatever statistics the output text contains. Blocks
// a method does not print (an optimizer emits no sample moments) are
// simply absent from the summary.
func Summarize(outText string, table *Table) *Summary {
	s := &Summary{}
	if table != nil {
		s.Evaluations = table.Len()
	}

	if m, err := ReadMomentStatistics(outText); err == nil {
		s.Moments = make(map[string]Moment, len(m.Rows))
		for _, resp := range m.Rows {
			row, _ := m.Row(resp)
			s.Moments[resp] = Moment{
				Mean:     row["Mean"],
				StdDev:   row["StdDev"],
				Skewness: row["Skewness"],
				Kurtosis: row["Kurtosis"],
			}
		}
	}

	if m, err := ReadConfidenceIntervals(outText); err == nil {
		s.ConfidenceIntervals = make(map[string]Interval, len(m.Rows))
		for _, resp := range m.Rows {
			row, _ := m.Row(resp)
			s.ConfidenceIntervals[resp] = Interval{
				LowerMean:   row["LowerCI_Mean"],
				UpperMean:   row["UpperCI_Mean"],
				LowerStdDev: row["LowerCI_StdDev"],
				UpperStdDev: row["UpperCI_StdDev"],
			}
		}
	}

	return s
}

// WriteYAML serializes the summary.
func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
