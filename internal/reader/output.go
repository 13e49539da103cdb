package reader

import (
	"fmt"
	"strings"
)

// Section markers in DAKOTA console output.
const (
	momentsMarker   = "Sample moment statistics for each response function"
	intervalsMarker = "confidence intervals for each response function"
	pearsonMarker   = "Partial Correlation Matrix between input and output:"
	spearmanMarker  = "Partial Rank Correlation Matrix between input and output:"
	blockEnd        = "\n\n"
)

// ReadMomentStatistics parses the sample moment statistics block: one row
// per response function with Mean, StdDev, Skewness and Kurtosis columns.
func ReadMomentStatistics(text string) (*Matrix, error) {
	block, err := SnipText(text, momentsMarker, blockEnd, false)
	if err != nil {
		return nil, fmt.Errorf("moment statistics: %w", err)
	}
	// "Std Dev" is two words in DAKOTA's header; fold it so columns split
	// cleanly on whitespace.
	block = strings.ReplaceAll(block, "Std Dev", "StdDev")
	m, err := parseLabeledTable(block)
	if err != nil {
		return nil, fmt.Errorf("moment statistics: %w", err)
	}
	return m, nil
}

// ReadConfidenceIntervals parses the 95% confidence interval block.
func ReadConfidenceIntervals(text string) (*Matrix, error) {
	block, err := SnipText(text, intervalsMarker, blockEnd, false)
	if err != nil {
		return nil, fmt.Errorf("confidence intervals: %w", err)
	}
	m, err := parseLabeledTable(block)
	if err != nil {
		return nil, fmt.Errorf("confidence intervals: %w", err)
	}
	return m, nil
}

// ReadPearsonMatrix parses the partial correlation matrix: variables as
// rows, response functions as columns.
func ReadPearsonMatrix(text string) (*Matrix, error) {
	block, err := SnipText(text, pearsonMarker, blockEnd, true)
	if err != nil {
		return nil, fmt.Errorf("partial correlation matrix: %w", err)
	}
	m, err := parseLabeledTable(block)
	if err != nil {
		return nil, fmt.Errorf("partial correlation matrix: %w", err)
	}
	return m, nil
}

// ReadSpearmanMatrix parses the partial rank correlation matrix.
func ReadSpearmanMatrix(text string) (*Matrix, error) {
	block, err := SnipText(text, spearmanMarker, blockEnd, true)
	if err != nil {
		return nil, fmt.Errorf("partial rank correlation matrix: %w", err)
	}
	m, err := parseLabeledTable(block)
	if err != nil {
		return nil, fmt.Errorf("partial rank correlation matrix: %w", err)
	}
	return m, nil
}
