// Package reader extracts structured data from DAKOTA output artifacts:
// moment statistics, confidence intervals and correlation matrices from
// the console output, and evaluation histories from tabular data files.
package reader

import (
	"fmt"
	"strings"
)

// SnipText cuts the region of text beginning at the start marker and ending
// before the first occurrence of end after it. The start marker is included
// in the result. With allowEOF set, a missing end marker snips to the end
// of the text instead of failing.
func SnipText(text, start, end string, allowEOF bool) (string, error) {
	c0 := strings.Index(text, start)
	if c0 == -1 {
		return "", fmt.Errorf("starting string %q was not found in text", start)
	}
	c1 := strings.Index(text[c0:], end)
	if c1 == -1 {
		if !allowEOF {
			return "", fmt.Errorf("ending string %q was not found in text", end)
		}
		return text[c0:], nil
	}
	return text[c0 : c0+c1], nil
}
