package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Active set vector bits.
const (
	ValueBit    = 1
	GradientBit = 2
	HessianBit  = 4
)

// VariableValue is one variable entry from a parameters file. Raw preserves
// the literal token so string-valued state variables survive.
type VariableValue struct {
	Descriptor string
	Value      float64
	Raw        string
}

// ResponseRequest is one active-set entry: which parts of a response
// function DAKOTA wants for this evaluation.
type ResponseRequest struct {
	Descriptor string
	Active     int
}

// Params is a parsed DAKOTA standard-format parameters file.
type Params struct {
	EvalID              int
	Variables           []VariableValue
	Requests            []ResponseRequest
	DerivativeVariables []string
	AnalysisComponents  []string
}

// Value looks up a numeric variable value by descriptor.
func (p *Params) Value(descriptor string) (float64, bool) {
	for _, v := range p.Variables {
		if v.Descriptor == descriptor {
			return v.Value, true
		}
	}
	return 0, false
}

// paramLine is one "<value> <label>" row of the file.
type paramLine struct {
	value string
	label string
}

// ParseParams reads a DAKOTA standard-format parameters file: a variables
// count followed by value/descriptor rows, a functions count followed by
// ASV rows, then derivative variables, analysis components and the eval id.
func ParseParams(r io.Reader) (*Params, error) {
	var lines []paramLine
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed parameters line %q: want value and label", scanner.Text())
		}
		lines = append(lines, paramLine{value: fields[0], label: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}

	p := &Params{}
	pos := 0

	count, err := takeCount(lines, &pos, "variables")
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, err := take(lines, &pos)
		if err != nil {
			return nil, fmt.Errorf("variables section truncated: %w", err)
		}
		v := VariableValue{Descriptor: line.label, Raw: line.value}
		// Non-numeric tokens are legal for discrete string states.
		if f, ferr := strconv.ParseFloat(line.value, 64); ferr == nil {
			v.Value = f
		}
		p.Variables = append(p.Variables, v)
	}

	count, err = takeCount(lines, &pos, "functions")
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, err := take(lines, &pos)
		if err != nil {
			return nil, fmt.Errorf("functions section truncated: %w", err)
		}
		asv, err := strconv.Atoi(line.value)
		if err != nil || asv < 0 || asv > ValueBit|GradientBit|HessianBit {
			return nil, fmt.Errorf("invalid active set value %q for %q", line.value, line.label)
		}
		desc := line.label
		if idx := strings.IndexByte(desc, ':'); idx >= 0 {
			desc = desc[idx+1:]
		}
		p.Requests = append(p.Requests, ResponseRequest{Descriptor: desc, Active: asv})
	}

	count, err = takeCount(lines, &pos, "derivative_variables")
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, err := take(lines, &pos)
		if err != nil {
			return nil, fmt.Errorf("derivative variables section truncated: %w", err)
		}
		idx, err := strconv.Atoi(line.value)
		if err != nil || idx < 1 || idx > len(p.Variables) {
			return nil, fmt.Errorf("derivative variable index %q out of range", line.value)
		}
		p.DerivativeVariables = append(p.DerivativeVariables, p.Variables[idx-1].Descriptor)
	}

	count, err = takeCount(lines, &pos, "analysis_components")
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		line, err := take(lines, &pos)
		if err != nil {
			return nil, fmt.Errorf("analysis components section truncated: %w", err)
		}
		p.AnalysisComponents = append(p.AnalysisComponents, line.value)
	}

	line, err := take(lines, &pos)
	if err != nil || line.label != "eval_id" {
		return nil, fmt.Errorf("parameters file missing eval_id")
	}
	p.EvalID, err = strconv.Atoi(line.value)
	if err != nil {
		return nil, fmt.Errorf("invalid eval_id %q", line.value)
	}

	return p, nil
}

// LoadParams reads and parses a parameters file from disk.
func LoadParams(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parameters file: %w", err)
	}
	defer f.Close()
	return ParseParams(f)
}

func take(lines []paramLine, pos *int) (paramLine, error) {
	if *pos >= len(lines) {
		return paramLine{}, fmt.Errorf("unexpected end of file")
	}
	line := lines[*pos]
	*pos++
	return line, nil
}

func takeCount(lines []paramLine, pos *int, section string) (int, error) {
	line, err := take(lines, pos)
	if err != nil {
		return 0, fmt.Errorf("missing %s section: %w", section, err)
	}
	if line.label != section {
		return 0, fmt.Errorf("expected %s section, found %q", section, line.label)
	}
	count, err := strconv.Atoi(line.value)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid %s count %q", section, line.value)
	}
	return count, nil
}
