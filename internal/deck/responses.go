package deck

import (
	"fmt"
	"strings"
)

// Responses declares the response functions the analysis driver computes,
// plus how their derivatives are obtained.
type Responses struct {
	Functions []string
	Gradients *Gradients
	Hessians  *Hessians
}

// NewResponses builds a response set from function descriptors.
func NewResponses(functions []string) (*Responses, error) {
	if len(functions) == 0 {
		return nil, fmt.Errorf("responses require at least one function descriptor")
	}
	seen := make(map[string]bool, len(functions))
	for _, f := range functions {
		if !ValidDescriptor(f) {
			return nil, fmt.Errorf("invalid response descriptor %q", f)
		}
		if seen[f] {
			return nil, fmt.Errorf("duplicate response descriptor %q", f)
		}
		seen[f] = true
	}
	return &Responses{Functions: functions}, nil
}

// Validate checks the derivative configuration.
func (r *Responses) Validate() error {
	if err := r.Gradients.Validate(); err != nil {
		return fmt.Errorf("gradients: %w", err)
	}
	if err := r.Hessians.Validate(); err != nil {
		return fmt.Errorf("hessians: %w", err)
	}
	return nil
}

func (r *Responses) render(b *strings.Builder, id string) {
	b.WriteString("responses\n")
	fmt.Fprintf(b, "\tid_responses = %s\n", quote(id))
	fmt.Fprintf(b, "\tresponse_functions = %d\n", len(r.Functions))
	quoted := make([]string, len(r.Functions))
	for i, f := range r.Functions {
		quoted[i] = quote(f)
	}
	fmt.Fprintf(b, "\t\tdescriptors %s\n", strings.Join(quoted, " "))
	r.Gradients.render(b)
	r.Hessians.render(b)
}
