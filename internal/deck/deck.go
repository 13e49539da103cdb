package deck

import (
	"fmt"
	"strings"
)

// Deck is a DAKOTA input deck builder. Variables keep their insertion
// order; descriptors are unique across the whole deck.
type Deck struct {
	name        string
	variables   []Variable
	index       map[string]Variable
	method      Method
	responses   *Responses
	iface       *Interface
	environment *Environment
}

// New creates an empty deck. The name becomes the id_method, id_interface
// and id_responses strings in the rendered text.
func New(name string) *Deck {
	return &Deck{
		name:        name,
		index:       make(map[string]Variable),
		environment: DefaultEnvironment(),
	}
}

// Name returns the deck's identifier.
func (d *Deck) Name() string { return d.name }

// AddVariable appends a variable, rejecting duplicate descriptors.
func (d *Deck) AddVariable(v Variable) error {
	desc := v.Descriptor()
	if !ValidDescriptor(desc) {
		return fmt.Errorf("invalid descriptor %q", desc)
	}
	if _, exists := d.index[desc]; exists {
		return fmt.Errorf("duplicate variable descriptor %q", desc)
	}
	d.variables = append(d.variables, v)
	d.index[desc] = v
	return nil
}

// Variable looks up a variable by descriptor.
func (d *Deck) Variable(descriptor string) (Variable, bool) {
	v, ok := d.index[descriptor]
	return v, ok
}

// Descriptors returns all variable descriptors in insertion order.
func (d *Deck) Descriptors() []string {
	descs := make([]string, len(d.variables))
	for i, v := range d.variables {
		descs[i] = v.Descriptor()
	}
	return descs
}

// Variables returns the deck's variables in insertion order.
func (d *Deck) Variables() []Variable { return d.variables }

// SetMethod sets the deck's iteration method.
func (d *Deck) SetMethod(m Method) { d.method = m }

// Method returns the deck's iteration method, if set.
func (d *Deck) Method() Method { return d.method }

// SetResponses sets the deck's response declaration.
func (d *Deck) SetResponses(r *Responses) { d.responses = r }

// Responses returns the deck's response declaration, if set.
func (d *Deck) Responses() *Responses { return d.responses }

// SetInterface sets the deck's analysis interface.
func (d *Deck) SetInterface(i *Interface) { d.iface = i }

// Interface returns the deck's analysis interface, if set.
func (d *Deck) Interface() *Interface { return d.iface }

// SetEnvironment replaces the default environment block.
func (d *Deck) SetEnvironment(e *Environment) { d.environment = e }

// Validate checks the deck is complete and internally consistent.
func (d *Deck) Validate() error {
	if len(d.variables) == 0 {
		return fmt.Errorf("deck %q has no variables", d.name)
	}
	if d.method == nil {
		return fmt.Errorf("deck %q has no method", d.name)
	}
	if d.responses == nil {
		return fmt.Errorf("deck %q has no responses", d.name)
	}
	if d.iface == nil {
		return fmt.Errorf("deck %q has no interface", d.name)
	}
	if err := d.responses.Validate(); err != nil {
		return fmt.Errorf("deck %q: %w", d.name, err)
	}
	if err := d.iface.Validate(); err != nil {
		return fmt.Errorf("deck %q: %w", d.name, err)
	}
	if d.method.RequiresGradients() && !d.responses.Gradients.Enabled() {
		return fmt.Errorf("deck %q: method %s requires gradients but responses declare none",
			d.name, d.method.ID())
	}
	return nil
}

// Render emits the full DAKOTA input deck text.
func (d *Deck) Render() (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	d.environment.render(&b)
	b.WriteString("\n")
	b.WriteString("method\n")
	fmt.Fprintf(&b, "\tid_method = %s\n", quote(d.name))
	d.method.render(&b)
	b.WriteString("\n")
	b.WriteString(d.renderVariables())
	b.WriteString("\n")
	d.iface.render(&b, d.name)
	b.WriteString("\n")
	d.responses.render(&b, d.name)
	return b.String(), nil
}

// renderVariables formats the variables section, grouping variables by
// kind in order of first appearance.
func (d *Deck) renderVariables() string {
	var b strings.Builder
	b.WriteString("variables\n")

	var kinds []Kind
	groups := make(map[Kind][]Variable)
	for _, v := range d.variables {
		k := v.Kind()
		if _, seen := groups[k]; !seen {
			kinds = append(kinds, k)
		}
		groups[k] = append(groups[k], v)
	}

	for _, k := range kinds {
		vars := groups[k]
		b.WriteString("\n")
		fmt.Fprintf(&b, "\t%s  %d\n", k, len(vars))

		rows := []tableRow{{key: "descriptors"}}
		for _, v := range vars {
			rows[0].cells = append(rows[0].cells, quote(v.Descriptor()))
		}
		for i, row := range vars[0].rows() {
			rows = append(rows, tableRow{key: row.key})
			for _, v := range vars {
				rows[i+1].cells = append(rows[i+1].cells, v.rows()[i].value)
			}
		}
		writeAligned(&b, "\t\t", rows)
	}
	return b.String()
}
