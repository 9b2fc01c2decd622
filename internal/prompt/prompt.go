// Package prompt is the line-based question and answer boundary used by the
// interactive edit and load commands. It reads answers from any io.Reader
// and hands them to the pure pokedex operations.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/pokedex/internal/pokedex"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// ErrNoInput is returned when the input ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask writes question and returns the next input line without surrounding
// space.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// EditPokemon asks which field to change and its new value, then applies
// the edit to pk.
func (p *Prompter) EditPokemon(pk *types.Pokemon) (*types.Pokemon, error) {
	field, err := p.Ask(fmt.Sprintf("Field to edit (%s): ", strings.Join(types.Fields, ", ")))
	if err != nil {
		return nil, err
	}
	// Reject unknown fields before asking for a value.
	canonical, ok := types.LookupField(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidField, field)
	}
	value, err := p.Ask(fmt.Sprintf("New value for %s: ", canonical))
	if err != nil {
		return nil, err
	}
	return pk.Edit(canonical, value)
}

// LoadFile asks for a roster filename and loads it into d. It returns the
// filename that was loaded.
func (p *Prompter) LoadFile(d *pokedex.Pokedex) (string, error) {
	name, err := p.Ask("Roster file to load: ")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty filename", types.ErrLoad)
	}
	if err := d.LoadFromFile(name); err != nil {
		return "", err
	}
	return name, nil
}
