// Package curriculum loads, grades and audits Set Theory Challenge packs:
// YAML documents pairing a prompt with a reference set expression and the
// regions it is expected to shade.
package curriculum

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gosets/pkg/setexpr"
)

// Challenge is a single exercise.
type Challenge struct {
	ID     string `yaml:"id"`
	Prompt string `yaml:"prompt,omitempty"`

	// Answer is the reference expression. Target and Count are derived
	// data and can be rebuilt from it with Regenerate.
	Answer string  `yaml:"answer,omitempty"`
	Target Regions `yaml:"target,omitempty,flow"`
	Count  *int    `yaml:"count,omitempty"`
}

// Regions is a list of region ids. A nil list means "not given" and is
// omitted when saved; an empty one is a target of no regions and is saved
// as [].
type Regions []int

// IsZero makes yaml omitempty drop only a nil list.
func (r Regions) IsZero() bool { return r == nil }

// Pack is a titled list of challenges over one universe.
type Pack struct {
	Title   string   `yaml:"title,omitempty"`
	Sets    []string `yaml:"sets,omitempty,flow"`
	Layout  string   `yaml:"layout,omitempty"`
	Include []string `yaml:"include,omitempty"`

	Challenges []Challenge `yaml:"challenges"`
}

var defaultSets = []string{"A", "B", "C"}

// Universe builds the universe the pack's challenges are posed in. Sets
// default to A, B, C; the layout defaults to venn3 for three sets and
// canonical otherwise.
func (p *Pack) Universe() (*setexpr.Universe, error) {
	sets := p.Sets
	if len(sets) == 0 {
		sets = defaultSets
	}
	layout := setexpr.LayoutCanonical
	if p.Layout == "" {
		if len(sets) == 3 {
			layout = setexpr.LayoutVenn3
		}
	} else {
		var err error
		if layout, err = setexpr.ParseLayout(p.Layout); err != nil {
			return nil, err
		}
	}
	return setexpr.NewUniverse(layout, sets...)
}

// Challenge returns the challenge with the given id.
func (p *Pack) Challenge(id string) (*Challenge, bool) {
	for i := range p.Challenges {
		if p.Challenges[i].ID == id {
			return &p.Challenges[i], true
		}
	}
	return nil, false
}

// ValidateBasic checks ids without evaluating any expression.
func (p *Pack) ValidateBasic() error {
	seen := make(map[string]bool, len(p.Challenges))
	for i, ch := range p.Challenges {
		if ch.ID == "" {
			return fmt.Errorf("challenge #%d: missing id", i+1)
		}
		if seen[ch.ID] {
			return fmt.Errorf("duplicate challenge id %q", ch.ID)
		}
		seen[ch.ID] = true
	}
	return nil
}

// Decode reads a single pack document. Include entries are kept verbatim
// and not followed; use Loader.LoadFile for that.
func Decode(r io.Reader) (*Pack, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("decoding pack: %w", err)
	}
	if err := p.ValidateBasic(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes p as YAML.
func Save(w io.Writer, p *Pack) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding pack: %w", err)
	}
	return enc.Close()
}
