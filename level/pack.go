package level

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pourpath/tube"
)

//go:embed levels.yaml
var builtinYAML []byte

// Pack is a named collection of levels plus a color legend.
type Pack struct {
	Colors map[string]string `yaml:"colors,omitempty"`
	Levels []Level           `yaml:"levels"`

	index map[string]int
}

// Decode reads a YAML pack from r and validates every level.
//
// Errors:
//   - yaml decoding errors.
//   - ErrEmptyName, ErrDuplicateLevel.
//   - state construction errors, wrapped with the level name.
func Decode(r io.Reader) (*Pack, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("level: decode pack: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile decodes the pack stored at path.
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open pack: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Builtin returns the pack embedded in the binary: level1, level3 and
// level77 with the color legend. It panics if the embedded file is broken.
func Builtin() *Pack {
	p, err := Decode(bytes.NewReader(builtinYAML))
	if err != nil {
		panic(err)
	}

	return p
}

func (p *Pack) validate() error {
	p.index = make(map[string]int, len(p.Levels))
	for i, l := range p.Levels {
		if l.Name == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if _, dup := p.index[l.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLevel, l.Name)
		}
		if _, err := l.State(); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
		p.index[l.Name] = i
	}

	return nil
}

// Get returns the level called name.
func (p *Pack) Get(name string) (Level, error) {
	i, ok := p.index[name]
	if !ok {
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return p.Levels[i], nil
}

// Names lists level names in pack order.
func (p *Pack) Names() []string {
	out := make([]string, len(p.Levels))
	for i, l := range p.Levels {
		out[i] = l.Name
	}

	return out
}

// ColorName returns the legend entry for c, or c itself when unlisted.
func (p *Pack) ColorName(c tube.Color) string {
	if name, ok := p.Colors[string(rune(c))]; ok {
		return name
	}

	return string(rune(c))
}

// Encode writes p as YAML.
func (p *Pack) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("level: encode pack: %w", err)
	}

	return enc.Close()
}
