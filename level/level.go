package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pourpath/state"
)

// Sentinel errors for level lookup and pack validation.
var (
	// ErrUnknownLevel is returned by Get for a name not in the pack.
	ErrUnknownLevel = errors.New("level: unknown level")

	// ErrDuplicateLevel is returned when a pack names a level twice.
	ErrDuplicateLevel = errors.New("level: duplicate level name")

	// ErrEmptyName is returned for a level without a name.
	ErrEmptyName = errors.New("level: empty level name")
)

// Parse builds the initial configuration from a raw level line.
// Surrounding whitespace and whitespace around each tube are ignored.
func Parse(raw string) (*state.State, error) {
	s, err := state.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("level: %q: %w", raw, err)
	}

	return s, nil
}

// Level is one named puzzle of a Pack.
type Level struct {
	Name  string `yaml:"name" json:"name"`
	Tubes string `yaml:"tubes" json:"tubes"`
	Note  string `yaml:"note,omitempty" json:"note,omitempty"`
}

// State parses the level's tubes.
func (l Level) State() (*state.State, error) { return Parse(l.Tubes) }
