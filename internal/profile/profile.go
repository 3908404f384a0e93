package profile

import (
	"encoding/json"
	"errors"

	"github.com/mousemapper/mousemapper/internal/karabiner"
)

// Errors returned by profile assembly.
var (
	// ErrEmptyProfile indicates a profile with no rules.
	ErrEmptyProfile = errors.New("profile has no rules")

	// ErrEmptyRule indicates a rule with no manipulators.
	ErrEmptyRule = errors.New("rule has no manipulators")
)

// Rule is one named group of manipulators.
type Rule struct {
	Description  string                   `json:"description"`
	Manipulators []*karabiner.Manipulator `json:"manipulators"`
}

// Profile is the engine's persisted rule group format.
type Profile struct {
	Title string `json:"title"`
	Rules []Rule `json:"rules"`
}

// New creates an empty profile with the given title.
func New(title string) *Profile {
	return &Profile{Title: title}
}

// AddRule appends a rule grouping the given manipulators.
func (p *Profile) AddRule(description string, manipulators ...*karabiner.Manipulator) {
	p.Rules = append(p.Rules, Rule{
		Description:  description,
		Manipulators: manipulators,
	})
}

// ManipulatorCount returns the total number of manipulators across rules.
func (p *Profile) ManipulatorCount() int {
	n := 0
	for _, r := range p.Rules {
		n += len(r.Manipulators)
	}
	return n
}

// JSON serializes the profile with two-space indentation, the format the
// engine's own editor produces.
func (p *Profile) JSON() ([]byte, error) {
	if len(p.Rules) == 0 {
		return nil, ErrEmptyProfile
	}
	for _, r := range p.Rules {
		if len(r.Manipulators) == 0 {
			return nil, ErrEmptyRule
		}
	}
	return json.MarshalIndent(p, "", "  ")
}
