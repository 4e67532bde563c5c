package compat

import "fmt"

const (
	StrategyPrefix  = "prefix"
	StrategyRules   = "rules"
	StrategyPattern = "pattern"
)

// Config selects and parameterizes a compatibility strategy.
type Config struct {
	// Strategy is one of "prefix", "rules" or "pattern".
	Strategy string `mapstructure:"strategy" default:"prefix"`

	// Separator is the token separator for the prefix strategy.
	Separator string `mapstructure:"separator" default:" "`

	// Rules is the adjacency table for the rules strategy.
	Rules map[string][]string `mapstructure:"rules"`

	// Patterns is the bucket table for the pattern strategy.
	Patterns map[string][]string `mapstructure:"patterns"`
}

// Build constructs the configured strategy, failing fast on an unknown
// strategy name or an empty table.
func (c Config) Build() (Strategy, error) {
	switch c.Strategy {
	case StrategyPrefix, "":
		return NewPrefixStrategy(c.Separator), nil
	case StrategyRules:
		return NewRulesStrategy(c.Rules)
	case StrategyPattern:
		return NewPatternStrategy(c.Patterns)
	default:
		return nil, fmt.Errorf("compat: unknown strategy %q", c.Strategy)
	}
}
