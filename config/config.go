// Package config holds the kernel's configuration record (SPEC_FULL.md §6,
// §10.3). There is no global mutable settings dictionary: every kernel
// entry point that needs configuration (the prover, the oracles) takes a
// Config value explicitly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration record recognized by the kernel and prover.
type Config struct {
	// UseClassicalLogic enables negation introduction / proof by
	// contradiction in the prover's rule table. rules.DoubleNegationElimination
	// does not read it.
	UseClassicalLogic bool `yaml:"use_classical_logic"`

	// PropsReturnProps is an API-shape toggle only (spec.md's
	// PYTHON_OPS_RETURN_PROPS): when a caller's builder layer offers
	// operator-overload-style comparisons, this selects whether they
	// return Proposition values or plain booleans. The kernel's behavior
	// is identical either way; nothing in this module reads this field.
	PropsReturnProps bool `yaml:"props_return_props"`

	// ShowAllParentheses controls an external renderer; the kernel never
	// reads it.
	ShowAllParentheses bool `yaml:"show_all_parentheses"`

	// MaxProofDepth bounds the backward prover's search depth. Zero means
	// "proportional to the size of the premises" (see prover.DefaultMaxDepth).
	MaxProofDepth int `yaml:"max_proof_depth"`
}

// Default returns the baseline configuration: classical logic enabled,
// proposition-returning comparisons disabled, parenthesization left to the
// renderer, and a premise-proportional proof depth.
func Default() Config {
	return Config{
		UseClassicalLogic: true,
	}
}

// LoadFile reads a YAML configuration file, starting from Default() so that
// a file that only overrides one field still gets sane values for the rest.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
