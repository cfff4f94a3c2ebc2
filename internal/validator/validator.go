package validator

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arcanaland/patience/internal/board"
	"github.com/arcanaland/patience/internal/config"
	"github.com/arcanaland/patience/internal/render"
	"github.com/arcanaland/patience/internal/variant/shenzhen"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file and, when it parses, whether the game it
// describes can be dealt.
func (v *Validator) Validate() (ValidationResults, error) {
	cfg, err := v.validateConfigToml()
	if err != nil {
		return v.Results, err
	}

	v.validateEnv(cfg)
	if !v.validateVariant(cfg) {
		return v.Results, nil
	}
	v.validateLayout(cfg)
	v.validatePalette(cfg)

	return v.Results, nil
}

func (v *Validator) validateConfigToml() (*config.Config, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg, md, err := config.Decode(v.ConfigPath)
	if err != nil {
		return nil, err
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key %s in config file", key))
	}
	return cfg, nil
}

// validateEnv reports environment variables that would not parse or that
// change what the file says.
func (v *Validator) validateEnv(cfg *config.Config) {
	withEnv := *cfg
	if err := config.ApplyEnv(&withEnv); err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}
	if withEnv.Pattern != cfg.Pattern || withEnv.Stacks != cfg.Stacks || withEnv.Variant != cfg.Variant {
		v.Results.Warnings = append(v.Results.Warnings,
			"PATIENCE_* environment variables override the layout in this file")
	}
}

func (v *Validator) validateVariant(cfg *config.Config) bool {
	if cfg.Variant != shenzhen.Name {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported variant: %q (supported: %s)", cfg.Variant, shenzhen.Name))
		return false
	}
	return true
}

// validateLayout dry-runs the deal with the variant's deck.
func (v *Validator) validateLayout(cfg *config.Config) {
	cards := shenzhen.Deck{}.Generate()

	sizes, err := board.Shape(len(cards), cfg.Pattern, cfg.Stacks)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("cannot deal %d cards: %v", len(cards), err))
		return
	}

	switch cfg.Pattern {
	case board.Even:
		if sizes[0] != sizes[len(sizes)-1] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("even deal over %d stacks leaves uneven stacks: %v", cfg.Stacks, sizes))
		}
	case board.Descending:
		if n := len(sizes); n > 1 && sizes[n-1] >= sizes[n-2] {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("descending deal leaves the last stack no shorter than the one before it: %v", sizes))
		}
	}

	if cfg.Pattern != shenzhen.Pattern || cfg.Stacks != shenzhen.Stacks {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("layout differs from the standard %s table (%s over %d stacks)",
				shenzhen.Name, shenzhen.Pattern, shenzhen.Stacks))
	}
}

func (v *Validator) validatePalette(cfg *config.Config) {
	names := make([]string, 0, len(cfg.Palette))
	for name := range cfg.Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := cfg.Palette[name]
		if _, err := shenzhen.ParseSuit(name); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("palette: %v", err))
			continue
		}
		if _, err := render.ParseStyle(spec); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("palette.%s: %v", strings.ToLower(name), err))
		}
	}
}
