package rule

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Template is the portable form of a scoring template: the shape stored in
// the database, exchanged through the transfer relay and kept in TOML files.
type Template struct {
	Name         string             `json:"name" toml:"name"`
	Rules        map[string]float64 `json:"rules" toml:"rules"`
	RulesEnabled map[string]bool    `json:"rules_enabled" toml:"rules_enabled"`
}

// NewTemplate captures a table under the given name.
func NewTemplate(name string, t Table) Template {
	return Template{
		Name:         name,
		Rules:        t.Values(),
		RulesEnabled: t.EnabledMap(),
	}
}

// DefaultTemplate is the seed every fresh store starts with.
func DefaultTemplate() Template {
	return NewTemplate("Default Rules", Defaults())
}

func (tpl Template) Table() (Table, error) {
	return Load(tpl.Rules, tpl.RulesEnabled)
}

// toml integers do not decode into float64 fields, so values arrive untyped.
type tomlTemplate struct {
	Name         string                 `toml:"name"`
	Rules        map[string]interface{} `toml:"rules"`
	RulesEnabled map[string]bool        `toml:"rules_enabled"`
}

// DecodeTOML reads a template file. The rule keys are checked by Table, not
// here, so a file can be inspected even when it does not load.
func DecodeTOML(r io.Reader) (Template, error) {
	var raw tomlTemplate
	if _, err := toml.DecodeReader(r, &raw); err != nil {
		return Template{}, errors.Wrap(err, "decode template")
	}

	tpl := Template{
		Name:         raw.Name,
		Rules:        make(map[string]float64, len(raw.Rules)),
		RulesEnabled: raw.RulesEnabled,
	}
	for k, v := range raw.Rules {
		switch n := v.(type) {
		case int64:
			tpl.Rules[k] = float64(n)
		case float64:
			tpl.Rules[k] = n
		default:
			return Template{}, errors.Errorf("rule %s: value %v is not a number", k, v)
		}
	}
	return tpl, nil
}

func EncodeTOML(w io.Writer, tpl Template) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(tpl), "encode template")
}
