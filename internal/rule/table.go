package rule

import (
	"github.com/lonng/twmj/internal/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "rule")

// Entry is the configured payout of one rule and whether it may fire.
type Entry struct {
	Value   float64 `json:"value"`
	Enabled bool    `json:"enabled"`
}

// Table is a complete rule table, one entry per key. It is a value type and
// is read as a snapshot for the whole of a scoring call.
type Table [Count]Entry

// Defaults is the library table: every key at its default value, enabled.
func Defaults() Table {
	var t Table
	for _, k := range Keys() {
		t[k] = Entry{Value: k.Default(), Enabled: true}
	}
	return t
}

func (t *Table) Value(k Key) float64 { return t[k].Value }

func (t *Table) Enabled(k Key) bool { return t[k].Enabled }

// Pay returns the value of k and whether the rule may fire at all.
func (t *Table) Pay(k Key) (float64, bool) {
	e := t[k]
	if !e.Enabled {
		return 0, false
	}
	return e.Value, true
}

func (t *Table) Set(k Key, v float64) { t[k].Value = v }

func (t *Table) Enable(k Key, enabled bool) { t[k].Enabled = enabled }

// Values is the wire form of the value map.
func (t *Table) Values() map[string]float64 {
	m := make(map[string]float64, Count)
	for _, k := range Keys() {
		m[k.String()] = t[k].Value
	}
	return m
}

// EnabledMap is the wire form of the enabled map.
func (t *Table) EnabledMap() map[string]bool {
	m := make(map[string]bool, Count)
	for _, k := range Keys() {
		m[k.String()] = t[k].Enabled
	}
	return m
}

// Load reconciles a stored template against the current vocabulary.
//
// Unknown keys are rejected. A template without base_value or
// multiplier_value is a configuration error. Any other key missing from
// either map takes the library default, so templates saved before a key
// existed keep scoring.
func Load(values map[string]float64, enabled map[string]bool) (Table, error) {
	t := Defaults()

	for name := range enabled {
		if _, err := ParseKey(name); err != nil {
			return t, err
		}
	}

	for _, k := range []Key{BaseValue, MultiplierValue} {
		if _, ok := values[k.String()]; !ok {
			return t, errors.Wrapf(errutil.ErrMissingBaseValue, "key %s", k)
		}
	}

	seen := make(map[Key]bool, len(values))
	for name, v := range values {
		k, err := ParseKey(name)
		if err != nil {
			return t, err
		}
		t.Set(k, v)
		seen[k] = true
	}

	// exported templates from older clients only carry the suffixed spelling
	if !seen[FlowerWindSeatAddOn] && seen[FlowerWindSeatAddOnLegacy] {
		t.Set(FlowerWindSeatAddOn, t.Value(FlowerWindSeatAddOnLegacy))
		seen[FlowerWindSeatAddOn] = true
	}

	for _, k := range Keys() {
		if !seen[k] {
			logger.Debugf("Template misses %s, using default %v", k, k.Default())
		}
		if e, ok := enabled[k.String()]; ok {
			t.Enable(k, e)
		}
	}
	return t, nil
}
