package rule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lonng/twmj/internal/errutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulary(t *testing.T) {
	assert.Equal(t, 70, Count)

	seen := map[string]bool{}
	for _, k := range Keys() {
		name := k.String()
		assert.False(t, seen[name], "duplicate key %s", name)
		seen[name] = true
		assert.NotEmpty(t, k.Label(), name)

		back, err := ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}

	cases := []struct {
		key Key
		def float64
	}{
		{BaseValue, 0},
		{MultiplierValue, 1},
		{DuiDuiHu, 30},
		{ExplodeHu, -50},
		{NoZifaPingHu, 12},
		{FiveDarkPongZimo, 100},
	}
	for _, c := range cases {
		if c.key.Default() != c.def {
			t.Fatalf("%s: expect default %v, got %v", c.key, c.def, c.key.Default())
		}
	}

	_, err := ParseKey("dui_dui_value")
	assert.Equal(t, errutil.ErrUnknownRuleKey, errors.Cause(err))
}

func TestLoad(t *testing.T) {
	values := map[string]float64{
		"base_value":       10,
		"multiplier_value": 2,
		"dui_dui_hu_value": 40,
	}
	enabled := map[string]bool{"ping_hu_value": false}

	tab, err := Load(values, enabled)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tab.Value(BaseValue))
	assert.Equal(t, 40.0, tab.Value(DuiDuiHu))
	// gaps fall back to defaults
	assert.Equal(t, Zhuang.Default(), tab.Value(Zhuang))
	assert.True(t, tab.Enabled(Zhuang))

	v, ok := tab.Pay(PingHu)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		values  map[string]float64
		enabled map[string]bool
		err     error
	}{
		{map[string]float64{"multiplier_value": 1}, nil, errutil.ErrMissingBaseValue},
		{map[string]float64{"base_value": 1}, nil, errutil.ErrMissingBaseValue},
		{map[string]float64{"base_value": 0, "multiplier_value": 1, "dui_dui": 3}, nil, errutil.ErrUnknownRuleKey},
		{map[string]float64{"base_value": 0, "multiplier_value": 1}, map[string]bool{"nope": true}, errutil.ErrUnknownRuleKey},
	}
	for i, c := range cases {
		_, err := Load(c.values, c.enabled)
		if errors.Cause(err) != c.err {
			t.Fatalf("case %d: expect %v, got %v", i, c.err, err)
		}
	}
}

func TestLoadLegacyAddOn(t *testing.T) {
	tab, err := Load(map[string]float64{
		"base_value":                          0,
		"multiplier_value":                    1,
		"flower_wind_seat_value_add_on_value": 4,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, tab.Value(FlowerWindSeatAddOn))

	tab, err = Load(map[string]float64{
		"base_value":                          0,
		"multiplier_value":                    1,
		"flower_wind_seat_value_add_on":       2,
		"flower_wind_seat_value_add_on_value": 4,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, tab.Value(FlowerWindSeatAddOn))
}

func TestTemplateTOML(t *testing.T) {
	tpl := DefaultTemplate()
	tpl.RulesEnabled[DuiDuiHu.String()] = false

	buf := &bytes.Buffer{}
	require.NoError(t, EncodeTOML(buf, tpl))

	back, err := DecodeTOML(buf)
	require.NoError(t, err)
	assert.Equal(t, tpl, back)

	tab, err := back.Table()
	require.NoError(t, err)
	assert.Equal(t, Defaults()[Zhuang], tab[Zhuang])
	assert.False(t, tab.Enabled(DuiDuiHu))

	// hand written files use integers
	src := `
name = "house"

[rules]
base_value = 5
multiplier_value = 2
zhuang_value = 1.5
`
	tpl, err = DecodeTOML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "house", tpl.Name)
	assert.Equal(t, 5.0, tpl.Rules["base_value"])
	assert.Equal(t, 1.5, tpl.Rules["zhuang_value"])
}
