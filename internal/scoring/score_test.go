package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/hand"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pingHand     = "m1 m2 m3 m5 m6 m7 t2 t3 t4 t3 t4 t5 s7 s8 s9 t9 t9"
	duiDuiHand   = "m1 m1 m1 m5 m5 m5 t3 t3 t3 t7 t7 t7 s9 s9 s9 s2 s2"
	windHand     = "east east east south south south west west west north north m1 m2 m3 t5 t5 t5"
	liguHand     = "m1 m1 m2 m2 m3 m3 m4 m4 m5 m5 m6 m6 m7 m7 t9 t9 t9"
	thirteenHand = "m1 m9 t1 t9 s1 s9 east south west north zhong fa bak m1 t2 t3 t4"
	sixteenHand  = "m1 m4 m7 t2 t5 t8 s3 s6 s9 east south west north zhong fa bak east"
)

func mustHand(t testing.TB, s string) tile.Stats {
	tiles, err := tile.ParseList(s)
	require.NoError(t, err)
	return tile.NewStats(tiles...)
}

func east(win tile.Tile) GameContext {
	return GameContext{Seat: 1, Wind: tile.East, WinningTile: win}
}

func TestScorePingSelfDrawConcealed(t *testing.T) {
	ctx := east(tile.M1)
	ctx.SelfDraw = true
	ctx.Concealed = true

	res, err := Score(mustHand(t, pingHand), ctx, rule.Defaults())
	require.NoError(t, err)

	assert.False(t, res.Bomb)
	assert.Equal(t, []string{"門清自摸 +5", "無字花大平胡 +12"}, res.Log)
	assert.Equal(t, 17.0, res.CalculatedPoints)
	assert.Equal(t, 17.0, res.Value)

	for _, c := range res.Rules {
		switch c.Stage {
		case "draw", "no_zifa":
			assert.True(t, c.Applicable, c.Stage)
		default:
			assert.False(t, c.Applicable, c.Stage)
			assert.Zero(t, c.Value, c.Stage)
		}
	}
	assert.Len(t, res.Rules, len(Pipeline))
}

func TestScoreFlowerWin(t *testing.T) {
	ctx := GameContext{Seat: 2, Wind: tile.East, SelfDraw: true}

	res, err := Score(mustHand(t, "f1 f2 f3 f4 ff1 ff2 ff3 m1 m2 m4 east"), ctx, rule.Defaults())
	require.NoError(t, err)
	require.NotNil(t, res.Winning)
	assert.Equal(t, hand.FlowerWin, res.Winning.HuType)
	assert.Equal(t, 21.0, res.Value)
	assert.Equal(t, []string{"自摸 +1", "花胡 +20"}, res.Log)

	stages := make([]string, 0, len(res.Rules))
	for _, c := range res.Rules {
		stages = append(stages, c.Stage)
	}
	assert.Equal(t, []string{"draw", "dealer", "flower"}, stages)

	// an eighth flower pays the bigger prize
	res, err = Score(mustHand(t, "f1 f2 f3 f4 ff1 ff2 ff3 ff4 m1"), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.Equal(t, 41.0, res.Value)
}

func TestScoreFlowerWinBeatsStandard(t *testing.T) {
	ctx := GameContext{Seat: 2, Wind: tile.East, WinningTile: tile.M1, SelfDraw: true}

	res, err := Score(mustHand(t, "f1 f2 f3 f4 ff1 ff2 ff3 "+pingHand), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.Equal(t, hand.FlowerWin, res.Winning.HuType)
	assert.Equal(t, 21.0, res.Value)

	// the standard reading, scored alone
	r := hand.Decompose(mustHand(t, "f1 f2 f3 f4 ff1 ff2 ff3 "+pingHand))
	require.Len(t, r.Candidates, 2)
	rules, err := Explain(&r.Candidates[1], mustHand(t, "f1 f2 f3 f4 ff1 ff2 ff3 "+pingHand), ctx, rule.Defaults())
	require.NoError(t, err)
	total := 0.0
	for _, c := range rules {
		total += c.Value
	}
	assert.Equal(t, 16.0, total)
}

func TestScoreDisabledDuiDui(t *testing.T) {
	on := rule.Defaults()
	off := rule.Defaults()
	off.Enable(rule.DuiDuiHu, false)

	ms := mustHand(t, duiDuiHand)
	a, err := Score(ms, east(tile.M1), on)
	require.NoError(t, err)
	b, err := Score(ms, east(tile.M1), off)
	require.NoError(t, err)
	assert.Equal(t, 37.0, a.Value)
	assert.Equal(t, on.Value(rule.DuiDuiHu), a.Value-b.Value)

	ms = mustHand(t, pingHand)
	a, err = Score(ms, east(tile.M1), on)
	require.NoError(t, err)
	b, err = Score(ms, east(tile.M1), off)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScoreFormula(t *testing.T) {
	tab := rule.Defaults()
	tab.Set(rule.BaseValue, 10)
	tab.Set(rule.MultiplierValue, 2)

	ctx := east(tile.M1)
	ctx.SelfDraw, ctx.Concealed = true, true

	for _, h := range []string{pingHand, duiDuiHand, windHand, liguHand} {
		res, err := Score(mustHand(t, h), ctx, tab)
		require.NoError(t, err)
		require.False(t, res.Bomb, h)
		assert.Equal(t, res.CalculatedPoints*res.Multiplier+res.BaseValue, res.Value, h)
		assert.Equal(t, 2.0, res.Multiplier)
		assert.Equal(t, 10.0, res.BaseValue)
	}

	res, err := Score(mustHand(t, pingHand), ctx, tab)
	require.NoError(t, err)
	assert.Equal(t, 44.0, res.Value)
}

func TestScoreTieBreak(t *testing.T) {
	var tab rule.Table
	tab.Set(rule.MultiplierValue, 1)
	tab.Set(rule.BaseValue, 3)

	ms := mustHand(t, "m1 m1 m1 m2 m2 m2 m3 m3 m3 t1 t2 t3 t4 t5 t6 s5 s5")
	r := hand.Decompose(ms)
	require.Len(t, r.Candidates, 2)

	res, err := Score(ms, east(tile.M1), tab)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Value)
	if diff := cmp.Diff(r.Candidates[0], *res.Winning); diff != "" {
		t.Fatalf("expect the first reading to win (-want +got):\n%s", diff)
	}
}

func TestScoreDeterministic(t *testing.T) {
	ctx := east(tile.T9)
	ctx.Concealed = true
	for _, h := range []string{pingHand, duiDuiHand, windHand, liguHand, thirteenHand} {
		a, err := Score(mustHand(t, h), ctx, rule.Defaults())
		require.NoError(t, err)
		b, err := Score(mustHand(t, h), ctx, rule.Defaults())
		require.NoError(t, err)
		assert.Equal(t, a, b, h)
	}
}

func TestScoreMonotonic(t *testing.T) {
	ctxs := []GameContext{
		{Seat: 1, Wind: tile.East, WinningTile: tile.M1, SelfDraw: true, Concealed: true, Dealer: true, Streak: 2},
		{Seat: 2, Wind: tile.South, WinningTile: tile.T9, AteDealer: true},
	}
	hands := []string{pingHand, duiDuiHand, windHand, liguHand, thirteenHand, sixteenHand,
		"f2 ff2 " + windHand, "f1 f2 f3 f4 ff1 ff2 ff3 " + pingHand}

	for _, ctx := range ctxs {
		for _, h := range hands {
			ms := mustHand(t, h)
			base, err := Score(ms, ctx, rule.Defaults())
			require.NoError(t, err)

			for _, k := range rule.Keys() {
				// the bomb penalty is negative, dropping it raises the score
				if k == rule.ExplodeHu {
					continue
				}
				tab := rule.Defaults()
				tab.Enable(k, false)
				res, err := Score(ms, ctx, tab)
				require.NoError(t, err)
				if res.Value > base.Value {
					t.Fatalf("%s with %s disabled: %v > %v", h, k, res.Value, base.Value)
				}
			}
		}
	}

	// rules the ping hand never triggers leave its score alone
	ms := mustHand(t, pingHand)
	base, err := Score(ms, east(tile.M1), rule.Defaults())
	require.NoError(t, err)
	for _, k := range []rule.Key{rule.DuiDuiHu, rule.Big4Wind, rule.ThirteenWaist, rule.SevenFlower, rule.RealSolo, rule.LaoShao, rule.DarkGong} {
		tab := rule.Defaults()
		tab.Enable(k, false)
		res, err := Score(ms, east(tile.M1), tab)
		require.NoError(t, err)
		assert.Equal(t, base.Value, res.Value, k.String())
	}
}

func TestScoreBomb(t *testing.T) {
	res, err := Score(mustHand(t, "m1 m2 m3 m4 m5 m6 m7 m8 m9 t1 t2 t3 t4 t5 t6 s5"), east(tile.None), rule.Defaults())
	require.NoError(t, err)
	assert.True(t, res.Bomb)
	assert.Nil(t, res.Winning)
	assert.Equal(t, -150.0, res.Value)
	assert.Equal(t, []string{"炸胡， 每家賠-50"}, res.Log)

	// special shapes need a concealed hand
	res, err = Score(mustHand(t, sixteenHand), east(tile.None), rule.Defaults())
	require.NoError(t, err)
	assert.True(t, res.Bomb)

	ctx := east(tile.None)
	ctx.Concealed = true
	res, err = Score(mustHand(t, sixteenHand), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.False(t, res.Bomb)
	assert.Equal(t, hand.SixteenScattered, res.Winning.HuType)
}

func TestScoreSpecialShapes(t *testing.T) {
	ctx := east(tile.T9)
	ctx.Concealed = true

	res, err := Score(mustHand(t, thirteenHand), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.Equal(t, hand.ThirteenWaist, res.Winning.HuType)
	assert.Equal(t, []string{"無花 +1", "13么/腰 +80"}, res.Log)
	assert.Equal(t, 81.0, res.Value)

	res, err = Score(mustHand(t, liguHand), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.Equal(t, hand.Ligu, res.Winning.HuType)
	assert.Equal(t, 45.0, res.Value)
}

func TestScoreSpecialShapesSkipPurity(t *testing.T) {
	ctx := east(tile.S9)
	ctx.Concealed = true

	// the closing meld is a terminal triplet completing four s9
	res, err := Score(mustHand(t, "m1 m9 t1 t9 s1 s9 east south west north zhong fa bak m1 s9 s9 s9"), ctx, rule.Defaults())
	require.NoError(t, err)
	assert.Equal(t, hand.ThirteenWaist, res.Winning.HuType)
	assert.Equal(t, []string{"無花 +1", "13么/腰 +80"}, res.Log)
	assert.Equal(t, 81.0, res.Value)

	// a one-suit ligu read as ligu pays neither purity nor numbers
	ms := mustHand(t, "m1 m1 m2 m2 m3 m3 m4 m4 m5 m5 m6 m6 m8 m8 m9 m9 m9")
	rules, err := Explain(&hand.Decomposition{HuType: hand.Ligu}, ms, ctx, rule.Defaults())
	require.NoError(t, err)
	total := 0.0
	for _, c := range rules {
		total += c.Value
		switch c.Stage {
		case "same_house", "numbers", "one_nine", "gong":
			assert.False(t, c.Applicable, c.Stage)
		}
	}
	assert.Equal(t, 45.0, total)
}

func TestScoreTooManyCopies(t *testing.T) {
	ms := mustHand(t, "m1 m1 m1 m1 m1 t1 t2 t3 t4 t5 t6 t7 t8 t9 s1 s2 s3")
	_, err := Score(ms, east(tile.M1), rule.Defaults())
	if errors.Cause(err) != tile.ErrTooManyCopies {
		t.Fatalf("expect too many copies, got %v", err)
	}
}

func TestScoreIllegalContext(t *testing.T) {
	cases := []GameContext{
		{Seat: 1, Wind: tile.East, Dealer: true, AteDealer: true},
		{Seat: 5, Wind: tile.East},
		{Seat: 1, Wind: tile.M1},
		{Seat: 1, Wind: tile.East, Streak: -1},
		{Seat: 1, Wind: tile.East, WinningTile: tile.F1},
	}
	for _, ctx := range cases {
		_, err := Score(mustHand(t, pingHand), ctx, rule.Defaults())
		if errors.Cause(err) != errutil.ErrIllegalContext {
			t.Fatalf("%+v: expect illegal context, got %v", ctx, err)
		}
	}
}

func BenchmarkScore(b *testing.B) {
	ms := mustHand(b, liguHand)
	ctx := east(tile.T9)
	ctx.Concealed = true
	tab := rule.Defaults()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Score(ms, ctx, tab)
	}
}
