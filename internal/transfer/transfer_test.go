package transfer

import (
	"testing"
	"time"

	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/rule"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time           { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newRelay(opts ...Option) (*Relay, *Memory, *clock) {
	c := &clock{t: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	m := NewMemory()
	m.now = c.now
	r := New(m, opts...)
	r.now = c.now
	return r, m, c
}

func house() rule.Template {
	t := rule.Defaults()
	t.Set(rule.Zhuang, 3)
	return rule.NewTemplate("house rules", t)
}

func TestExportImport(t *testing.T) {
	for _, secret := range []string{"", "table-secret"} {
		r, _, _ := newRelay(WithSecret(secret))

		rec, err := r.Export("", house())
		require.NoError(t, err)
		assert.Len(t, rec.UUID, 36)
		assert.Equal(t, "2026-01-01T08:03:00Z", rec.ExpiresAt)

		got, err := r.Import(rec.UUID)
		require.NoError(t, err)
		assert.Equal(t, rec.UUID, got.UUID)
		assert.Equal(t, house(), got.Template)
	}
}

func TestExportConflict(t *testing.T) {
	r, _, c := newRelay(WithTTL(time.Minute))
	id := "0B8E3C4A-5F2D-4C1B-9A7E-3D2F1E0C9B8A"

	rec, err := r.Export(id, house())
	require.NoError(t, err)
	assert.Equal(t, "0b8e3c4a-5f2d-4c1b-9a7e-3d2f1e0c9b8a", rec.UUID)

	_, err = r.Export(id, house())
	assert.Equal(t, errutil.ErrTransferExists, err)

	// an expired uuid may be taken again
	c.advance(time.Minute)
	_, err = r.Export(id, house())
	assert.NoError(t, err)
}

func TestImportExpired(t *testing.T) {
	r, m, c := newRelay()

	rec, err := r.Export("", house())
	require.NoError(t, err)

	c.advance(DefaultTTL - time.Second)
	_, err = r.Import(rec.UUID)
	require.NoError(t, err)

	c.advance(time.Second)
	_, err = r.Import(rec.UUID)
	assert.Equal(t, errutil.ErrTransferNotFound, err)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 0, m.Sweep())

	_, err = r.Import("0b8e3c4a-5f2d-4c1b-9a7e-3d2f1e0c9b8a")
	assert.Equal(t, errutil.ErrTransferNotFound, err)
}

func TestImportWrongSecret(t *testing.T) {
	r, m, c := newRelay(WithSecret("one"))
	rec, err := r.Export("", house())
	require.NoError(t, err)

	other := New(m, WithSecret("two"))
	other.now = c.now
	_, err = other.Import(rec.UUID)
	assert.Equal(t, errutil.ErrTransferNotFound, err)
}

func TestExportValidation(t *testing.T) {
	r, _, _ := newRelay()

	_, err := r.Export("not-a-uuid", house())
	assert.Equal(t, errutil.ErrInvalidParameter, errors.Cause(err))

	tpl := house()
	tpl.Name = ""
	_, err = r.Export("", tpl)
	assert.Equal(t, errutil.ErrInvalidParameter, errors.Cause(err))

	tpl = house()
	delete(tpl.Rules, "base_value")
	_, err = r.Export("", tpl)
	assert.Equal(t, errutil.ErrMissingBaseValue, errors.Cause(err))

	_, err = r.Import("../../etc/passwd")
	assert.Equal(t, errutil.ErrInvalidParameter, errors.Cause(err))
}

func TestPackageRelay(t *testing.T) {
	closer := MustStartup(NewMemory(), WithTTL(time.Minute))
	defer closer()

	rec, err := Export("", house())
	require.NoError(t, err)
	got, err := Import(rec.UUID)
	require.NoError(t, err)
	assert.Equal(t, "house rules", got.Template.Name)
}
