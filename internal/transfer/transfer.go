// Package transfer relays scoring templates between devices under a
// short-lived uuid.
package transfer

import (
	"encoding/json"
	"time"

	"github.com/lonng/twmj/internal/async"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/internal/security"
	"github.com/lonng/twmj/internal/types"
	"github.com/lonng/twmj/protocol"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xxtea/xxtea-go/xxtea"
)

const (
	DefaultTTL    = 180 * time.Second
	sweepInterval = 30 * time.Second
)

var logger = log.WithField("component", "transfer")

type Option func(*Relay)

func WithTTL(ttl time.Duration) Option {
	return func(r *Relay) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithSecret seals stored payloads with xxtea.
func WithSecret(secret string) Option {
	return func(r *Relay) {
		if secret != "" {
			r.key = []byte(secret)
		}
	}
}

type Relay struct {
	backend Backend
	ttl     time.Duration
	key     []byte
	now     func() time.Time
}

func New(backend Backend, opts ...Option) *Relay {
	r := &Relay{backend: backend, ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// stored is the payload kept by the backend.
type stored struct {
	Template  rule.Template `json:"template"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Export publishes tpl under id. An empty id gets a fresh uuid.
func (r *Relay) Export(id string, tpl rule.Template) (*protocol.TransferRecord, error) {
	if id == "" {
		id = uuid.New()
	} else {
		parsed := uuid.Parse(id)
		if parsed == nil {
			return nil, errors.Wrapf(errutil.ErrInvalidParameter, "uuid %q", id)
		}
		id = parsed.String()
	}

	if !security.ValidateName(tpl.Name) {
		return nil, errors.Wrapf(errutil.ErrInvalidParameter, "template name %q", tpl.Name)
	}
	if _, err := rule.Load(tpl.Rules, tpl.RulesEnabled); err != nil {
		return nil, err
	}

	rec := stored{Template: tpl, ExpiresAt: r.now().Add(r.ttl).UTC()}
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrServerInternal, err.Error())
	}
	if err := r.backend.Create(id, r.seal(payload), r.ttl); err != nil {
		return nil, err
	}

	logger.Debugf("exported %q as %s", tpl.Name, id)
	return record(id, rec), nil
}

// Import returns the template published under id.
func (r *Relay) Import(id string) (*protocol.TransferRecord, error) {
	if !security.ValidateUUID(id) {
		return nil, errors.Wrapf(errutil.ErrInvalidParameter, "uuid %q", id)
	}
	id = uuid.Parse(id).String()

	payload, err := r.backend.Load(id)
	if err != nil {
		return nil, err
	}

	var rec stored
	plain := r.open(payload)
	if plain == nil || json.Unmarshal(plain, &rec) != nil {
		logger.Warnf("transfer %s: unreadable payload", id)
		return nil, errutil.ErrTransferNotFound
	}
	if !r.now().Before(rec.ExpiresAt) {
		return nil, errutil.ErrTransferNotFound
	}
	return record(id, rec), nil
}

func (r *Relay) Sweep() {
	if n := r.backend.Sweep(); n > 0 {
		logger.Debugf("swept %d expired transfers", n)
	}
}

func (r *Relay) seal(data []byte) []byte {
	if r.key == nil {
		return data
	}
	return xxtea.Encrypt(data, r.key)
}

func (r *Relay) open(data []byte) []byte {
	if r.key == nil {
		return data
	}
	return xxtea.Decrypt(data, r.key)
}

func record(id string, rec stored) *protocol.TransferRecord {
	return &protocol.TransferRecord{
		UUID:      id,
		ExpiresAt: rec.ExpiresAt.Format(time.RFC3339),
		Template:  rec.Template,
	}
}

var relay *Relay

// MustStartup installs the process-wide relay and starts its sweeper.
func MustStartup(backend Backend, opts ...Option) types.Closer {
	if backend == nil {
		panic("transfer: nil backend")
	}
	relay = New(backend, opts...)
	stop := async.Every(sweepInterval, relay.Sweep)

	logger.Infof("transfer relay started, ttl=%v sealed=%t", relay.ttl, relay.key != nil)
	return func() {
		stop()
		logger.Info("transfer relay stopped")
	}
}

func Export(id string, tpl rule.Template) (*protocol.TransferRecord, error) {
	if relay == nil {
		return nil, errutil.ErrInitFailed
	}
	return relay.Export(id, tpl)
}

func Import(id string) (*protocol.TransferRecord, error) {
	if relay == nil {
		return nil, errutil.ErrInitFailed
	}
	return relay.Import(id)
}
