package transfer

import (
	"sync"
	"time"

	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/redis"
	"github.com/pkg/errors"
)

// Backend keeps sealed transfer payloads until their deadline.
type Backend interface {
	// Create stores payload under key for ttl. It returns ErrTransferExists
	// while an unexpired payload holds the key.
	Create(key string, payload []byte, ttl time.Duration) error

	// Load returns ErrTransferNotFound for missing and expired keys.
	Load(key string) ([]byte, error)

	// Sweep drops expired payloads and reports how many went.
	Sweep() int
}

type entry struct {
	payload  []byte
	deadline time.Time
}

// Memory is a process-local Backend.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]entry{}, now: time.Now}
}

func (m *Memory) Create(key string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.entries[key]; ok && now.Before(e.deadline) {
		return errutil.ErrTransferExists
	}
	m.entries[key] = entry{payload: payload, deadline: now.Add(ttl)}
	return nil
}

func (m *Memory) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || !m.now().Before(e.deadline) {
		return nil, errutil.ErrTransferNotFound
	}
	return e.payload, nil
}

func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for k, e := range m.entries {
		if !now.Before(e.deadline) {
			delete(m.entries, k)
			n++
		}
	}
	return n
}

// Redis shares transfers between server instances. Expiry is left to the
// server, so Sweep has nothing to do.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Create(key string, payload []byte, ttl time.Duration) error {
	secs := int((ttl + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	ok, err := r.client.SetExpireNX(key, payload, secs)
	if err != nil {
		return errors.Wrap(errutil.ErrServerInternal, err.Error())
	}
	if !ok {
		return errutil.ErrTransferExists
	}
	return nil
}

func (r *Redis) Load(key string) ([]byte, error) {
	v, err := r.client.Bytes(key)
	if err == errutil.ErrNotFound {
		return nil, errutil.ErrTransferNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errutil.ErrServerInternal, err.Error())
	}
	return v, nil
}

func (r *Redis) Sweep() int { return 0 }
