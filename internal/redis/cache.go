// Package redis wraps a redigo pool with the few commands the transfer relay
// needs.
package redis

import (
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/lonng/twmj/internal/errutil"
	log "github.com/sirupsen/logrus"
)

const (
	defaultConnTimeout  = 5 * time.Second
	defaultReadTimeout  = 1 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

const (
	cmdSet    = "SET"
	cmdGet    = "GET"
	cmdExists = "EXISTS"
	cmdDel    = "DEL"
	cmdTTL    = "TTL"
	cmdPing   = "PING"
)

var logger = log.WithField("component", "redis")

// Client is safe for concurrent use.
type Client struct {
	pool   *redis.Pool
	prefix string
}

// New dials lazily: the first command opens the first connection. Every key
// is prefixed with prefix.
func New(addr, prefix string) *Client {
	pool := &redis.Pool{
		MaxIdle:     32,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr,
				redis.DialConnectTimeout(defaultConnTimeout),
				redis.DialReadTimeout(defaultReadTimeout),
				redis.DialWriteTimeout(defaultWriteTimeout))
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do(cmdPing)
			return err
		},
	}
	return &Client{pool: pool, prefix: prefix}
}

func (c *Client) Close() error {
	return c.pool.Close()
}

func (c *Client) Ping() error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do(cmdPing)
	return err
}

// SetExpireNX stores v under k for expire seconds unless k already exists.
// It reports whether the value was written.
func (c *Client) SetExpireNX(k string, v []byte, expire int) (bool, error) {
	conn := c.pool.Get()
	defer conn.Close()

	reply, err := conn.Do(cmdSet, c.prefix+k, v, "EX", expire, "NX")
	if err != nil {
		logger.Error(err)
		return false, err
	}
	return reply != nil, nil
}

// Bytes returns the value of key, or errutil.ErrNotFound.
func (c *Client) Bytes(key string) ([]byte, error) {
	conn := c.pool.Get()
	defer conn.Close()

	v, err := redis.Bytes(conn.Do(cmdGet, c.prefix+key))
	if err == redis.ErrNil {
		return nil, errutil.ErrNotFound
	}
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return v, nil
}

// Synonyms of Redis EXISTS command
func (c *Client) Exists(key string) bool {
	conn := c.pool.Get()
	defer conn.Close()

	ok, err := redis.Bool(conn.Do(cmdExists, c.prefix+key))
	if err != nil {
		logger.Error(err)
		return false
	}
	return ok
}

// Synonyms of Redis TTL command, in seconds
func (c *Client) TTL(key string) (int, error) {
	conn := c.pool.Get()
	defer conn.Close()

	ttl, err := redis.Int(conn.Do(cmdTTL, c.prefix+key))
	if err != nil {
		logger.Error(err)
		return 0, err
	}
	return ttl, nil
}

func (c *Client) Delete(key string) error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do(cmdDel, c.prefix+key)
	if err != nil {
		logger.Error(err)
	}
	return err
}
