package game

import (
	"encoding/base64"

	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/session"
	"github.com/pkg/errors"
	"github.com/xxtea/xxtea-go/xxtea"
)

var errBadCipher = errors.New("game: payload does not decrypt")

// crypto seals message payloads with xxtea and carries them as base64 text.
type crypto struct {
	key []byte
}

func newCrypto(secret string) *crypto {
	return &crypto{key: []byte(secret)}
}

func (c *crypto) inbound(s *session.Session, msg *pipeline.Message) error {
	if len(msg.Data) == 0 {
		return nil
	}
	out, err := base64.StdEncoding.DecodeString(string(msg.Data))
	if err != nil {
		return errors.Wrap(err, "game: inbound")
	}
	plain := xxtea.Decrypt(out, c.key)
	if plain == nil {
		return errBadCipher
	}
	msg.Data = plain
	return nil
}

func (c *crypto) outbound(s *session.Session, msg *pipeline.Message) error {
	if len(msg.Data) == 0 {
		return nil
	}
	out := xxtea.Encrypt(msg.Data, c.key)
	msg.Data = []byte(base64.StdEncoding.EncodeToString(out))
	return nil
}
