package game

import (
	"fmt"
	"time"

	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/serialize/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// Startup 初始化遊戲服務器. It blocks until nano shuts down; the database
// must already be open.
func Startup() {
	heartbeat := viper.GetInt("core.heartbeat")
	if heartbeat < 5 {
		heartbeat = 5
	}

	logger.Infof("當前心跳時間間隔: %d秒", heartbeat)
	logger.Info("game service starup")

	comps := &component.Components{}
	comps.Register(NewScorer())

	// 加密管道, an empty pipeline passes messages through untouched
	pip := pipeline.New()
	if secret := viper.GetString("game-server.secret"); secret != "" {
		c := newCrypto(secret)
		pip.Inbound().PushBack(c.inbound)
		pip.Outbound().PushBack(c.outbound)
		logger.Info("message encryption enabled")
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("game-server.port"))
	nano.Listen(addr,
		nano.WithPipeline(pip),
		nano.WithHeartbeatInterval(time.Duration(heartbeat)*time.Second),
		nano.WithLogger(log.WithField("component", "nano")),
		nano.WithSerializer(json.NewSerializer()),
		nano.WithComponents(comps),
	)
}
