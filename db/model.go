package db

import (
	"time"

	"github.com/go-xorm/xorm"
	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/types"
	log "github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

var (
	database *xorm.Engine
	logger   = log.WithField("component", "model")
)

type options struct {
	showSQL      bool
	maxOpenConns int
	maxIdleConns int
}

// ModelOption specifies an option for opening the database.
type ModelOption func(*options)

// MaxIdleConns specifies the max idle connect numbers. Zero keeps the
// default.
func MaxIdleConns(i int) ModelOption {
	return func(opts *options) {
		if i > 0 {
			opts.maxIdleConns = i
		}
	}
}

// MaxOpenConns specifies the max open connect numbers. Zero keeps the
// default.
func MaxOpenConns(i int) ModelOption {
	return func(opts *options) {
		if i > 0 {
			opts.maxOpenConns = i
		}
	}
}

// ShowSQL logs every statement at info level.
func ShowSQL(show bool) ModelOption {
	return func(opts *options) {
		opts.showSQL = show
	}
}

// MustStartup opens the database, syncs the schema and seeds the default
// template. Any failure panics. An in-memory sqlite database lives on one
// connection, so pass MaxOpenConns(1) for it.
func MustStartup(driver, dsn string, opts ...ModelOption) types.Closer {
	settings := &options{
		maxIdleConns: defaultMaxConns,
		maxOpenConns: defaultMaxConns,
	}

	for _, opt := range opts {
		opt(settings)
	}

	logger.Infof("Driver=%s ShowSQL=%t MaxIdleConn=%v MaxOpenConn=%v", driver, settings.showSQL, settings.maxIdleConns, settings.maxOpenConns)

	db, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		panic(err)
	}
	database = db

	database.SetLogger(&Logger{Entry: logger.WithField("orm", "xorm")})
	database.SetMaxIdleConns(settings.maxIdleConns)
	database.SetMaxOpenConns(settings.maxOpenConns)
	database.ShowSQL(settings.showSQL)

	if err := syncSchema(driver); err != nil {
		panic(err)
	}
	if err := SeedTemplate(); err != nil {
		panic(err)
	}

	done := make(chan struct{})
	go keepalive(done)

	return func() {
		close(done)
		database.Close()
		logger.Info("stopped")
	}
}

// keepalive pings the database so pooled connections survive idle hours.
func keepalive(done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := database.Ping(); err != nil {
				logger.Error(err)
			}
		case <-done:
			return
		}
	}
}

func syncSchema(driver string) error {
	engine := database.NewSession()
	defer engine.Close()
	if driver == DriverMySQL {
		engine = engine.StoreEngine("InnoDB")
	}
	return engine.Sync2(
		new(model.ScoringTemplate),
		new(model.GameRecord),
	)
}
