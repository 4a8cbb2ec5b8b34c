package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lonng/nex"
	"github.com/lonng/twmj/db"
	"github.com/lonng/twmj/internal/encoding"
	"github.com/lonng/twmj/internal/redis"
	"github.com/lonng/twmj/internal/transfer"
	"github.com/lonng/twmj/internal/types"
	"github.com/lonng/twmj/internal/web/api"
	"github.com/lonng/twmj/internal/whitelist"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "http")

// DBStartup opens the store configured under database.
func DBStartup() types.Closer {
	driver := viper.GetString("database.driver")
	dsn := viper.GetString("database.dsn")
	if driver == "" {
		driver = db.DriverSQLite
	}
	if driver == db.DriverMySQL && dsn == "" {
		dsn = db.BuildDSN(
			viper.GetString("database.host"),
			viper.GetInt("database.port"),
			viper.GetString("database.username"),
			viper.GetString("database.password"),
			viper.GetString("database.dbname"),
			viper.GetString("database.args"))
	}

	return db.MustStartup(
		driver,
		dsn,
		db.MaxIdleConns(viper.GetInt("database.max_idle_conns")),
		db.MaxOpenConns(viper.GetInt("database.max_open_conns")),
		db.ShowSQL(viper.GetBool("database.show_sql")))
}

// transferStartup shares transfers through redis when transfer.redis is set,
// otherwise they live in this process.
func transferStartup() types.Closer {
	var (
		backend transfer.Backend
		closers []func()
	)
	if addr := viper.GetString("transfer.redis"); addr != "" {
		client := redis.New(addr, "twmj:transfer:")
		if err := client.Ping(); err != nil {
			logger.Fatalf("redis %s: %v", addr, err)
		}
		backend = transfer.NewRedis(client)
		closers = append(closers, func() { client.Close() })
	} else {
		backend = transfer.NewMemory()
	}

	closer := transfer.MustStartup(backend,
		transfer.WithTTL(time.Duration(viper.GetInt("transfer.ttl"))*time.Second),
		transfer.WithSecret(viper.GetString("transfer.secret")))

	return func() {
		closer()
		for _, c := range closers {
			c()
		}
	}
}

func enableWhiteList() {
	if err := whitelist.Setup(viper.GetStringSlice("whitelist.ip")); err != nil {
		logger.Fatalf("whitelist: %v", err)
	}
	if whitelist.Enabled() {
		logger.Infof("Write whitelist: %v", whitelist.IPList())
	}
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

var once sync.Once

func startupService() http.Handler {
	once.Do(func() {
		nex.Before(logRequest)
		nex.SetErrorEncoder(encoding.SimpleEncodeError)
	})

	mux := http.NewServeMux()
	score := api.MakeScoreService()
	mux.Handle("/v1/score", score)
	mux.Handle("/v1/decompose", score)
	mux.Handle("/v1/rules", score)
	mux.Handle("/v1/templates/", api.MakeTemplateService())
	mux.Handle("/v1/history/", api.MakeHistoryService())
	mux.Handle("/ping", nex.Handler(pongHandler))

	return accessControl(optionControl(mux))
}

// Startup serves the api until the process is signalled. The database must
// already be open.
func Startup() {
	closer := transferStartup()
	defer closer()

	enableWhiteList()

	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
	)

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		// http service
		mux := startupService()
		if enableSSL {
			log.Fatal(http.ListenAndServeTLS(addr, cert, key, mux))
		} else {
			log.Fatal(http.ListenAndServe(addr, mux))
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	s := <-sg
	logger.Infof("got signal: %s", s.String())
}
