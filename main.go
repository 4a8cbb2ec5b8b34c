package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/lonng/twmj/internal/game"
	"github.com/lonng/twmj/internal/hooks"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/internal/scoring"
	"github.com/lonng/twmj/internal/service"
	"github.com/lonng/twmj/internal/web"
	"github.com/lonng/twmj/pkg/tile"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "twmj"
	app.Author = "twmj team"
	app.Version = "0.1.0"
	app.Usage = "taiwanese mahjong scoring server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the web and game servers",
			Action: serve,
		},
		{
			Name:      "score",
			Usage:     "score one hand",
			ArgsUsage: " ",
			Flags:     scoreFlags,
			Action:    score,
		},
		{
			Name:   "rules",
			Usage:  "list the rule vocabulary",
			Action: rules,
		},
		{
			Name:  "template",
			Usage: "template file helpers",
			Subcommands: []cli.Command{
				{
					Name:  "dump",
					Usage: "write the default template as toml",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "output, o", Usage: "write to `FILE` instead of stdout"},
					},
					Action: dumpTemplate,
				},
				{
					Name:      "check",
					Usage:     "load a template file and report problems",
					ArgsUsage: "FILE",
					Action:    checkTemplate,
				},
			},
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	log.AddHook(hooks.NewHook(log.WarnLevel, log.ErrorLevel, log.FatalLevel, log.PanicLevel))
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
	}
}

func loadConfig(c *cli.Context) {
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "./twmj.db")
	viper.SetDefault("webserver.addr", ":12307")
	viper.SetDefault("game-server.port", 33251)
	viper.SetDefault("core.heartbeat", 30)
	viper.SetDefault("transfer.ttl", 180)

	viper.SetConfigType("toml")
	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("config %s: %v, using defaults", c.GlobalString("config"), err)
	}
}

func serve(c *cli.Context) error {
	loadConfig(c)
	setupLogger()

	if c.GlobalBool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	closer := web.DBStartup()
	defer closer()

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() { defer wg.Done(); game.Startup() }() // 開啟遊戲服
	go func() { defer wg.Done(); web.Startup() }()  // 開啟web服務器

	wg.Wait()
	return nil
}

func rules(c *cli.Context) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tDEFAULT")
	for _, r := range service.Rules().Data {
		fmt.Fprintf(w, "%s\t%s\t%v\n", r.Key, r.Label, r.Default)
	}
	return w.Flush()
}

func dumpTemplate(c *cli.Context) error {
	out := os.Stdout
	if name := c.String("output"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return rule.EncodeTOML(out, rule.DefaultTemplate())
}

func checkTemplate(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: twmj template check FILE", 2)
	}
	tpl, err := readTemplate(c.Args().First())
	if err != nil {
		return err
	}
	if _, err := tpl.Table(); err != nil {
		return errors.Wrap(err, tpl.Name)
	}
	fmt.Printf("%s: ok, %d rules\n", tpl.Name, len(tpl.Rules))
	return nil
}

func readTemplate(name string) (rule.Template, error) {
	f, err := os.Open(name)
	if err != nil {
		return rule.Template{}, err
	}
	defer f.Close()
	return rule.DecodeTOML(f)
}

var scoreFlags = []cli.Flag{
	cli.StringFlag{Name: "tiles, t", Usage: "the completed hand, e.g. \"m1 m2 m3 ...\""},
	cli.IntFlag{Name: "seat", Value: 1, Usage: "seat of the winner, 1-4"},
	cli.StringFlag{Name: "wind", Value: "east", Usage: "prevailing wind"},
	cli.StringFlag{Name: "winning, w", Usage: "the winning tile"},
	cli.BoolFlag{Name: "self-draw", Usage: "won on a self-drawn tile"},
	cli.BoolFlag{Name: "concealed", Usage: "no exposed melds"},
	cli.BoolFlag{Name: "dealer", Usage: "the winner is the dealer"},
	cli.BoolFlag{Name: "ate-dealer", Usage: "won off the dealer's discard"},
	cli.IntFlag{Name: "streak", Usage: "consecutive dealer count"},
	cli.StringFlag{Name: "template", Usage: "score with the toml template in `FILE`"},
	cli.BoolFlag{Name: "json", Usage: "print the full result as json"},
}

func score(c *cli.Context) error {
	tiles, err := tile.ParseList(c.String("tiles"))
	if err != nil {
		return err
	}
	ctx := scoring.GameContext{
		Seat:      c.Int("seat"),
		SelfDraw:  c.Bool("self-draw"),
		Concealed: c.Bool("concealed"),
		Dealer:    c.Bool("dealer"),
		AteDealer: c.Bool("ate-dealer"),
		Streak:    c.Int("streak"),
	}
	if ctx.Wind, err = tile.Parse(c.String("wind")); err != nil {
		return err
	}
	if w := c.String("winning"); w != "" {
		if ctx.WinningTile, err = tile.Parse(w); err != nil {
			return err
		}
	}

	table := rule.Defaults()
	if name := c.String("template"); name != "" {
		tpl, err := readTemplate(name)
		if err != nil {
			return err
		}
		if table, err = tpl.Table(); err != nil {
			return err
		}
	}

	res, err := scoring.Score(tile.NewStats(tiles...), ctx, table)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Winning != nil {
		fmt.Printf("%s\n", res.Winning.String())
	}
	for _, l := range res.Log {
		fmt.Printf("  %s\n", l)
	}
	if res.Bomb {
		fmt.Printf("bomb: %v\n", res.Value)
		return nil
	}
	fmt.Printf("%v x %v + %v = %v\n", res.CalculatedPoints, res.Multiplier, res.BaseValue, res.Value)
	return nil
}
