package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/shiplog/internal/app"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	yes        = kingpin.Flag("yes", "skip the confirmation prompt").Short('y').Bool()
	reportPath = kingpin.Flag("report", "write a JSON build report to this file").String()

	changelogCmd = kingpin.Command("changelog", "build and print the changelog without releasing")
	releaseCmd   = kingpin.Command("release", "run the full release workflow").Default()
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	command := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()
	err = run(ctx, command)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, command string) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	if *yes {
		cfg.Release.SkipConfirm = true
	}
	logze.Init(logze.C().WithConsole().WithLevel(logze.LevelInfo))

	shiplog, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "new app")
	}

	switch command {
	case changelogCmd.FullCommand():
		result, err := shiplog.BuildChangelog(ctx)
		if err != nil {
			return erro.Wrap(err, "build changelog")
		}
		fmt.Println(result.Changelog)
		if *reportPath != "" {
			if err := writeReport(*reportPath, result.Report); err != nil {
				return erro.Wrap(err, "write report")
			}
		}
		return nil

	case releaseCmd.FullCommand():
		if err := shiplog.Release(ctx); err != nil {
			return erro.Wrap(err, "run release")
		}
		return nil
	}

	return erro.New("unknown command: %s", command)
}

func writeReport(path string, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return erro.Wrap(err, "marshal report")
	}
	return os.WriteFile(path, data, 0o644)
}
