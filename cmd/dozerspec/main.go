// Package main provides the CLI entrypoint for dozerspec.
//
// dozerspec works with mapping specification files:
//   - check loads a spec file, builds it and reports structural diagnostics
//   - convert rewrites a spec file in another format (yaml, toml, json)
//
// Type names in spec files are resolved against the sample store and
// warehouse models.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	goversion "github.com/caarlos0/go-version"

	"github.com/ssarabun/dozer/internal/common"
)

const (
	appName        = "dozerspec"
	appDescription = "Declarative object mapping specification checker"
	appURL         = "https://github.com/ssarabun/dozer"
)

var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""

	debug  = flag.Bool("debug", false, "Enable debug logging")
	dump   = flag.Bool("dump", false, "Dump the built specification")
	strict = flag.Bool("strict", false, "Fail the build on any structural validation error")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	args := flag.Args()

	cmd, ok := common.First(args)
	if !ok {
		fmt.Println(buildVersion(version, commit, date, builtBy, treeState).String())
		usage()

		return
	}

	app := newApp(newInjector(logger, settings{strict: *strict, dump: *dump}))

	if err := app.run(cmd, args[1:], os.Stdout); err != nil {
		slog.Error("dozerspec failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: dozerspec [options] check <file>")
	fmt.Println("       dozerspec [options] convert <in> <out>")
	flag.PrintDefaults()
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, appURL),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
