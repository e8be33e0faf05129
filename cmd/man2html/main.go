package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	man2html "github.com/alnah/go-man2html"
	"github.com/alnah/go-man2html/internal/assets"
	"github.com/alnah/go-man2html/internal/config"
	"github.com/alnah/go-man2html/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain parses args, runs the conversion, and returns the exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'man2html --help' for usage.")
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "go-man2html %s\n", Version)
		return ExitSuccess
	}

	env.Logger = newLogger(flags.common.verbose, env.Stderr)
	defer func() { _ = env.Logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(env.Logger.Sugar().Debugf))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, flags, env))
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags, env *Environment) string {
	switch {
	case errors.Is(err, man2html.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		name := flags.common.config
		if name == "" {
			name = os.Getenv("MAN2HTML_CONFIG")
		}
		return hints.ForConfigNotFound(config.SearchPaths(name))
	case errors.Is(err, man2html.ErrStyleNotFound):
		loader := env.AssetLoader
		if flags.assetPath != "" {
			if resolver, rerr := assets.NewAssetResolver(flags.assetPath); rerr == nil {
				loader = resolver
			}
		}
		available, listErr := loader.ListStyles()
		if listErr != nil {
			return ""
		}
		return hints.ForStyleNotFound(available)
	case errors.Is(err, man2html.ErrUnknownLanguage):
		return hints.ForUnknownLanguage()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput), errors.Is(err, ErrInvalidExtension):
		return hints.ForNoInput()
	}
	return ""
}
