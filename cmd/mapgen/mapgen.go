package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/structmap/mapgen/internal/errs"
	"github.com/structmap/mapgen/internal/flags"
	"github.com/structmap/mapgen/similar"
	"github.com/structmap/mapgen/strs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const flagHelp = `
mapgen inspects the identifiers the mapping generator chooses for property
and variable names.
`

func run() error {
	rootFlagSet := flag.NewFlagSet("root", flag.ExitOnError)
	rootCmd := &ffcli.Command{
		ShortUsage: "mapgen <subcommand> [options...]",
		LongHelp:   flagHelp[1 : len(flagHelp)-1], // remove lead/trail newlines
		FlagSet:    rootFlagSet,
		Subcommands: []*ffcli.Command{
			newNameCmd(),
			newSanitizeCmd(),
			newSuggestCmd(),
		},
	}
	rootCmd.Exec = func(ctx context.Context, args []string) error {
		fmt.Println(ffcli.DefaultUsageFunc(rootCmd))
		os.Exit(1)
		return nil
	}
	return rootCmd.ParseAndRun(context.Background(), os.Args[1:])
}

func newNameCmd() *ffcli.Command {
	fset := flag.NewFlagSet("name", flag.ExitOnError)
	existing := flags.Strings(fset, "existing", nil, "name already bound in the target scope; repeatable")
	output := fset.String("output", "", "write results to this file instead of stdout")
	logLevel := fset.String("log-level", "info", "zap log level: debug, info, warn, or error")
	return &ffcli.Command{
		Name:       "name",
		ShortUsage: "mapgen name [options...] <property-name>...",
		ShortHelp:  "prints a conflict-free variable name for each property name",
		FlagSet:    fset,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("mapgen name: at least one property name must be given")
			}
			l, err := newLogger(*logLevel)
			if err != nil {
				return err
			}
			defer l.Sync() // nolint
			scope := make([]string, 0, len(*existing)+len(args))
			scope = append(scope, *existing...)
			lines := make([]string, 0, len(args))
			for _, name := range args {
				safe := strs.SafeVariableName(name, scope...)
				l.Debugf("resolved %q to %q against %d names in scope", name, safe, len(scope))
				// Each result joins the scope so a batch yields distinct names.
				scope = append(scope, safe)
				lines = append(lines, safe)
			}
			return writeLines(*output, lines)
		},
	}
}

func newSanitizeCmd() *ffcli.Command {
	fset := flag.NewFlagSet("sanitize", flag.ExitOnError)
	output := fset.String("output", "", "write results to this file instead of stdout")
	return &ffcli.Command{
		Name:       "sanitize",
		ShortUsage: "mapgen sanitize [options...] <name>...",
		ShortHelp:  "rewrites each name with only legal identifier characters",
		FlagSet:    fset,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("mapgen sanitize: at least one name must be given")
			}
			lines := make([]string, len(args))
			for i, name := range args {
				lines[i] = strs.SanitizeIdentifierName(name)
			}
			return writeLines(*output, lines)
		},
	}
}

func newSuggestCmd() *ffcli.Command {
	fset := flag.NewFlagSet("suggest", flag.ExitOnError)
	candidates := flags.Strings(fset, "candidate", nil, "known name to match against; repeatable")
	return &ffcli.Command{
		Name:       "suggest",
		ShortUsage: "mapgen suggest --candidate <name>... <word>",
		ShortHelp:  "prints the known name closest to the given word",
		FlagSet:    fset,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("mapgen suggest: exactly one word must be given; got %d", len(args))
			}
			suggestion, ok := similar.MostSimilarWord(args[0], *candidates)
			if !ok {
				return fmt.Errorf("mapgen suggest: at least one --candidate must be given")
			}
			fmt.Println(suggestion)
			return nil
		},
	}
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("create zap logger: %w", err)
	}
	return logger.Sugar(), nil
}

func writeLines(output string, lines []string) (mErr error) {
	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer errs.Capture(&mErr, f.Close, "close output file")
		out = f
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("ERROR: %s\n", err.Error())
		os.Exit(1)
	}
}
