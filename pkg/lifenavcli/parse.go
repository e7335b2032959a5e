package lifenavcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/lifenav/lifenav/pkg/finance"
)

const usage = `subcommand required

Usage: lifenav [flags] <command> [command flags]

Commands:
  serve     Start the local HTTP API
  process   Materialize due recurring transactions
  summary   Print an overview of goals, tasks, mood, learning and finances
  due       List tasks, contacts and bills needing attention
  export    Write every store as JSON

Examples:
  lifenav serve
  lifenav -backend memory -listen 127.0.0.1:9000 serve
  lifenav due -days 7
  lifenav -codec cbor export -o backup.json`

// Parse parses the global flags and the subcommand. Configuration is read
// from the environment (after the -env-file, if it exists) and then any flag
// given on the command line overrides it.
func Parse(args []string) (Command, *Config, error) {
	flagSet := flag.NewFlagSet("lifenav", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var (
		envFile    = flagSet.String("env-file", ".env", "File to load environment variables from")
		dataDir    = flagSet.String("data-dir", "", "Directory holding the sqlite database")
		backend    = flagSet.String("backend", "", "Storage backend: sqlite or memory")
		codecName  = flagSet.String("codec", "", "Document encoding: json or cbor")
		keyPrefix  = flagSet.String("key-prefix", "", "Prefix of every stored key")
		logLevel   = flagSet.String("log-level", "", "Log level: trace, debug, info, warn, error")
		logFile    = flagSet.String("log-file", "", "Write logs to this file instead of stderr")
		logPretty  = flagSet.Bool("log-pretty", false, "Human readable console logs")
		listen     = flagSet.String("listen", "", "Address of the HTTP API")
		strictRefs = flagSet.Bool("strict-refs", false, "Reject references to unknown goals and resources")
		readOnly   = flagSet.Bool("read-only", false, "Reject every write")
	)

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	config, err := LoadConfig(*envFile)
	if err != nil {
		return nil, nil, err
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			config.DataDir = *dataDir
		case "backend":
			config.Backend = *backend
		case "codec":
			config.Codec = *codecName
		case "key-prefix":
			config.KeyPrefix = *keyPrefix
		case "log-level":
			config.LogLevel = *logLevel
		case "log-file":
			config.LogFile = *logFile
		case "log-pretty":
			config.LogPretty = *logPretty
		case "listen":
			config.Listen = *listen
		case "strict-refs":
			config.StrictRefs = *strictRefs
		case "read-only":
			config.ReadOnly = *readOnly
		}
	})

	if err := config.validate(); err != nil {
		return nil, nil, err
	}

	remainingArgs := flagSet.Args()
	if len(remainingArgs) == 0 {
		return nil, nil, errors.New(usage)
	}

	cmd, err := parseCommand(remainingArgs[0], remainingArgs[1:])
	if err != nil {
		return nil, nil, err
	}
	return cmd, config, nil
}

func parseCommand(name string, args []string) (Command, error) {
	cmdFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	cmdFlags.SetOutput(io.Discard)

	var cmd Command
	switch name {
	case "serve":
		cmd = &ServeCommand{}
	case "process":
		cmd = &ProcessCommand{}
	case "summary":
		cmd = &SummaryCommand{}
	case "due":
		c := &DueCommand{}
		cmdFlags.IntVar(&c.Days, "days", finance.DefaultUpcomingDays, "Look this many days ahead")
		cmd = c
	case "export":
		c := &ExportCommand{}
		cmdFlags.StringVar(&c.Output, "o", "-", "Output file, - for stdout")
		cmd = c
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	if err := cmdFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if cmdFlags.NArg() > 0 {
		return nil, fmt.Errorf("%s: unexpected arguments: %v", name, cmdFlags.Args())
	}
	if c, ok := cmd.(*DueCommand); ok && c.Days < 0 {
		return nil, fmt.Errorf("due: days must not be negative")
	}
	return cmd, nil
}
