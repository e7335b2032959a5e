package lifenavcli

import (
	"context"
	"fmt"
	"os"
)

// Main parses args, opens the stores and runs the selected command. It is
// what cmd/lifenav calls and what tests call instead of building the binary.
//
// Environment variables, all optional:
//
//	LIFENAV_DATA_DIR     directory of the sqlite database (default .lifenav)
//	LIFENAV_BACKEND      sqlite or memory (default sqlite)
//	LIFENAV_CODEC        json or cbor (default json)
//	LIFENAV_KEY_PREFIX   prefix of every stored key (default pln-)
//	LIFENAV_LOG_LEVEL    zerolog level (default info)
//	LIFENAV_LOG_FILE     append logs to this file
//	LIFENAV_LOG_PRETTY   human readable console logs
//	LIFENAV_LISTEN       address of the HTTP API (default 127.0.0.1:8787)
//	LIFENAV_STRICT_REFS  reject references to unknown goals and resources
//	LIFENAV_READ_ONLY    reject every write
func Main(ctx context.Context, args []string, opts ...Option) error {
	cmd, config, err := Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	app, err := New(ctx, config, opts...)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer app.Close()

	return app.Execute(ctx, cmd)
}

// Execute runs one command against the opened stores.
func (a *App) Execute(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case *ServeCommand:
		if err := a.Serve(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case *ProcessCommand:
		created, err := a.nav.Finance.ProcessRecurringTransactions(ctx)
		if err != nil {
			return fmt.Errorf("processing failed: %w", err)
		}
		_, err = fmt.Fprintf(a.out, "created %d recurring transactions\n", len(created))
		return err
	case *SummaryCommand:
		return printOverview(a.out, a.Overview())
	case *DueCommand:
		return printDue(a.out, a.Due(c.Days))
	case *ExportCommand:
		return a.export(c.Output)
	default:
		return fmt.Errorf("unknown command type: %T", cmd)
	}
	return nil
}

func (a *App) export(path string) error {
	if path == "" || path == "-" {
		return a.nav.WriteExport(a.out)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := a.nav.WriteExport(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	a.log.Info().Str("path", path).Msg("exported")
	return nil
}
