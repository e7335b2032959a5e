package lifenavcli

// Command is one subcommand together with its own options. Settings shared by
// every command live in Config.
type Command interface {
	Name() string
}

// ServeCommand runs the local HTTP API until the context is cancelled.
type ServeCommand struct{}

func (c *ServeCommand) Name() string { return "serve" }

// ProcessCommand materializes due recurring transactions and reports how many
// were created.
type ProcessCommand struct{}

func (c *ProcessCommand) Name() string { return "process" }

// SummaryCommand prints an overview of every store.
type SummaryCommand struct{}

func (c *SummaryCommand) Name() string { return "summary" }

// DueCommand lists what needs attention within the next Days days: open tasks,
// connections due for contact and unpaid bills.
type DueCommand struct {
	Days int
}

func (c *DueCommand) Name() string { return "due" }

// ExportCommand writes every store as JSON to Output, or to standard output
// when Output is empty or "-".
type ExportCommand struct {
	Output string
}

func (c *ExportCommand) Name() string { return "export" }
