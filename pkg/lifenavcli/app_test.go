package lifenavcli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/lifenav/lifenav"
	"github.com/lifenav/lifenav/pkg/clock"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *Config {
	return &Config{
		Backend:  BackendMemory,
		Codec:    "json",
		LogLevel: "disabled",
		Listen:   "127.0.0.1:0",
	}
}

func newTestApp(t *testing.T, config *Config) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app, err := New(context.Background(), config, WithClock(clock.NewFixed(testNow)), WithOutput(&out), WithLogWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, &out
}

func TestExecute_process(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, testConfig())

	_, err := app.Navigator().Finance.AddRecurring(ctx, models.RecurringInput{
		Amount:    decimal.NewFromInt(1200),
		Category:  "Rent",
		Type:      models.Expense,
		Frequency: models.Monthly,
		StartDate: models.NewDate(2024, time.January, 1),
	})
	require.NoError(t, err)

	require.NoError(t, app.Execute(ctx, &ProcessCommand{}))
	assert.Equal(t, "created 3 recurring transactions\n", out.String())

	out.Reset()
	require.NoError(t, app.Execute(ctx, &ProcessCommand{}))
	assert.Equal(t, "created 0 recurring transactions\n", out.String())
}

func TestExecute_summary(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, testConfig())
	nav := app.Navigator()

	_, err := nav.Profile.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)
	_, err = nav.Finance.AddTransaction(ctx, models.TransactionInput{
		Date: models.NewDate(2024, time.April, 1), Amount: decimal.NewFromInt(1000), Type: models.Income, Category: "Salary",
	})
	require.NoError(t, err)
	_, err = nav.Finance.AddTransaction(ctx, models.TransactionInput{
		Date: models.NewDate(2024, time.March, 10), Amount: decimal.NewFromInt(200), Type: models.Expense, Category: "Food",
	})
	require.NoError(t, err)

	o := app.Overview()
	assert.Equal(t, "Ada", o.User)
	assert.Equal(t, "2024-04-01", o.Finance.Month.Start.String())
	assert.Equal(t, "2024-04-30", o.Finance.Month.End.String())
	assert.Equal(t, "1000.00", o.Finance.Net.StringFixed(2), "March expenses are outside the month")

	require.NoError(t, app.Execute(ctx, &SummaryCommand{}))
	assert.Contains(t, out.String(), "Hello, Ada")
	assert.Contains(t, out.String(), "net 1000.00")
}

func TestExecute_due(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, testConfig())
	nav := app.Navigator()

	soon := models.NewDate(2024, time.April, 5)
	later := models.NewDate(2024, time.May, 20)
	_, err := nav.Tasks.AddTask(ctx, models.TaskInput{Title: "File taxes", DueDate: &soon})
	require.NoError(t, err)
	_, err = nav.Tasks.AddTask(ctx, models.TaskInput{Title: "Plan trip", DueDate: &later})
	require.NoError(t, err)
	_, err = nav.Social.AddConnection(ctx, models.ConnectionInput{Name: "Grace", ContactFrequency: models.ContactWeekly})
	require.NoError(t, err)
	_, err = nav.Finance.AddBill(ctx, models.BillInput{Name: "Power", Amount: decimal.NewFromInt(80), DueDate: soon})
	require.NoError(t, err)

	r := app.Due(7)
	require.Len(t, r.Tasks, 1)
	assert.Equal(t, "File taxes", r.Tasks[0].Title)
	require.Len(t, r.Connections, 1)
	require.Len(t, r.Bills, 1)

	require.NoError(t, app.Execute(ctx, &DueCommand{Days: 7}))
	assert.Contains(t, out.String(), "Grace (weekly, last never)")
	assert.Contains(t, out.String(), "2024-04-05  Power  80.00")
}

func TestExecute_export(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, testConfig())
	_, err := app.Navigator().Profile.CompleteOnboarding(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, app.Execute(ctx, &ExportCommand{Output: "-"}))
	var snap lifenav.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Equal(t, "Ada", snap.User.Name)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, app.Execute(ctx, &ExportCommand{Output: path}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, out.String(), string(data))
}

func TestNew_sqlitePersists(t *testing.T) {
	ctx := context.Background()
	config := testConfig()
	config.Backend = BackendSQLite
	config.Codec = "cbor"
	config.DataDir = t.TempDir()

	app, _ := newTestApp(t, config)
	_, err := app.Navigator().Goals.AddGoal(ctx, models.GoalInput{Title: "Ship it"})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	reopened, _ := newTestApp(t, config)
	goals := reopened.Navigator().Goals.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Ship it", goals[0].Title)
}

func TestMain_memory(t *testing.T) {
	var out bytes.Buffer
	err := Main(context.Background(), []string{"-backend", "memory", "-log-level", "disabled", "process"},
		WithOutput(&out), WithClock(clock.NewFixed(testNow)))
	require.NoError(t, err)
	assert.Equal(t, "created 0 recurring transactions\n", out.String())
}
