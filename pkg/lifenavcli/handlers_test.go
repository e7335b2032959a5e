package lifenavcli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T, config *Config) (*apiClient, *App) {
	app, _ := newTestApp(t, config)
	return &apiClient{t: t, handler: app.Router()}, app
}

func (c *apiClient) do(method, path string, body any, out any) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (c *apiClient) onboard() {
	c.t.Helper()
	require.Equal(c.t, http.StatusCreated, c.do("POST", "/api/profile/onboarding", map[string]string{"name": "Ada", "email": "ada@example.com"}, nil))
}

func TestAPI_onboardingGate(t *testing.T) {
	api, _ := newAPI(t, testConfig())

	var health map[string]any
	assert.Equal(t, http.StatusOK, api.do("GET", "/api/health", nil, &health))
	assert.Equal(t, "not-onboarded", health["state"])

	assert.Equal(t, http.StatusForbidden, api.do("GET", "/api/goals", nil, nil))
	assert.Equal(t, http.StatusBadRequest, api.do("POST", "/api/profile/onboarding", map[string]string{}, nil))

	api.onboard()
	assert.Equal(t, http.StatusOK, api.do("GET", "/api/goals", nil, nil))

	var user models.User
	avatar := "https://example.com/a.png"
	assert.Equal(t, http.StatusOK, api.do("PATCH", "/api/profile", models.UserPatch{Avatar: &avatar}, &user))
	assert.Equal(t, avatar, user.Avatar)

	assert.Equal(t, http.StatusNoContent, api.do("POST", "/api/profile/logout", nil, nil))
	assert.Equal(t, http.StatusForbidden, api.do("GET", "/api/goals", nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do("PATCH", "/api/profile", models.UserPatch{Avatar: &avatar}, nil))
}

func TestAPI_goalsAndMilestones(t *testing.T) {
	api, _ := newAPI(t, testConfig())
	api.onboard()

	var goal models.Goal
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/goals", models.GoalInput{Title: "Read more", Category: models.GoalPersonal}, &goal))

	var m1, m2 models.Milestone
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/goals/"+goal.ID+"/milestones", models.MilestoneInput{Title: "Book one"}, &m1))
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/goals/"+goal.ID+"/milestones", models.MilestoneInput{Title: "Book two"}, &m2))
	require.Equal(t, http.StatusOK, api.do("POST", "/api/goals/"+goal.ID+"/milestones/"+m1.ID+"/toggle", nil, nil))

	require.Equal(t, http.StatusOK, api.do("GET", "/api/goals/"+goal.ID, nil, &goal))
	assert.Equal(t, 50, goal.Progress)

	assert.Equal(t, http.StatusNoContent, api.do("DELETE", "/api/goals/"+goal.ID+"/milestones/"+m2.ID, nil, nil))
	require.Equal(t, http.StatusOK, api.do("GET", "/api/goals/"+goal.ID, nil, &goal))
	assert.Equal(t, 100, goal.Progress)
	assert.True(t, goal.Completed)

	assert.Equal(t, http.StatusNotFound, api.do("POST", "/api/goals/goal_missing/milestones", models.MilestoneInput{Title: "x"}, nil))
	assert.Equal(t, http.StatusNoContent, api.do("DELETE", "/api/goals/"+goal.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do("GET", "/api/goals/"+goal.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do("DELETE", "/api/goals/"+goal.ID, nil, nil))
}

func TestAPI_strictReferences(t *testing.T) {
	config := testConfig()
	config.StrictRefs = true
	api, _ := newAPI(t, config)
	api.onboard()

	assert.Equal(t, http.StatusUnprocessableEntity, api.do("POST", "/api/tasks", models.TaskInput{Title: "Orphan", GoalID: "goal_missing"}, nil))
	assert.Equal(t, http.StatusBadRequest, api.do("POST", "/api/tasks", nil, nil))
}

func TestAPI_readOnly(t *testing.T) {
	api, app := newAPI(t, testConfig())
	api.onboard()

	app.Navigator().SetReadOnly(true)
	assert.Equal(t, http.StatusConflict, api.do("POST", "/api/mood", models.MoodInput{Mood: models.MoodGood}, nil))

	var entries []models.MoodEntry
	assert.Equal(t, http.StatusOK, api.do("GET", "/api/mood", nil, &entries))
	assert.Empty(t, entries)
}

func TestAPI_finance(t *testing.T) {
	api, _ := newAPI(t, testConfig())
	api.onboard()

	require.Equal(t, http.StatusCreated, api.do("POST", "/api/finance/transactions",
		map[string]any{"date": "2024-01-05", "amount": "1000", "type": "income", "category": "Salary"}, nil))
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/finance/transactions",
		map[string]any{"date": "2024-01-10", "amount": "200", "type": "expense", "category": "Food"}, nil))

	var summary struct {
		Net        string                 `json:"net"`
		ByCategory []models.CategoryTotal `json:"by_category"`
	}
	require.Equal(t, http.StatusOK, api.do("GET", "/api/finance/summary?from=2024-01-01&to=2024-01-31", nil, &summary))
	assert.Equal(t, "800", summary.Net)
	require.Len(t, summary.ByCategory, 1)
	assert.Equal(t, "Food", summary.ByCategory[0].Category)

	assert.Equal(t, http.StatusBadRequest, api.do("GET", "/api/finance/summary?from=january", nil, nil))

	require.Equal(t, http.StatusOK, api.do("GET", "/api/finance/summary?from=2024-01-08", nil, &summary))
	assert.Equal(t, "800", summary.Net, "a single bound does not filter")

	var goal models.FinancialGoal
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/finance/goals",
		map[string]any{"title": "Bike", "target_amount": "100", "category": "purchase"}, &goal))
	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, api.do("POST", "/api/finance/goals/"+goal.ID+"/contribute", map[string]any{"amount": "60"}, &goal))
	}
	assert.Equal(t, "100", goal.CurrentAmount.String())

	require.Equal(t, http.StatusCreated, api.do("POST", "/api/finance/recurring",
		map[string]any{"amount": "50", "category": "Gym", "type": "expense", "frequency": "monthly", "start_date": "2024-01-01"}, nil))
	var created []models.FinancialTransaction
	require.Equal(t, http.StatusOK, api.do("POST", "/api/finance/recurring/process", nil, &created))
	assert.Len(t, created, 3)

	var bills []models.Bill
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/finance/bills",
		map[string]any{"name": "Water", "amount": "30", "due_date": "2024-04-03", "category": "Utilities"}, nil))
	require.Equal(t, http.StatusOK, api.do("GET", "/api/finance/bills/upcoming?days=7", nil, &bills))
	assert.Len(t, bills, 1)
	assert.Equal(t, http.StatusBadRequest, api.do("GET", "/api/finance/bills/upcoming?days=-1", nil, nil))
}

func TestAPI_motivation(t *testing.T) {
	api, _ := newAPI(t, testConfig())
	api.onboard()

	assert.Equal(t, http.StatusNotFound, api.do("GET", "/api/motivation/random", nil, nil))

	var quote models.MotivationalContent
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/motivation", models.ContentInput{Type: models.ContentQuote, Title: "Begin"}, &quote))

	var fav map[string]bool
	require.Equal(t, http.StatusOK, api.do("POST", "/api/motivation/"+quote.ID+"/favorite", nil, &fav))
	assert.True(t, fav["favorite"])

	var picked models.MotivationalContent
	require.Equal(t, http.StatusOK, api.do("GET", "/api/motivation/random?type=quote", nil, &picked))
	assert.Equal(t, quote.ID, picked.ID)

	assert.Equal(t, http.StatusNotFound, api.do("POST", "/api/motivation/content_missing/favorite", nil, nil))
}

func TestAPI_reports(t *testing.T) {
	api, _ := newAPI(t, testConfig())
	api.onboard()

	var o Overview
	require.Equal(t, http.StatusOK, api.do("GET", "/api/summary", nil, &o))
	assert.Equal(t, "Ada", o.User)

	var due DueReport
	require.Equal(t, http.StatusOK, api.do("GET", "/api/due?days=3", nil, &due))
	assert.Equal(t, "2024-04-04", due.Until.String())

	var snap map[string]any
	require.Equal(t, http.StatusOK, api.do("GET", "/api/export", nil, &snap))
	assert.Contains(t, snap, "transactions")
}
