package lifenavcli

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/lifenav/lifenav/pkg/finance"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/shopspring/decimal"
)

// Profile

func (a *App) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"user":  a.nav.Profile.User(),
		"state": a.nav.State(),
	})
}

func (a *App) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	user, err := a.nav.Profile.CompleteOnboarding(r.Context(), req.Name, req.Email)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (a *App) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.UserPatch
	if !decode(w, r, &p) {
		return
	}
	user, err := a.nav.Profile.UpdateUser(r.Context(), p)
	respondResult(a, w, r, user, err)
}

func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.nav.Profile.Logout(r.Context()); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Goals

func (a *App) handleListGoals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("active") == "true":
		respondJSON(w, http.StatusOK, a.nav.Goals.ActiveGoals())
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, a.nav.Goals.GoalsByCategory(models.GoalCategory(q.Get("category"))))
	default:
		respondJSON(w, http.StatusOK, a.nav.Goals.Goals())
	}
}

func (a *App) handleAddMilestone(w http.ResponseWriter, r *http.Request) {
	var in models.MilestoneInput
	if !decode(w, r, &in) {
		return
	}
	m, err := a.nav.Goals.AddMilestone(r.Context(), mux.Vars(r)["id"], in)
	if err == nil && m == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

func (a *App) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	var p models.MilestonePatch
	if !decode(w, r, &p) {
		return
	}
	vars := mux.Vars(r)
	m, err := a.nav.Goals.UpdateMilestone(r.Context(), vars["id"], vars["mid"], p)
	respondResult(a, w, r, m, err)
}

func (a *App) handleToggleMilestone(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	m, err := a.nav.Goals.ToggleMilestoneCompletion(r.Context(), vars["id"], vars["mid"])
	respondResult(a, w, r, m, err)
}

func (a *App) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	found, err := a.nav.Goals.DeleteMilestone(r.Context(), vars["id"], vars["mid"])
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Tasks

func (a *App) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("goal") != "":
		respondJSON(w, http.StatusOK, a.nav.Tasks.TasksByGoal(q.Get("goal")))
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, a.nav.Tasks.TasksByCategory(models.TaskCategory(q.Get("category"))))
	case q.Get("status") == "pending":
		respondJSON(w, http.StatusOK, a.nav.Tasks.PendingTasks())
	case q.Get("status") == "completed":
		respondJSON(w, http.StatusOK, a.nav.Tasks.CompletedTasks())
	case q.Get("due") != "":
		d, err := models.ParseDate(q.Get("due"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid due date")
			return
		}
		respondJSON(w, http.StatusOK, a.nav.Tasks.TasksDueBy(d))
	default:
		respondJSON(w, http.StatusOK, a.nav.Tasks.Tasks())
	}
}

// Mood

func (a *App) handleListMood(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if tag := q.Get("tag"); tag != "" {
		respondJSON(w, http.StatusOK, a.nav.Mood.EntriesByTag(tag))
		return
	}
	if q.Get("from") != "" || q.Get("to") != "" {
		start, err := time.Parse(time.RFC3339, q.Get("from"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid from time")
			return
		}
		end, err := time.Parse(time.RFC3339, q.Get("to"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid to time")
			return
		}
		respondJSON(w, http.StatusOK, a.nav.Mood.EntriesByDateRange(start, end))
		return
	}
	respondJSON(w, http.StatusOK, a.nav.Mood.Entries())
}

func (a *App) handleMoodSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.nav.Mood.Summary())
}

// Social

func (a *App) handleListConnections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("due") == "true":
		respondJSON(w, http.StatusOK, a.nav.Social.ConnectionsDueForContact())
	case q.Get("relationship") != "":
		respondJSON(w, http.StatusOK, a.nav.Social.ConnectionsByRelationship(models.Relationship(q.Get("relationship"))))
	default:
		respondJSON(w, http.StatusOK, a.nav.Social.Connections())
	}
}

func (a *App) handleContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		At *time.Time `json:"at"`
	}
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	c, err := a.nav.Social.UpdateLastContact(r.Context(), mux.Vars(r)["id"], req.At)
	respondResult(a, w, r, c, err)
}

// Learning

func (a *App) handleListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("favorites") == "true":
		respondJSON(w, http.StatusOK, a.nav.Learning.Favorites())
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, a.nav.Learning.ResourcesByCategory(q.Get("category")))
	case q.Get("type") != "":
		respondJSON(w, http.StatusOK, a.nav.Learning.ResourcesByType(models.ResourceType(q.Get("type"))))
	default:
		respondJSON(w, http.StatusOK, a.nav.Learning.Resources())
	}
}

func (a *App) handleResourceProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Increment int `json:"increment"`
	}
	if !decode(w, r, &req) {
		return
	}
	res, err := a.nav.Learning.UpdateProgress(r.Context(), mux.Vars(r)["id"], req.Increment)
	respondResult(a, w, r, res, err)
}

func (a *App) handleCompleteResource(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Completed bool `json:"completed"`
	}{Completed: true}
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	res, err := a.nav.Learning.MarkCompleted(r.Context(), mux.Vars(r)["id"], req.Completed)
	respondResult(a, w, r, res, err)
}

func (a *App) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("resource"); id != "" {
		respondJSON(w, http.StatusOK, a.nav.Learning.SessionsByResource(id))
		return
	}
	respondJSON(w, http.StatusOK, a.nav.Learning.Sessions())
}

func (a *App) handleListNotes(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("resource"); id != "" {
		respondJSON(w, http.StatusOK, a.nav.Learning.NotesByResource(id))
		return
	}
	respondJSON(w, http.StatusOK, a.nav.Learning.Notes())
}

func (a *App) handleLearningStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"total_seconds":   a.nav.Learning.TotalLearningTime(),
		"weekly_seconds":  a.nav.Learning.WeeklyLearningTime(),
		"completion_rate": a.nav.Learning.CompletionRate(),
	})
}

// Finance

func (a *App) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng, err := queryRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date range")
		return
	}
	switch {
	case rng != nil:
		respondJSON(w, http.StatusOK, a.nav.Finance.TransactionsByDateRange(*rng))
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, a.nav.Finance.TransactionsByCategory(q.Get("category")))
	case q.Get("type") != "":
		respondJSON(w, http.StatusOK, a.nav.Finance.TransactionsByType(models.TransactionType(q.Get("type"))))
	default:
		respondJSON(w, http.StatusOK, a.nav.Finance.Transactions())
	}
}

func (a *App) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	rng, err := queryRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date range")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"income":      a.nav.Finance.TotalIncome(rng),
		"expenses":    a.nav.Finance.TotalExpenses(rng),
		"net":         a.nav.Finance.NetIncome(rng),
		"by_category": a.nav.Finance.ExpensesByCategory(rng),
	})
}

func (a *App) handleMonthly(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", a.clock.Now().Year())
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"year":     year,
		"income":   a.nav.Finance.MonthlyIncome(year),
		"expenses": a.nav.Finance.MonthlyExpenses(year),
	})
}

func (a *App) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}
	g, err := a.nav.Finance.ContributeToGoal(r.Context(), mux.Vars(r)["id"], req.Amount)
	respondResult(a, w, r, g, err)
}

func (a *App) handleProcessRecurring(w http.ResponseWriter, r *http.Request) {
	created, err := a.nav.Finance.ProcessRecurringTransactions(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, created)
}

func (a *App) handleUpcomingBills(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", finance.DefaultUpcomingDays)
	if err != nil || days < 0 {
		respondError(w, http.StatusBadRequest, "invalid days")
		return
	}
	respondJSON(w, http.StatusOK, a.nav.Finance.UpcomingBills(days))
}

func (a *App) handleBudgetProgress(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if a.nav.Finance.Budget(id) == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, a.nav.Finance.BudgetProgress(id))
}

func (a *App) handleBudgetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.nav.Finance.BudgetCategories(mux.Vars(r)["id"]))
}

func (a *App) handleAddBudgetCategory(w http.ResponseWriter, r *http.Request) {
	var in models.BudgetCategoryInput
	if !decode(w, r, &in) {
		return
	}
	in.BudgetID = mux.Vars(r)["id"]
	c, err := a.nav.Finance.AddBudgetCategory(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// Motivation

func (a *App) handleListContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("favorites") == "true":
		respondJSON(w, http.StatusOK, a.nav.Motivation.Favorites())
	case q.Get("type") != "":
		respondJSON(w, http.StatusOK, a.nav.Motivation.ContentByType(models.ContentType(q.Get("type"))))
	case q.Get("category") != "":
		respondJSON(w, http.StatusOK, a.nav.Motivation.ContentByCategory(q.Get("category")))
	default:
		respondJSON(w, http.StatusOK, a.nav.Motivation.All())
	}
}

func (a *App) handleRandomContent(w http.ResponseWriter, r *http.Request) {
	c := a.nav.Motivation.Random(models.ContentType(r.URL.Query().Get("type")))
	if c == nil {
		respondError(w, http.StatusNotFound, "no content")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (a *App) handleFavoriteContent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if a.nav.Motivation.Content(id) == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	favorite, err := a.nav.Motivation.ToggleFavorite(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

// Reports

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.Overview())
}

func (a *App) handleDue(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", finance.DefaultUpcomingDays)
	if err != nil || days < 0 {
		respondError(w, http.StatusBadRequest, "invalid days")
		return
	}
	respondJSON(w, http.StatusOK, a.Due(days))
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.nav.Export()); err != nil {
		a.log.Error().Err(err).Msg("export failed")
	}
}
