package lifenavcli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Router builds the HTTP API served by the serve command.
//
// Open to everyone:
//
//	GET    /api/health
//	GET    /api/profile
//	PATCH  /api/profile
//	POST   /api/profile/onboarding
//	POST   /api/profile/logout
//
// Everything else answers 403 until onboarding is complete:
//
//	GET|POST          /api/goals
//	GET|PATCH|DELETE  /api/goals/{id}
//	POST              /api/goals/{id}/milestones
//	PATCH|DELETE      /api/goals/{id}/milestones/{mid}
//	POST              /api/goals/{id}/milestones/{mid}/toggle
//	GET|POST          /api/tasks
//	GET|PATCH|DELETE  /api/tasks/{id}
//	POST              /api/tasks/{id}/toggle
//	GET|POST          /api/mood
//	GET               /api/mood/summary
//	GET|PATCH|DELETE  /api/mood/{id}
//	GET|POST          /api/connections
//	GET|PATCH|DELETE  /api/connections/{id}
//	POST              /api/connections/{id}/contact
//	GET|POST          /api/learning/resources
//	GET|PATCH|DELETE  /api/learning/resources/{id}
//	POST              /api/learning/resources/{id}/favorite|progress|complete
//	GET|POST          /api/learning/sessions, /api/learning/notes
//	PATCH|DELETE      /api/learning/sessions/{id}, /api/learning/notes/{id}
//	GET               /api/learning/stats
//	GET|POST          /api/finance/transactions|goals|recurring|bills|budgets
//	PATCH|DELETE      /api/finance/.../{id}
//	POST              /api/finance/goals/{id}/contribute
//	POST              /api/finance/recurring/process
//	GET               /api/finance/bills/upcoming
//	POST              /api/finance/bills/{id}/toggle
//	GET               /api/finance/budgets/{id}/progress
//	GET|POST          /api/finance/budgets/{id}/categories
//	PATCH|DELETE      /api/finance/categories/{id}
//	GET               /api/finance/summary, /api/finance/monthly
//	GET|POST          /api/motivation
//	GET               /api/motivation/random
//	PATCH|DELETE      /api/motivation/{id}
//	POST              /api/motivation/{id}/favorite
//	GET               /api/summary, /api/due, /api/export
func (a *App) Router() http.Handler {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", a.handleHealth).Methods("GET")

	api.HandleFunc("/profile", a.handleGetProfile).Methods("GET")
	api.HandleFunc("/profile", a.handleUpdateProfile).Methods("PATCH")
	api.HandleFunc("/profile/onboarding", a.handleOnboarding).Methods("POST")
	api.HandleFunc("/profile/logout", a.handleLogout).Methods("POST")

	gated := api.NewRoute().Subrouter()
	gated.Use(a.requireOnboarded)

	nav := a.nav

	goals := gated.PathPrefix("/goals").Subrouter()
	goals.HandleFunc("", a.handleListGoals).Methods("GET")
	goals.HandleFunc("", create(a, nav.Goals.AddGoal)).Methods("POST")
	goals.HandleFunc("/{id}", get(nav.Goals.Goal)).Methods("GET")
	goals.HandleFunc("/{id}", patch(a, nav.Goals.UpdateGoal)).Methods("PATCH")
	goals.HandleFunc("/{id}", remove(a, nav.Goals.DeleteGoal)).Methods("DELETE")
	goals.HandleFunc("/{id}/milestones", a.handleAddMilestone).Methods("POST")
	goals.HandleFunc("/{id}/milestones/{mid}", a.handleUpdateMilestone).Methods("PATCH")
	goals.HandleFunc("/{id}/milestones/{mid}", a.handleDeleteMilestone).Methods("DELETE")
	goals.HandleFunc("/{id}/milestones/{mid}/toggle", a.handleToggleMilestone).Methods("POST")

	tasks := gated.PathPrefix("/tasks").Subrouter()
	tasks.HandleFunc("", a.handleListTasks).Methods("GET")
	tasks.HandleFunc("", create(a, nav.Tasks.AddTask)).Methods("POST")
	tasks.HandleFunc("/{id}", get(nav.Tasks.Task)).Methods("GET")
	tasks.HandleFunc("/{id}", patch(a, nav.Tasks.UpdateTask)).Methods("PATCH")
	tasks.HandleFunc("/{id}", remove(a, nav.Tasks.DeleteTask)).Methods("DELETE")
	tasks.HandleFunc("/{id}/toggle", act(a, nav.Tasks.ToggleTaskCompletion)).Methods("POST")

	mood := gated.PathPrefix("/mood").Subrouter()
	mood.HandleFunc("", a.handleListMood).Methods("GET")
	mood.HandleFunc("", create(a, nav.Mood.AddEntry)).Methods("POST")
	mood.HandleFunc("/summary", a.handleMoodSummary).Methods("GET")
	mood.HandleFunc("/{id}", get(nav.Mood.Entry)).Methods("GET")
	mood.HandleFunc("/{id}", patch(a, nav.Mood.UpdateEntry)).Methods("PATCH")
	mood.HandleFunc("/{id}", remove(a, nav.Mood.DeleteEntry)).Methods("DELETE")

	social := gated.PathPrefix("/connections").Subrouter()
	social.HandleFunc("", a.handleListConnections).Methods("GET")
	social.HandleFunc("", create(a, nav.Social.AddConnection)).Methods("POST")
	social.HandleFunc("/{id}", get(nav.Social.Connection)).Methods("GET")
	social.HandleFunc("/{id}", patch(a, nav.Social.UpdateConnection)).Methods("PATCH")
	social.HandleFunc("/{id}", remove(a, nav.Social.DeleteConnection)).Methods("DELETE")
	social.HandleFunc("/{id}/contact", a.handleContact).Methods("POST")

	learning := gated.PathPrefix("/learning").Subrouter()
	learning.HandleFunc("/resources", a.handleListResources).Methods("GET")
	learning.HandleFunc("/resources", create(a, nav.Learning.AddResource)).Methods("POST")
	learning.HandleFunc("/resources/{id}", get(nav.Learning.Resource)).Methods("GET")
	learning.HandleFunc("/resources/{id}", patch(a, nav.Learning.UpdateResource)).Methods("PATCH")
	learning.HandleFunc("/resources/{id}", remove(a, nav.Learning.DeleteResource)).Methods("DELETE")
	learning.HandleFunc("/resources/{id}/favorite", act(a, nav.Learning.ToggleFavorite)).Methods("POST")
	learning.HandleFunc("/resources/{id}/progress", a.handleResourceProgress).Methods("POST")
	learning.HandleFunc("/resources/{id}/complete", a.handleCompleteResource).Methods("POST")
	learning.HandleFunc("/sessions", a.handleListSessions).Methods("GET")
	learning.HandleFunc("/sessions", create(a, nav.Learning.AddSession)).Methods("POST")
	learning.HandleFunc("/sessions/{id}", patch(a, nav.Learning.UpdateSession)).Methods("PATCH")
	learning.HandleFunc("/sessions/{id}", remove(a, nav.Learning.DeleteSession)).Methods("DELETE")
	learning.HandleFunc("/notes", a.handleListNotes).Methods("GET")
	learning.HandleFunc("/notes", create(a, nav.Learning.AddNote)).Methods("POST")
	learning.HandleFunc("/notes/{id}", patch(a, nav.Learning.UpdateNote)).Methods("PATCH")
	learning.HandleFunc("/notes/{id}", remove(a, nav.Learning.DeleteNote)).Methods("DELETE")
	learning.HandleFunc("/stats", a.handleLearningStats).Methods("GET")

	fin := gated.PathPrefix("/finance").Subrouter()
	fin.HandleFunc("/transactions", a.handleListTransactions).Methods("GET")
	fin.HandleFunc("/transactions", create(a, nav.Finance.AddTransaction)).Methods("POST")
	fin.HandleFunc("/transactions/{id}", patch(a, nav.Finance.UpdateTransaction)).Methods("PATCH")
	fin.HandleFunc("/transactions/{id}", remove(a, nav.Finance.DeleteTransaction)).Methods("DELETE")
	fin.HandleFunc("/goals", list(nav.Finance.Goals)).Methods("GET")
	fin.HandleFunc("/goals", create(a, nav.Finance.AddGoal)).Methods("POST")
	fin.HandleFunc("/goals/{id}", get(nav.Finance.Goal)).Methods("GET")
	fin.HandleFunc("/goals/{id}", patch(a, nav.Finance.UpdateGoal)).Methods("PATCH")
	fin.HandleFunc("/goals/{id}", remove(a, nav.Finance.DeleteGoal)).Methods("DELETE")
	fin.HandleFunc("/goals/{id}/contribute", a.handleContribute).Methods("POST")
	fin.HandleFunc("/recurring", list(nav.Finance.RecurringTransactions)).Methods("GET")
	fin.HandleFunc("/recurring", create(a, nav.Finance.AddRecurring)).Methods("POST")
	fin.HandleFunc("/recurring/process", a.handleProcessRecurring).Methods("POST")
	fin.HandleFunc("/recurring/{id}", patch(a, nav.Finance.UpdateRecurring)).Methods("PATCH")
	fin.HandleFunc("/recurring/{id}", remove(a, nav.Finance.DeleteRecurring)).Methods("DELETE")
	fin.HandleFunc("/bills", list(nav.Finance.Bills)).Methods("GET")
	fin.HandleFunc("/bills", create(a, nav.Finance.AddBill)).Methods("POST")
	fin.HandleFunc("/bills/upcoming", a.handleUpcomingBills).Methods("GET")
	fin.HandleFunc("/bills/{id}", patch(a, nav.Finance.UpdateBill)).Methods("PATCH")
	fin.HandleFunc("/bills/{id}", remove(a, nav.Finance.DeleteBill)).Methods("DELETE")
	fin.HandleFunc("/bills/{id}/toggle", act(a, nav.Finance.ToggleBillPaid)).Methods("POST")
	fin.HandleFunc("/budgets", list(nav.Finance.Budgets)).Methods("GET")
	fin.HandleFunc("/budgets", create(a, nav.Finance.AddBudget)).Methods("POST")
	fin.HandleFunc("/budgets/{id}", get(nav.Finance.Budget)).Methods("GET")
	fin.HandleFunc("/budgets/{id}", patch(a, nav.Finance.UpdateBudget)).Methods("PATCH")
	fin.HandleFunc("/budgets/{id}", remove(a, nav.Finance.DeleteBudget)).Methods("DELETE")
	fin.HandleFunc("/budgets/{id}/progress", a.handleBudgetProgress).Methods("GET")
	fin.HandleFunc("/budgets/{id}/categories", a.handleBudgetCategories).Methods("GET")
	fin.HandleFunc("/budgets/{id}/categories", a.handleAddBudgetCategory).Methods("POST")
	fin.HandleFunc("/categories/{id}", patch(a, nav.Finance.UpdateBudgetCategory)).Methods("PATCH")
	fin.HandleFunc("/categories/{id}", remove(a, nav.Finance.DeleteBudgetCategory)).Methods("DELETE")
	fin.HandleFunc("/summary", a.handleFinanceSummary).Methods("GET")
	fin.HandleFunc("/monthly", a.handleMonthly).Methods("GET")

	motivation := gated.PathPrefix("/motivation").Subrouter()
	motivation.HandleFunc("", a.handleListContent).Methods("GET")
	motivation.HandleFunc("", create(a, nav.Motivation.AddContent)).Methods("POST")
	motivation.HandleFunc("/random", a.handleRandomContent).Methods("GET")
	motivation.HandleFunc("/{id}", get(nav.Motivation.Content)).Methods("GET")
	motivation.HandleFunc("/{id}", patch(a, nav.Motivation.UpdateContent)).Methods("PATCH")
	motivation.HandleFunc("/{id}", remove(a, nav.Motivation.DeleteContent)).Methods("DELETE")
	motivation.HandleFunc("/{id}/favorite", a.handleFavoriteContent).Methods("POST")

	gated.HandleFunc("/summary", a.handleSummary).Methods("GET")
	gated.HandleFunc("/due", a.handleDue).Methods("GET")
	gated.HandleFunc("/export", a.handleExport).Methods("GET")

	return router
}

// Serve runs the HTTP API on Config.Listen until ctx is cancelled, then shuts
// down gracefully.
func (a *App) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.Listen,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	a.log.Info().Str("addr", a.config.Listen).Msg("serving API")

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
