package lifenavcli

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/lifenav/lifenav"
	"github.com/lifenav/lifenav/pkg/models"
	"github.com/lifenav/lifenav/pkg/store"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_, _ = w.Write(response)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// fail maps store errors to status codes. Anything unexpected is logged and
// reported as a 500.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, lifenav.ErrNotOnboarded):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrReadOnly):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrDanglingReference):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// The helpers below turn store methods into handlers. Unknown ids, which the
// stores report as a nil result, become 404.

func list[T any](fn func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, fn())
	}
}

func get[T any](fn func(id string) *T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := fn(mux.Vars(r)["id"])
		if v == nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		respondJSON(w, http.StatusOK, v)
	}
}

func create[In, Out any](a *App, fn func(context.Context, In) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !decode(w, r, &in) {
			return
		}
		out, err := fn(r.Context(), in)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, out)
	}
}

func patch[P, Out any](a *App, fn func(context.Context, string, P) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p P
		if !decode(w, r, &p) {
			return
		}
		out, err := fn(r.Context(), mux.Vars(r)["id"], p)
		respondResult(a, w, r, out, err)
	}
}

func act[Out any](a *App, fn func(context.Context, string) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r.Context(), mux.Vars(r)["id"])
		respondResult(a, w, r, out, err)
	}
}

func remove(a *App, fn func(context.Context, string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		found, err := fn(r.Context(), mux.Vars(r)["id"])
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
}

func respondResult[T any](a *App, w http.ResponseWriter, r *http.Request, v *T, err error) {
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if v == nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// queryRange reads an optional from/to pair of dates. A range applies only
// when both are set; a single bound is validated and otherwise ignored.
func queryRange(r *http.Request) (*models.DateRange, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	var rng models.DateRange
	var err error
	if from != "" {
		if rng.Start, err = models.ParseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if rng.End, err = models.ParseDate(to); err != nil {
			return nil, err
		}
	}
	if from == "" || to == "" {
		return nil, nil
	}
	return &rng, nil
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"state":     a.nav.State(),
		"read_only": a.nav.IsReadOnly(),
		"time":      a.clock.Now().Unix(),
	})
}

func (a *App) requireOnboarded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.nav.RequireOnboarded(); err != nil {
			a.fail(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
