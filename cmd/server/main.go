package main

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/desirecabinets/estimator/internal/catalog"
	"github.com/desirecabinets/estimator/internal/config"
	"github.com/desirecabinets/estimator/internal/estimate"
	"github.com/desirecabinets/estimator/internal/store"
)

type server struct {
	auth    *authService
	session *estimate.Session
	store   *store.Store
	catalog *catalog.Catalog
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer st.Close()

	if err := st.Migrate("migrations"); err != nil {
		logrus.WithError(err).Fatal("failed to run database migrations")
	}

	srv := &server{
		auth:    newAuthService(cfg.AccessPIN, cfg.SessionSecret),
		session: estimate.NewSession(st.LoadEstimate()),
		store:   st,
		catalog: catalog.Default,
	}

	// Durability safety net alongside the save performed after every mutation.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.AutosaveEvery), srv.autosave); err != nil {
		logrus.WithError(err).Fatal("failed to schedule autosave")
	}
	scheduler.Start()
	defer scheduler.Stop()
	logrus.WithField("every", cfg.AutosaveEvery.String()).Info("autosave scheduled")

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)
	r.Get("/login", srv.handleLoginForm)
	r.Post("/login", srv.handleLoginSubmit)
	r.Post("/logout", srv.handleLogout)
	r.Get("/", srv.handleEstimator)
	r.Post("/rooms/add", srv.handleRoomAdd)
	r.Post("/rooms/{index}/remove", srv.handleRoomRemove)
	r.Post("/rooms/{index}/select", srv.handleRoomSelect)
	r.Post("/room", srv.handleRoomUpdate)
	r.Post("/addons", srv.handleAddonUpdate)
	r.Post("/client", srv.handleClientUpdate)
	r.Post("/pricing", srv.handlePricingUpdate)
	r.Post("/notes", srv.handleNotesUpdate)
	r.Post("/reset", srv.handleReset)
	r.Get("/quote.xlsx", srv.handleQuoteDocument)
	r.Get("/quotes", srv.handleQuotesList)
	r.Get("/export", srv.handleExport)
	r.Post("/import", srv.handleImport)

	addr := ":" + cfg.Port
	logrus.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// persist snapshots the session and writes it to the state slot. A failed
// save is logged and otherwise unobserved.
func (s *server) persist() {
	snap, _ := s.session.Snapshot()
	if err := s.store.SaveEstimate(snap); err != nil {
		logrus.WithError(err).Warn("failed to save estimate")
	}
}

func (s *server) autosave() {
	s.persist()
}

func (s *server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if isAuthenticated(r, s.auth) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderTemplate(w, "login.html", baseViewData{})
}

func (s *server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if !s.auth.checkPIN(strings.TrimSpace(r.FormValue("pin"))) {
		w.WriteHeader(http.StatusUnauthorized)
		s.renderTemplate(w, "login.html", baseViewData{ErrorMessage: "Incorrect PIN. Please try again."})
		return
	}

	s.auth.setSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}
