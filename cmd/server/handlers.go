package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/desirecabinets/estimator/internal/catalog"
	"github.com/desirecabinets/estimator/internal/estimate"
	"github.com/desirecabinets/estimator/internal/lineitem"
	"github.com/desirecabinets/estimator/internal/pricing"
	"github.com/desirecabinets/estimator/internal/report"
	"github.com/desirecabinets/estimator/internal/store"
)

type estimatorViewData struct {
	baseViewData
	Estimate     *estimate.Estimate
	CurrentIndex int
	CurrentRoom  estimate.Room
	Calc         pricing.Result
	Descriptions []lineitem.Description
	Catalog      *catalog.Catalog
}

type quotesViewData struct {
	baseViewData
	Query  string
	Quotes []store.QuoteListItem
}

func (s *server) handleEstimator(w http.ResponseWriter, r *http.Request) {
	snap, current := s.session.Snapshot()
	calc := pricing.Calculate(snap, s.catalog)

	descriptions := make([]lineitem.Description, len(snap.Rooms))
	for i, room := range snap.Rooms {
		descriptions[i] = lineitem.Describe(room, s.catalog)
	}

	s.renderTemplate(w, "estimator.html", estimatorViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Estimate:     snap,
		CurrentIndex: current,
		CurrentRoom:  snap.Rooms[current],
		Calc:         calc,
		Descriptions: descriptions,
		Catalog:      s.catalog,
	})
}

func (s *server) handleRoomAdd(w http.ResponseWriter, r *http.Request) {
	s.session.Apply(estimate.AddRoom{})
	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleRoomRemove(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid room index", http.StatusBadRequest)
		return
	}

	if !s.session.Apply(estimate.RemoveRoom{Index: index}) {
		http.Redirect(w, r, "/?error="+url.QueryEscape("An estimate needs at least one room"), http.StatusSeeOther)
		return
	}

	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleRoomSelect(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid room index", http.StatusBadRequest)
		return
	}

	if !s.session.Apply(estimate.SwitchRoom{Index: index}) {
		http.Redirect(w, r, "/?error="+url.QueryEscape("No such room"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleRoomUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	commands := []estimate.Command{
		estimate.RenameRoom{Name: strings.TrimSpace(r.FormValue("name"))},
		estimate.SetClosetType{Value: r.FormValue("closet_type")},
		estimate.SetLinearFeet{Value: estimate.ParseNonNegativeOrZero(r.FormValue("linear_feet"))},
		estimate.SetDepth{Value: int(estimate.ParseNonNegativeOrZero(r.FormValue("depth")))},
		estimate.SetHeight{Value: estimate.ParseNonNegativeOrZero(r.FormValue("height"))},
		estimate.SetMaterial{ID: r.FormValue("material")},
		estimate.SetHardwareFinish{ID: r.FormValue("hardware_finish")},
		estimate.SetMounting{ID: r.FormValue("mounting")},
		estimate.SetRoomNotes{Notes: r.FormValue("room_notes")},
	}
	for _, cmd := range commands {
		s.session.Apply(cmd)
	}

	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleAddonUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	key := r.FormValue("key")
	if key == "" {
		http.Redirect(w, r, "/?error="+url.QueryEscape("Missing add-on key"), http.StatusSeeOther)
		return
	}

	s.session.Apply(estimate.SetAddon{
		Key:      key,
		Enabled:  r.FormValue("enabled") == "1",
		Quantity: estimate.ParseNonNegativeOrZero(r.FormValue("quantity")),
	})

	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleClientUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	commands := []estimate.Command{
		estimate.SetClientName{Value: strings.TrimSpace(r.FormValue("name"))},
		estimate.SetClientAddress{Value: strings.TrimSpace(r.FormValue("address"))},
		estimate.SetClientPhone{Value: strings.TrimSpace(r.FormValue("phone"))},
		estimate.SetClientEmail{Value: strings.TrimSpace(r.FormValue("email"))},
	}
	for _, cmd := range commands {
		s.session.Apply(cmd)
	}

	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handlePricingUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s.session.Apply(estimate.SetTaxRate{Rate: estimate.ParseNonNegativeOrZero(r.FormValue("tax_rate"))})
	s.session.Apply(estimate.SetDiscount{
		Type:  estimate.ParseDiscountType(r.FormValue("discount_type")),
		Value: estimate.ParseNonNegativeOrZero(r.FormValue("discount_value")),
	})

	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleNotesUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s.session.Apply(estimate.SetNotes{Notes: r.FormValue("notes")})
	s.persist()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.session.Apply(estimate.Reset{})
	s.persist()
	http.Redirect(w, r, "/?success="+url.QueryEscape("Started a new quote"), http.StatusSeeOther)
}

func (s *server) handleQuoteDocument(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.session.Snapshot()

	if totalLinearFeet(snap) == 0 {
		http.Redirect(w, r, "/?error="+url.QueryEscape("Enter linear feet before generating a quote"), http.StatusSeeOther)
		return
	}

	// Alternate quote: render with one add-on stripped, session untouched.
	if without := r.URL.Query().Get("without"); without != "" {
		for i := range snap.Rooms {
			if sel, ok := snap.Rooms[i].Addons[without]; ok {
				sel.Enabled = false
				snap.Rooms[i].Addons[without] = sel
			}
		}
		snap.QuoteNumber += "-ALT"
	} else {
		revision, err := s.store.RevisionFor(snap.QuoteNumber)
		if err != nil {
			http.Error(w, "failed to check quote history", http.StatusInternalServerError)
			return
		}
		snap.Revision = revision
		s.session.SetRevision(revision)
	}

	calc := pricing.Calculate(snap, s.catalog)
	descriptions := make([]lineitem.Description, len(snap.Rooms))
	for i, room := range snap.Rooms {
		descriptions[i] = lineitem.Describe(room, s.catalog)
	}

	if err := s.store.ArchiveQuote(snap, calc.Totals); err != nil {
		logrus.WithError(err).Warn("failed to archive quote")
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=quote-%s.xlsx", snap.QuoteNumber))
	if err := report.Write(w, snap, calc, descriptions); err != nil {
		logrus.WithError(err).Error("failed to render quote document")
	}
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.store.ListQuotes(query)
	if err != nil {
		http.Error(w, "failed to load quotes", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "quotes.html", quotesViewData{
		Query:  query,
		Quotes: quotes,
	})
}

func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.session.Snapshot()

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		http.Error(w, "failed to serialize estimate", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=estimate-%s.json", snap.QuoteNumber))
	_, _ = w.Write(raw)
}

func (s *server) handleImport(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("estimate")
	if err != nil {
		http.Redirect(w, r, "/?error="+url.QueryEscape("Choose an estimate file to import"), http.StatusSeeOther)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	var est estimate.Estimate
	if err := json.Unmarshal(raw, &est); err != nil {
		http.Redirect(w, r, "/?error="+url.QueryEscape("That file is not a valid estimate"), http.StatusSeeOther)
		return
	}

	store.MigrateShape(&est)
	s.session.Replace(&est)
	s.persist()
	http.Redirect(w, r, "/?success="+url.QueryEscape("Estimate imported"), http.StatusSeeOther)
}

func totalLinearFeet(est *estimate.Estimate) float64 {
	total := 0.0
	for _, room := range est.Rooms {
		total += room.Closet.LinearFeet
	}
	return total
}
