package store

import (
	"encoding/json"
	"fmt"

	"github.com/desirecabinets/estimator/internal/estimate"
	"github.com/desirecabinets/estimator/internal/pricing"
)

// QuoteListItem is one row of the quote archive listing.
type QuoteListItem struct {
	CreatedAt   string
	QuoteNumber string
	ClientName  string
	Total       float64
}

// ArchiveQuote appends an exported quote to the archive.
func (s *Store) ArchiveQuote(est *estimate.Estimate, totals pricing.Totals) error {
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("marshal quote totals: %w", err)
	}
	estimateJSON, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("marshal quote estimate: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (quote_number, client_name, notes, totals_json, estimate_json)
		VALUES (?, ?, ?, ?, ?)
	`, est.QuoteNumber, est.Client.Name, est.Notes, string(totalsJSON), string(estimateJSON))
	if err != nil {
		return fmt.Errorf("insert archived quote: %w", err)
	}
	return nil
}

// ListQuotes returns archived quotes newest first, optionally filtered by a
// substring of the client name, quote number, or notes.
func (s *Store) ListQuotes(query string) ([]QuoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			created_at,
			quote_number,
			COALESCE(client_name, ''),
			totals_json
		FROM quotes
		WHERE (? = '' OR COALESCE(client_name, '') LIKE ? OR quote_number LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]QuoteListItem, 0)
	for rows.Next() {
		var item QuoteListItem
		var totalsJSON string
		if err := rows.Scan(&item.CreatedAt, &item.QuoteNumber, &item.ClientName, &totalsJSON); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		item.Total = extractTotalFromJSON(totalsJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}

// RevisionFor counts prior archived exports of a quote number. The first
// export of a number is revision 0.
func (s *Store) RevisionFor(quoteNumber string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM quotes WHERE quote_number = ?`, quoteNumber).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count quote revisions: %w", err)
	}
	return count, nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}
	return values["total"]
}
