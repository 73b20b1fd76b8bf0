// Package ledger maintains the append-only CSV log of discovered job
// listings. Rows already written are never rewritten or reordered; new
// rows are deduplicated by URL against the whole file.
package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go-jobhunt-backend/internal/domain"
)

const FileName = "job_listings.csv"

// Column order is fixed. Naive row-position readers depend on it, so it
// must match exactly across every write.
var columns = []string{
	"company", "role", "role_type", "location", "remote_status",
	"salary_range", "url", "contact_info", "contact_name",
	"date_found", "match_rating", "status", "notes",
}

const urlColumn = 6

const (
	defaultRoleType    = "Full-time"
	defaultMatchRating = 3
	statusNew          = "new"
)

// Ledger serializes all ingestions through a single mutex so two
// concurrent batches cannot both decide a URL is novel.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func New(dataDir string) (*Ledger, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Ledger{path: filepath.Join(dataDir, FileName)}, nil
}

func (l *Ledger) Path() string {
	return l.path
}

// Append ingests a batch of candidate listings in input order and
// returns how many rows were actually written. Listings with an empty
// URL or a URL already present (in the file or earlier in the batch)
// are skipped silently. Cost is O(existing rows) per call; acceptable
// for the append-only, non-indexed design.
func (l *Ledger) Append(listings []domain.Listing) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen, exists, err := l.existingURLs()
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(columns); err != nil {
			return 0, err
		}
	}

	today := time.Now().Format("2006-01-02")
	added := 0
	for _, listing := range listings {
		if listing.URL == "" || seen[listing.URL] {
			continue
		}

		rating := listing.MatchRating
		if rating < 1 || rating > 5 {
			rating = defaultMatchRating
		}
		roleType := listing.RoleType
		if roleType == "" {
			roleType = defaultRoleType
		}

		row := []string{
			listing.Company,
			listing.Role,
			roleType,
			listing.Location,
			listing.RemoteStatus,
			listing.SalaryRange,
			listing.URL,
			listing.ContactInfo,
			listing.ContactName,
			today,
			strconv.Itoa(rating),
			statusNew,
			listing.Notes,
		}
		if err := w.Write(row); err != nil {
			return added, err
		}
		seen[listing.URL] = true
		added++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return added, err
	}
	return added, nil
}

// existingURLs scans the current file for every URL already written.
// The second return reports whether the file exists at all (so Append
// knows to write a header first).
func (l *Ledger) existingURLs() (map[string]bool, bool, error) {
	seen := make(map[string]bool)

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return seen, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, true, err
		}
		if header {
			header = false
			continue
		}
		if len(record) > urlColumn && record[urlColumn] != "" {
			seen[record[urlColumn]] = true
		}
	}
	return seen, true, nil
}
