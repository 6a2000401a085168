package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/osuc/buscacursos/internal/course"
)

const (
	DefaultBaseURL = "https://buscacursos.uc.cl"
	UserAgent      = "buscacursos-cli/1.0 (github.com/osuc/buscacursos)"
	Timeout        = 30 * time.Second

	// Query parameter and control names fixed by the search page.
	paramTerm    = "cxml_semestre"
	paramSubject = "cxml_sigla"
)

// resultRowSelector matches the rows holding course sections; the page
// alternates classes like resultadosRowPar / resultadosRowImpar.
const resultRowSelector = "tr[class*=resultados]"

// Scraper fetches and parses Buscacursos search pages.
type Scraper struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL points the scraper at a different host, typically a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *Scraper) { s.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) { s.client = client }
}

// WithLogger sets the logger used for per-row diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scraper) { s.log = log }
}

// New creates a new Scraper instance.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:  &http.Client{Timeout: Timeout},
		baseURL: DefaultBaseURL,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchCourses queries the search page for every section of a subject code
// in the given term and parses the result rows.
func (s *Scraper) FetchCourses(ctx context.Context, subject string, term course.Term) ([]course.Course, error) {
	params := url.Values{}
	params.Set(paramTerm, term.String())
	params.Set(paramSubject, subject)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.ParseCourses(resp.Body)
}

// FetchTerms loads the landing page and enumerates the term selector.
func (s *Scraper) FetchTerms(ctx context.Context) ([]course.Term, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching landing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.ParseTerms(resp.Body)
}

// ParseCourses extracts every course section from a results document.
// Rows are parsed concurrently; the returned slice preserves document order.
// A row that fails to parse is dropped and logged, never failing the batch;
// a document without result rows yields an empty slice.
func (s *Scraper) ParseCourses(r io.Reader) ([]course.Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows := doc.Find(resultRowSelector)
	if rows.Length() == 0 {
		return []course.Course{}, nil
	}

	schools := resolveSchools(rows)

	parsed := make([]*course.Course, rows.Length())
	var wg sync.WaitGroup
	rows.Each(func(i int, row *goquery.Selection) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, rowErr := parseRow(row, schools[i])
			if rowErr != nil {
				s.log.Warn().Int("row", i).Err(rowErr).Msg("dropping result row")
				return
			}
			parsed[i] = c
		}()
	})
	wg.Wait()

	courses := make([]course.Course, 0, len(parsed))
	for _, c := range parsed {
		if c != nil {
			courses = append(courses, *c)
		}
	}
	return courses, nil
}

// ParseTerms extracts the available academic terms from the term selection
// control. Options whose value is not "<year>-<period>" are skipped.
func (s *Scraper) ParseTerms(r io.Reader) ([]course.Term, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	terms := make([]course.Term, 0)
	doc.Find("select[name=" + paramTerm + "] option").Each(func(_ int, opt *goquery.Selection) {
		value, ok := opt.Attr("value")
		if !ok {
			return
		}
		term, parseErr := course.ParseTerm(value)
		if parseErr != nil {
			s.log.Debug().Str("value", value).Msg("skipping malformed term option")
			return
		}
		terms = append(terms, term)
	})
	return terms, nil
}

// parseRow parses one result row through the column table. Only the row's
// direct cells count; the schedule cell nests a table of its own.
func parseRow(row *goquery.Selection, school string) (*course.Course, error) {
	c := &course.Course{School: school}
	if err := applyColumns(c, row.ChildrenFiltered("td")); err != nil {
		return nil, err
	}
	return c, nil
}

// resolveSchools maps each result row to the academic unit heading that
// precedes it. The page interleaves heading rows (no class, no style,
// non-empty text) with result rows instead of repeating the school per row.
// A single forward pass over each table's children keeps this O(n).
func resolveSchools(rows *goquery.Selection) []string {
	schools := make([]string, rows.Length())

	rowIndex := make(map[*html.Node]int, rows.Length())
	rows.Each(func(i int, row *goquery.Selection) {
		rowIndex[row.Get(0)] = i
	})

	visited := make(map[*html.Node]bool)
	rows.Each(func(_ int, row *goquery.Selection) {
		parent := row.Parent()
		if parent.Length() == 0 || visited[parent.Get(0)] {
			return
		}
		visited[parent.Get(0)] = true

		current := ""
		parent.Children().Each(func(_ int, sibling *goquery.Selection) {
			if i, isRow := rowIndex[sibling.Get(0)]; isRow {
				schools[i] = current
				return
			}
			if isSchoolHeading(sibling) {
				current = cleanText(sibling)
			}
		})
	})
	return schools
}

// isSchoolHeading reports whether a sibling row is a structural heading
// naming an academic unit.
func isSchoolHeading(sel *goquery.Selection) bool {
	if _, hasClass := sel.Attr("class"); hasClass {
		return false
	}
	if _, hasStyle := sel.Attr("style"); hasStyle {
		return false
	}
	return cleanText(sel) != ""
}
