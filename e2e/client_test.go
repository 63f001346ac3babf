package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	hunter "github.com/cruxstack/hunter-client-go"
	"github.com/joho/godotenv"
)

const (
	testEmail   = "patrick@stripe.com"
	testDomain  = "stripe.com"
	testCompany = "Hunter"
)

// newLiveClient returns a client for the production API, skipping the test
// when no API key is configured.
func newLiveClient(t *testing.T) *hunter.Client {
	t.Helper()

	envpath := filepath.Join("..", ".env")
	if _, err := os.Stat(envpath); err == nil {
		_ = godotenv.Load(envpath)
	}

	key := os.Getenv("APP_HUNTER_API_KEY")
	if key == "" {
		key = os.Getenv("HUNTER_API_KEY")
	}
	if key == "" {
		t.Skip("APP_HUNTER_API_KEY not set, skipping live API test")
	}

	c := hunter.NewClient(key)
	c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	return c
}

func TestVerifyEmail_Live(t *testing.T) {
	c := newLiveClient(t)

	data, err := c.VerifyEmail(context.Background(), testEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data["email"] != testEmail {
		t.Errorf("expected email %q in payload, got %v", testEmail, data["email"])
	}
	for _, field := range []string{"status", "score", "result"} {
		if _, ok := data[field]; !ok {
			t.Errorf("payload missing field %q", field)
		}
	}
}

func TestSearchDomain_Live(t *testing.T) {
	c := newLiveClient(t)

	data, err := c.SearchDomain(context.Background(), hunter.SearchParams{Domain: testDomain})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data["domain"] != testDomain {
		t.Errorf("expected domain %q, got %v", testDomain, data["domain"])
	}
	emails, ok := data["emails"].([]any)
	if !ok {
		t.Fatalf("expected emails list, got %T", data["emails"])
	}
	if len(emails) == 0 {
		t.Errorf("expected at least one email for %s", testDomain)
	}
}

func TestSearchDomain_LiveByCompany(t *testing.T) {
	c := newLiveClient(t)

	data, err := c.SearchDomain(context.Background(), hunter.SearchParams{Company: testCompany})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := data["domain"]; !ok {
		t.Error("company search should resolve a domain")
	}
	if _, ok := data["emails"].([]any); !ok {
		t.Errorf("expected emails list, got %T", data["emails"])
	}
}

func TestSearchDomain_LiveFilters(t *testing.T) {
	c := newLiveClient(t)

	limit := 3
	data, err := c.SearchDomain(context.Background(), hunter.SearchParams{
		Domain:    testDomain,
		Limit:     limit,
		Seniority: "executive",
		EmailType: "personal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	emails, _ := data["emails"].([]any)
	if len(emails) > limit {
		t.Errorf("expected at most %d emails, got %d", limit, len(emails))
	}
	for _, e := range emails {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if entry["type"] != "personal" {
			t.Errorf("expected personal emails only, got %v", entry["type"])
		}
	}
}

func TestSearchDomain_LiveRaw(t *testing.T) {
	c := newLiveClient(t)

	resp, err := c.SearchDomainRaw(context.Background(), hunter.SearchParams{Domain: testDomain})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &envelope); err != nil {
		t.Fatalf("raw body should decode as JSON: %v", err)
	}
	if _, ok := envelope["data"]; !ok {
		t.Error("raw body should carry the data key")
	}
	if _, ok := envelope["meta"]; !ok {
		t.Error("raw body should carry the meta key")
	}
}

func TestFindEmail_Live(t *testing.T) {
	c := newLiveClient(t)

	email, score, err := c.FindEmail(context.Background(), hunter.FindParams{
		Domain:    testDomain,
		FirstName: "Patrick",
		LastName:  "Collison",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if email == "" {
		t.Fatal("expected a non-empty email")
	}
	if score < 0 || score > 100 {
		t.Errorf("expected score in [0,100], got %d", score)
	}
}

func TestFindEmail_LiveFullName(t *testing.T) {
	c := newLiveClient(t)

	email, _, err := c.FindEmail(context.Background(), hunter.FindParams{
		Domain:   testDomain,
		FullName: "Patrick Collison",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email == "" {
		t.Fatal("expected a non-empty email")
	}
}
