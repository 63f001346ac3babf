package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	hunter "github.com/cruxstack/hunter-client-go"
	"github.com/cruxstack/hunter-client-go/internal/config"
	"github.com/joho/godotenv"
)

var dataPath string

func init() {
	flag.StringVar(&dataPath, "data", "", "path to JSON file with test queries")
	flag.Parse()
}

// DebugQuery is one query from the debug data file.
type DebugQuery struct {
	Op        string `json:"op"`
	Email     string `json:"email,omitempty"`
	Domain    string `json:"domain,omitempty"`
	Company   string `json:"company,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

func NewDebugConfig() (*config.Config, error) {
	envpath := filepath.Join("..", "..", ".env")
	if _, err := os.Stat(envpath); err == nil {
		_ = godotenv.Load(envpath)
	}

	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	cfg.DebugMode = true

	if cfg.DebugDataPath == "" {
		cfg.DebugDataPath = filepath.Join("..", "..", "fixtures", "debug-data.json")
	}
	if dataPath != "" {
		cfg.DebugDataPath = dataPath
	}

	return cfg, nil
}

func main() {
	cfg, err := NewDebugConfig()
	if err != nil {
		log.Fatal("failed to load debug config", "error", err)
	}
	log.SetLevel(log.DebugLevel)

	client := hunter.NewClient(cfg.HunterAPIKey)
	client.APIHost = cfg.HunterAPIHost
	client.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}

	data, err := os.ReadFile(cfg.DebugDataPath)
	if err != nil {
		log.Fatal("failed to read data file", "path", cfg.DebugDataPath, "error", err)
	}

	queries := []DebugQuery{}
	if err := json.Unmarshal(data, &queries); err != nil {
		log.Fatal("failed to parse query file", "error", err)
	}

	for i, q := range queries {
		if err := runQuery(context.Background(), client, q); err != nil {
			log.Error("debug query failed", "index", i, "op", q.Op, "error", err)
			os.Exit(1)
		}
		log.Info("debug query passed", "index", i, "op", q.Op)
	}

	log.Info("all debug queries passed")
}

func runQuery(ctx context.Context, client *hunter.Client, q DebugQuery) error {
	switch q.Op {
	case "search":
		data, err := client.SearchDomain(ctx, hunter.SearchParams{
			Domain:  q.Domain,
			Company: q.Company,
			Limit:   q.Limit,
		})
		if err != nil {
			return err
		}
		log.Debug("domain search result", "domain", data["domain"], "organization", data["organization"])
	case "find":
		email, score, err := client.FindEmail(ctx, hunter.FindParams{
			Domain:    q.Domain,
			Company:   q.Company,
			FirstName: q.FirstName,
			LastName:  q.LastName,
			FullName:  q.FullName,
		})
		if err != nil {
			return err
		}
		log.Debug("email finder result", "email", email, "score", score)
	default:
		// verify is the default so old data files without an op keep working
		data, err := client.VerifyEmail(ctx, q.Email)
		if err != nil {
			return err
		}
		log.Debug("email verifier result", "email", q.Email, "status", data["status"], "score", data["score"])
	}
	return nil
}
