package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/ryssellou/recruitment-dashboard/internal/analysis"
	"github.com/ryssellou/recruitment-dashboard/internal/analyzer"
	"github.com/ryssellou/recruitment-dashboard/internal/auth"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/extract"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
)

const sessionSweepInterval = time.Hour

// DashboardServer bundles the database handle and the analysis runner used
// by the route handlers.
type DashboardServer struct {
	DB     *database.DBinstanceStruct
	Runner *analysis.Runner
}

// NewServer constructs the HTTP server with every dependency wired.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	s := &DashboardServer{
		DB:     db,
		Runner: analysis.NewRunner(db, driveClient(), extract.Text, claudeClient()),
	}

	auth.StartSessionSweeper(db, sessionSweepInterval)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// driveClient returns nil when the Google API key is absent; the analysis
// runner reports the missing configuration per run instead of crashing the
// server at startup.
func driveClient() analysis.Downloader {
	client, err := gdrive.NewClient(context.Background())
	if err != nil {
		log.Printf("Google Drive client unavailable: %v", err)
		return nil
	}
	return client
}

func claudeClient() analysis.Analyzer {
	client, err := analyzer.NewClient()
	if err != nil {
		log.Printf("CV analyzer unavailable: %v", err)
		return nil
	}
	return client
}
