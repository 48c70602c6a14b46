// Command sync-candidates runs one spreadsheet import from the command line.
package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/importer"
	"github.com/ryssellou/recruitment-dashboard/internal/sheets"
)

func main() {
	ctx := context.Background()

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	source, err := sheets.NewClient(ctx)
	if err != nil {
		log.Fatalf("Google Sheets is not configured: %s", err)
	}

	result, err := importer.New(db, source).Sync(ctx)
	if err != nil {
		log.Fatalf("Sync failed: %s", err)
	}

	fmt.Printf("Synced %d candidates (%d added, %d updated)\n", result.Total, result.Added, result.Updated)
}
