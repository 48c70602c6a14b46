package database

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	m "github.com/ryssellou/recruitment-dashboard/internal/model"
)

var testDBInstance *DBinstanceStruct

// Exported seeded candidates for tests
var (
	TestCandidateBackend  m.Candidate
	TestCandidateData     m.Candidate
	TestCandidateDesigner m.Candidate
)

// GetTestDB returns a migrated in-memory sqlite database seeded with sample
// candidates. The same instance is shared by every test in the process, so
// tests that need isolation should create their own rows. Setup failure
// aborts the test binary.
func GetTestDB() *DBinstanceStruct {
	if testDBInstance != nil {
		return testDBInstance
	}

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open test database: %s", err)
	}

	db := &DBinstanceStruct{
		DB:     gdb,
		Config: &DBConfig{DBName: "testdb"},
	}

	if err := db.Migrate(); err != nil {
		log.Fatalf("failed to migrate test database: %s", err)
	}

	if err := seedTestData(db); err != nil {
		log.Fatalf("failed to seed test database: %s", err)
	}

	testDBInstance = db
	return testDBInstance
}

// seedTestData inserts sample candidates if the table is empty.
func seedTestData(db *DBinstanceStruct) error {
	var count int64
	if err := db.Model(&m.Candidate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	candidates := []m.Candidate{
		{
			SheetsRowID: "row_2_2024-04-01_10_00_00_alice_example_com",
			Name:        "Alice Carter",
			Email:       "alice@example.com",
			Phone:       ptr("+44100000001"),
			Country:     ptr("United Kingdom"),
			Role:        "Backend Engineer",
			VideoLink:   ptr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			CVFileID:    ptr("cvfile-alice-001"),
			LinkedinURL: ptr("https://www.linkedin.com/in/alice-carter"),
			SubmittedAt: time.Now().Add(-72 * time.Hour),
		},
		{
			SheetsRowID: "row_3_2024-04-02_09_30_00_bruno_example_com",
			Name:        "Bruno Silva",
			Email:       "bruno@example.com",
			Country:     ptr("Brazil"),
			Role:        "Data Analyst",
			SubmittedAt: time.Now().Add(-48 * time.Hour),
		},
		{
			SheetsRowID: "row_4_2024-04-03_14_15_00_chloe_example_com",
			Name:        "Chloe Dubois",
			Email:       "chloe@example.com",
			Phone:       ptr("+33100000003"),
			Country:     ptr("France"),
			Role:        "Product Designer",
			VideoLink:   ptr("https://www.loom.com/share/abc123def456"),
			CVFileID:    ptr("cvfile-chloe-003"),
			SubmittedAt: time.Now().Add(-24 * time.Hour),
		},
	}

	for i := range candidates {
		candidates[i].CVAnalysisStatus = m.AnalysisStatusPending
	}

	if err := db.Create(&candidates).Error; err != nil {
		return err
	}

	TestCandidateBackend = candidates[0]
	TestCandidateData = candidates[1]
	TestCandidateDesigner = candidates[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestCandidateBackend, "email = ?", "alice@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestCandidateData, "email = ?", "bruno@example.com").Error; err != nil {
		return err
	}
	return db.First(&TestCandidateDesigner, "email = ?", "chloe@example.com").Error
}

// ptr helper
func ptr[T any](v T) *T { return &v }
