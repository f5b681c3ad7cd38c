package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/pkg/config"
	"github.com/jstittsworth/parlay-optimizer/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	return db.AutoMigrate(
		&models.Pool{},
		&models.Candidate{},
		&models.ReportRun{},
		&models.ReportRow{},
	)
}

func dropTables(db *database.DB) error {
	return db.Migrator().DropTable(
		&models.ReportRow{},
		&models.ReportRun{},
		&models.Candidate{},
		&models.Pool{},
	)
}

// seedData inserts a small sample pool so the server can be exercised
// without the upstream merge stage.
func seedData(db *database.DB) error {
	pool := models.Pool{
		ID:     uuid.New().String(),
		Book:   "fanduel",
		Source: "seed",
	}

	seeds := []struct {
		player string
		market models.MarketKey
		line   float64
		odds   int
		edge   float64
	}{
		{"Myles Turner", models.PlayerPointsAlternate, 8.5, -476, 4.2},
		{"Myles Turner", models.PlayerPointsAlternate, 10.5, -280, 2.2},
		{"Tyrese Haliburton", models.PlayerAssists, 9.5, 164, 1.3},
		{"Tyrese Haliburton", models.PlayerAssistsAlternate, 10.5, 230, 0.3},
		{"Pascal Siakam", models.PlayerRebounds, 6.5, -150, 1.1},
		{"Pascal Siakam", models.PlayerPoints, 19.5, -120, 2.4},
		{"Aaron Nesmith", models.PlayerPointsAlternate, 9.5, -330, 2.9},
		{"T.J. McConnell", models.PlayerAssistsAlternate, 4.5, -400, 1.8},
		{"Andrew Nembhard", models.PlayerPoints, 8.5, -170, 1.6},
		{"Obi Toppin", models.PlayerReboundsAlternate, 3.5, -250, 1.2},
	}

	for _, s := range seeds {
		candidate := models.Candidate{
			PoolID:       pool.ID,
			Player:       s.player,
			Market:       s.market,
			Line:         s.line,
			Direction:    models.DirectionOver,
			Book:         "fanduel",
			AmericanOdds: s.odds,
			Edge:         s.edge,
		}
		if err := candidate.Validate(); err != nil {
			return err
		}
		if err := candidate.Derive(); err != nil {
			return err
		}
		pool.Candidates = append(pool.Candidates, candidate)
	}

	return db.Create(&pool).Error
}
