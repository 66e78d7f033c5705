/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift payroll engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment config (.env + process env)
  2. Parse command-line flags (override env)
  3. Build the labor rules table (compiled-in Colombian, or a JSON file)
  4. Initialize the SQLite store
  5. Create the API handler and router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides SERVER_PORT)
  -db      SQLite database path (overrides DATABASE_PATH)
           Use ":memory:" for an in-memory database
  -rules   JSON jurisdiction file (overrides PAYROLL_RULES_FILE)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (shutdown timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database and the Colombian defaults
  ./server -db="./data/shifts.db"

  # Run with a tenant-specific jurisdiction table
  ./server -rules="./jurisdictions/colombia-2026.json"

SEE ALSO:
  - config/config.go: Environment configuration
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/turno/shift-engine/api"
	"github.com/turno/shift-engine/colombia"
	"github.com/turno/shift-engine/config"
	"github.com/turno/shift-engine/engine"
	"github.com/turno/shift-engine/factory"
	"github.com/turno/shift-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override environment
	port := flag.Int("port", cfg.Server.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.Database.Path, "SQLite database path")
	rulesFile := flag.String("rules", cfg.Payroll.RulesFile, "JSON jurisdiction rules file")
	flag.Parse()

	rules, calendar, err := loadRules(*rulesFile)
	if err != nil {
		log.Fatalf("Failed to load labor rules: %v", err)
	}

	minimumWage, err := decimal.NewFromString(cfg.Payroll.MonthlyMinimumWage)
	if err != nil {
		log.Fatalf("Invalid monthly minimum wage %q: %v", cfg.Payroll.MonthlyMinimumWage, err)
	}
	defaultRate := rules.HourlyRateFromMonthly(minimumWage)

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// A jurisdiction file's holiday table seeds the store so the API
	// serves it instead of the compiled-in fallback.
	if calendar != nil {
		for _, h := range calendar.Holidays() {
			if err := store.SaveHoliday(context.Background(), h); err != nil {
				log.Fatalf("Failed to seed holiday %s: %v", h.Date, err)
			}
		}
	}

	// Initialize handler and router
	handler := api.NewHandler(store, engine.NewCalculator(rules), defaultRate)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// loadRules builds the labor table: a JSON jurisdiction file when given,
// otherwise the compiled-in Colombian statutory constants. The calendar is
// nil unless the file carries its own holiday table.
func loadRules(path string) (engine.LaborRules, *engine.Calendar, error) {
	if path == "" {
		return colombia.Rules(), nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.LaborRules{}, nil, err
	}
	return factory.NewRulesFactory().Parse(data, engine.Today().Year())
}
