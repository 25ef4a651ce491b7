package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/cache"
	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/distance"
	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/repositories"
	"github.com/MRH-66/SmartRoute-VRP/internal/api"
	"github.com/MRH-66/SmartRoute-VRP/internal/config"
	"github.com/MRH-66/SmartRoute-VRP/internal/platform/db"
	"github.com/MRH-66/SmartRoute-VRP/internal/platform/obs"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres caches, Redis or in-memory
// session store, OSRM) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmBaseURL := config.Get("OSRM_BASE_URL", "")
	solverCfgPath := config.Get("SOLVER_CONFIG", "")

	solverCfg, err := config.LoadSolverConfig(solverCfgPath)
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, distanceCache, err := openDistanceCache()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	repo, err := openConfigRepository()
	if err != nil {
		log.Fatal(err)
	}

	osrm := distance.NewOSRMProvider(osrmBaseURL)
	road := distance.NewCachedDistanceProvider(osrm, distanceCache)
	straight := distance.HaversineProvider{}

	metrics := obs.DefaultMetrics()

	router := api.NewRouter(api.Dependencies{
		Repo:      repo,
		Straight:  straight,
		Road:      road,
		Geometry:  osrm,
		SolverCfg: solverCfg,
		Metrics:   metrics,
	})

	// Timeouts are tuned for cold-cache optimization runs (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDistanceCache opens Postgres when DATABASE_URL is set, otherwise a
// local SQLite file, and initializes the schema.
func openDistanceCache() (*sql.DB, ports.DistanceCache, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		log.Println("Distance cache backend: postgres")
		return pg, cache.NewSQLDistanceCache(pg), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	lite, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}
	log.Printf("Distance cache backend: sqlite path=%s", dbPath)
	return lite, cache.NewSqliteDistanceCache(lite), nil
}

// openConfigRepository uses Redis when REDIS_ADDR is set, otherwise an
// in-memory store (sessions then live only as long as the process).
func openConfigRepository() (ports.ConfigRepository, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Session store backend: memory")
		return repositories.NewMemoryConfigRepository(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ttl := 24 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		ttl = parsed
	}

	log.Printf("Session store backend: redis addr=%s ttl=%s", addr, ttl)
	return repositories.NewRedisConfigRepository(client, ttl), nil
}
