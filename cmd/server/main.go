package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"route-solver-service/internal/adapters/distance"
	"route-solver-service/internal/adapters/events"
	"route-solver-service/internal/adapters/repositories"
	"route-solver-service/internal/api"
	"route-solver-service/internal/config"
	"route-solver-service/internal/platform/db"
	"route-solver-service/internal/ports"
	"route-solver-service/internal/services"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (Postgres/SQLite/static depots, Redis events) behind ports
// and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	depots, closeDB, err := openDepots(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	checkDefaultDepot(depots, cfg.DefaultDepotID)

	publisher, closePublisher, err := openPublisher(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closePublisher()

	solver, err := services.NewSolver(depots, publisher, distance.Haversine{}, services.SolverConfig{
		DefaultDepotID: cfg.DefaultDepotID,
		MaxOrders:      cfg.MaxOrders,
	})
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(solver, depots, api.Options{
		ServiceName:    cfg.ServiceName,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		SolveRateLimit: cfg.SolveRateLimit,
		SolveRateBurst: cfg.SolveRateBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=:%s service=%q", cfg.Port, cfg.ServiceName)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}
}

// openDepots picks the depot store: Postgres when DATABASE_URL is set, SQLite when
// DB_PATH is set, otherwise the single configured depot.
func openDepots(cfg config.Config) (ports.DepotRepository, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := initAndSeed(conn, cfg.SeedPath, repositories.InitPostgresSchema, repositories.SeedPostgresFromJSON); err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Println("depot store=postgres")
		return repositories.NewSQLDepotRepository(conn), closer("postgres", conn), nil

	case cfg.DBPath != "":
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := initAndSeed(conn, cfg.SeedPath, repositories.InitSchema, repositories.SeedFromJSON); err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Printf("depot store=sqlite path=%s", cfg.DBPath)
		return repositories.NewSqliteDepotRepository(conn), closer("sqlite", conn), nil

	default:
		log.Printf("depot store=static depot=%s lat=%v lon=%v",
			cfg.DefaultDepot.ID, cfg.DefaultDepot.Location.Lat, cfg.DefaultDepot.Location.Lon)
		return repositories.NewStaticDepotRepository(cfg.DefaultDepot), func() {}, nil
	}
}

func initAndSeed(conn *sql.DB, seedPath string, initFn func(*sql.DB) error, seedFn func(*sql.DB, string) error) error {
	if err := initFn(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := seedFn(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func openPublisher(cfg config.Config) (ports.RoutePublisher, func(), error) {
	if cfg.RedisURL == "" {
		return events.LogRoutePublisher{}, func() {}, nil
	}

	pub, err := events.NewRedisRoutePublisher(cfg.RedisURL, cfg.RedisChannel)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pub.Ping(ctx); err != nil {
		// Events are best effort; keep serving and let publishes fail individually.
		log.Printf("redis unreachable at startup: %v", err)
	}

	log.Printf("route events=redis channel=%s", cfg.RedisChannel)
	return pub, closer("redis", pub), nil
}

func checkDefaultDepot(depots ports.DepotRepository, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := depots.GetDepot(ctx, id); err != nil {
		log.Printf("warning: default depot %q unavailable: %v", id, err)
	}
}

func closer(name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("close %s: %v", name, err)
		}
	}
}
