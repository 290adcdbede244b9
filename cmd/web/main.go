// cmd/web/main.go
//
// Onboarding service – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (server-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load layered config (yaml + SAAS_ env overrides) and validate it.
//
//  4. Open the shared MySQL pool and log the tenant count.
//
//  5. Pick the draft store: Redis when configured, in-memory otherwise.
//
//  6. Assemble the wizard, upload fields, location search, and the chi
//     router; wrap with ForceHTTPS when configured.
//
//  7. Serve with hardened timeouts; drain in-flight requests on
//     SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.

package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/MS250871/my-saas-demo/internal/branding"
	"github.com/MS250871/my-saas-demo/internal/config"
	"github.com/MS250871/my-saas-demo/internal/database"
	"github.com/MS250871/my-saas-demo/internal/draft"
	"github.com/MS250871/my-saas-demo/internal/location"
	"github.com/MS250871/my-saas-demo/internal/logger"
	"github.com/MS250871/my-saas-demo/internal/middleware"
	"github.com/MS250871/my-saas-demo/internal/server"
	"github.com/MS250871/my-saas-demo/internal/sortable"
	"github.com/MS250871/my-saas-demo/internal/tenant"
	"github.com/MS250871/my-saas-demo/internal/upload"
	"github.com/MS250871/my-saas-demo/internal/web"
	"github.com/MS250871/my-saas-demo/internal/wizard"
)

const serverEnvPath = "/usr/local/etc/my-saas-demo/global.env"

// loadEnv prefers the server-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Config ──────────────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Shared DB connect ───────────────────────────────────────────
	//
	logOut.Infow("connecting to database")
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logOut.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	// Log tenant count as an early sanity check.
	var tenants int
	_ = db.Get(&tenants, `SELECT COUNT(*) FROM tenants`)
	logOut.Infow("database online", "tenants", tenants)

	//
	// ── 3.  Draft store (Redis or in-memory) ────────────────────────────
	//
	ttl := time.Duration(cfg.Onboarding.DraftTTLHours) * time.Hour
	var drafts draft.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		drafts = draft.NewRedisStore(rdb, ttl)
		logOut.Infow("draft store online", "backend", "redis", "addr", cfg.Redis.Addr)
	} else {
		drafts = draft.NewMemoryStore(ttl)
		logOut.Infow("draft store online", "backend", "memory")
	}

	//
	// ── 4.  Collaborators ───────────────────────────────────────────────
	//
	store, err := upload.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		logOut.Fatalf("open upload store: %v", err)
	}

	repo := tenant.NewRepository(db)
	cache := tenant.NewCache(repo, tenant.IdleTTL, tenant.MaxEntries, logOut)
	defer cache.Close()

	atlas := location.NewCachedSearcher(
		location.NewRepository(db), 4096, location.DefaultCacheTTL)

	srv := web.NewServer(web.Options{
		Log:        logOut,
		Tenants:    tenant.NewService(repo, logOut),
		TenantRead: cache,
		Wizard:     wizard.NewController(drafts, logOut),
		Drafts:     drafts,
		Branding:   branding.NewRepository(db),
		Sections:   sortable.NewRepository(db),
		Locations:  location.NewHandler(atlas, logOut),
		Uploads:    upload.StockFields(store, upload.DefaultSettle),
		BaseDomain: cfg.Onboarding.BaseDomain,
	})

	//
	// ── 5.  Router and HTTPS enforcement ────────────────────────────────
	//
	var handler http.Handler = srv.Router()
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	httpSrv := server.New(cfg.HTTP.ListenAddr, handler)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(httpSrv, logOut); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}
