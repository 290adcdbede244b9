// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `SAAS_`-prefixed environment overrides  – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the shared MySQL pool settings.
type Database struct {
	DSN string `koanf:"dsn" validate:"required"`
}

//
// Redis section
//

// Redis holds the draft-session store settings.  An empty Addr selects
// the in-memory draft store, which is fine for single-node dev.
type Redis struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

//
// Uploads section
//

// Uploads holds the staging store settings.
type Uploads struct {
	Dir     string `koanf:"dir" validate:"required"`
	BaseURL string `koanf:"base_url" validate:"required"`
}

//
// Onboarding section
//

// Onboarding holds wizard-level tunables.
type Onboarding struct {
	BaseDomain    string `koanf:"base_domain" validate:"required,fqdn"`
	DraftTTLHours int    `koanf:"draft_ttl_hours" validate:"gte=0"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or SAAS_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // SAAS_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP       HTTP       `koanf:"http"`
	Database   Database   `koanf:"database"`
	Redis      Redis      `koanf:"redis"`
	Uploads    Uploads    `koanf:"uploads"`
	Onboarding Onboarding `koanf:"onboarding"`
	Paths      Paths      `koanf:"-"` // not loaded from config files
}
