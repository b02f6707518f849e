package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/localnerve/staffdir/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultAvatarFallbackURL is the generated placeholder avatar template,
// keyed by employee code via the seed query parameter.
const DefaultAvatarFallbackURL = "https://api.dicebear.com/9.x/avataaars/svg"

// Credential is one entry of the username -> credential table. Password is
// a bcrypt hash, never plaintext.
type Credential struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// CredentialTable mirrors the externally supplied credentials structure.
type CredentialTable struct {
	Usernames map[string]Credential `json:"usernames" yaml:"usernames"`
}

// CookieSettings holds the session cookie parameters. ExpiryDays may arrive
// as a JSON number or string.
type CookieSettings struct {
	Name       string           `json:"name"`
	Key        string           `json:"key"`
	ExpiryDays types.FlexUint64 `json:"expiry_days"`
}

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Dataset configuration
	DataDir string

	// Avatar configuration
	AvatarFallbackURL string

	// Authentication configuration
	Credentials CredentialTable
	Cookie      CookieSettings
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DataDir:           getEnv("DATA_DIR", "data"),
		AvatarFallbackURL: getEnv("AVATAR_FALLBACK_URL", DefaultAvatarFallbackURL),
	}

	cookieJSON := os.Getenv("COOKIE")
	if cookieJSON == "" {
		return nil, fmt.Errorf("COOKIE is required")
	}
	if err := json.Unmarshal([]byte(cookieJSON), &cfg.Cookie); err != nil {
		return nil, fmt.Errorf("invalid COOKIE: %w", err)
	}
	if cfg.Cookie.Name == "" {
		return nil, fmt.Errorf("COOKIE requires a name")
	}
	if cfg.Cookie.Key == "" {
		return nil, fmt.Errorf("COOKIE requires a signing key")
	}
	if cfg.Cookie.ExpiryDays == 0 {
		cfg.Cookie.ExpiryDays = 30
	}

	credentials, err := loadCredentials()
	if err != nil {
		return nil, err
	}
	if len(credentials.Usernames) == 0 {
		return nil, fmt.Errorf("credential table has no usernames")
	}
	for username, cred := range credentials.Usernames {
		if cred.Password == "" {
			return nil, fmt.Errorf("credential for %q has no password hash", username)
		}
	}
	cfg.Credentials = credentials

	return cfg, nil
}

// loadCredentials reads the credential table from the CREDENTIALS JSON
// environment variable, falling back to the YAML file named by
// CREDENTIALS_FILE.
func loadCredentials() (CredentialTable, error) {
	var table CredentialTable

	if raw := os.Getenv("CREDENTIALS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &table); err != nil {
			return table, fmt.Errorf("invalid CREDENTIALS: %w", err)
		}
		return table, nil
	}

	file := os.Getenv("CREDENTIALS_FILE")
	if file == "" {
		return table, fmt.Errorf("CREDENTIALS or CREDENTIALS_FILE is required")
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return table, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return table, fmt.Errorf("invalid credentials file %s: %w", file, err)
	}
	return table, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
