package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration settings for the application.
type Config struct {
	// Server settings
	ListenAddress string
	ListenPort    string

	// Store settings
	StoreFilePath string
	LangFilePath  string
	SaveInterval  time.Duration
	EnableBackup  bool

	// Authentication settings
	JwtSecret     string // The actual secret key
	JwtSecretFile string // Path to the file containing the secret
	TokenLifetime time.Duration
	BcryptCost    int
	AdminPassword string // Initial admin password, hashed on first load
}

const (
	defaultAddress       = "0.0.0.0"
	defaultPort          = "8080"
	defaultStoreFile     = "./band.json"
	defaultLangFile      = "./band.lang"
	defaultSaveInterval  = 3 * time.Second
	defaultEnableBackup  = true
	defaultJwtKeyFile    = "./band.key" // Fallback file when no secret is supplied
	defaultTokenLifetime = 1 * time.Hour
	defaultBcryptCost    = 12
	defaultAdminPassword = "change-me"
)

// Load builds the configuration from defaults, environment variables
// (BANDSERVER_* prefix) and the given command-line arguments. Flags take
// precedence over environment variables, which take precedence over defaults.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("bandserver", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddress, "address", getEnv("BANDSERVER_LISTEN_ADDRESS", defaultAddress), "Server listen address (Env: BANDSERVER_LISTEN_ADDRESS)")
	fs.StringVar(&cfg.ListenPort, "port", getEnv("BANDSERVER_LISTEN_PORT", defaultPort), "Server listen port (Env: BANDSERVER_LISTEN_PORT)")
	fs.StringVar(&cfg.StoreFilePath, "store-file", getEnv("BANDSERVER_STORE_FILE_PATH", defaultStoreFile), "Path to the JSON content store file (Env: BANDSERVER_STORE_FILE_PATH)")
	fs.StringVar(&cfg.LangFilePath, "lang-file", getEnv("BANDSERVER_LANG_FILE_PATH", defaultLangFile), "Path to the site-language slot file (Env: BANDSERVER_LANG_FILE_PATH)")
	saveIntervalStr := fs.String("save-interval", getEnv("BANDSERVER_SAVE_INTERVAL", defaultSaveInterval.String()), "Debounce interval for persisting the store, e.g. 5s or 100ms (Env: BANDSERVER_SAVE_INTERVAL)")
	fs.BoolVar(&cfg.EnableBackup, "enable-backup", getEnvBool("BANDSERVER_ENABLE_BACKUP", defaultEnableBackup), "Keep a .bak copy of the store before each save (Env: BANDSERVER_ENABLE_BACKUP)")
	fs.StringVar(&cfg.JwtSecretFile, "jwt-secret-file", getEnv("BANDSERVER_JWT_SECRET_FILE", ""), "Path to file containing the JWT secret key (Env: BANDSERVER_JWT_SECRET_FILE)")
	fs.StringVar(&cfg.AdminPassword, "admin-password", getEnv("BANDSERVER_ADMIN_PASSWORD", defaultAdminPassword), "Initial admin password, hashed into the store on first start (Env: BANDSERVER_ADMIN_PASSWORD)")

	// Non-configurable defaults
	cfg.TokenLifetime = defaultTokenLifetime
	cfg.BcryptCost = defaultBcryptCost

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	cfg.SaveInterval, err = time.ParseDuration(*saveIntervalStr)
	if err != nil {
		log.Printf("WARN: Invalid save-interval duration '%s'. Using default %s. Error: %v", *saveIntervalStr, defaultSaveInterval, err)
		cfg.SaveInterval = defaultSaveInterval
	}

	secretSource, err := resolveJwtSecret(cfg)
	if err != nil {
		return nil, err
	}

	// Resolve and validate the store path. The file itself may not exist yet;
	// it is created on first save.
	absPath, err := filepath.Abs(cfg.StoreFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for store-file '%s': %w", cfg.StoreFilePath, err)
	}
	cfg.StoreFilePath = absPath
	if info, statErr := os.Stat(cfg.StoreFilePath); statErr == nil && info.IsDir() {
		return nil, fmt.Errorf("store path '%s' points to a directory, not a file", cfg.StoreFilePath)
	}

	if absLang, langErr := filepath.Abs(cfg.LangFilePath); langErr == nil {
		cfg.LangFilePath = absLang
	}

	logConfiguration(cfg, secretSource)

	return cfg, nil
}

// resolveJwtSecret fills cfg.JwtSecret using the following precedence:
// explicit file > environment variable > default key file > freshly generated
// (persisted to the default key file when possible). Returns a description of
// where the secret came from.
func resolveJwtSecret(cfg *Config) (string, error) {
	if cfg.JwtSecretFile != "" {
		secretBytes, err := os.ReadFile(cfg.JwtSecretFile)
		if err != nil {
			log.Printf("WARN: Failed to read JWT secret file '%s': %v. Checking other sources.", cfg.JwtSecretFile, err)
		} else if secret := strings.TrimSpace(string(secretBytes)); secret != "" {
			cfg.JwtSecret = secret
			return fmt.Sprintf("File (%s)", cfg.JwtSecretFile), nil
		} else {
			log.Printf("WARN: JWT secret file '%s' is empty. Checking other sources.", cfg.JwtSecretFile)
		}
	}

	if secret := strings.TrimSpace(getEnv("BANDSERVER_JWT_SECRET", "")); secret != "" {
		cfg.JwtSecret = secret
		return "Environment Variable (BANDSERVER_JWT_SECRET)", nil
	}

	if secretBytes, err := os.ReadFile(defaultJwtKeyFile); err == nil {
		if secret := strings.TrimSpace(string(secretBytes)); secret != "" {
			cfg.JwtSecret = secret
			return fmt.Sprintf("Default Key File (%s)", defaultJwtKeyFile), nil
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: Failed to read default JWT key file '%s': %v. Generating a new secret.", defaultJwtKeyFile, err)
	}

	newSecret, err := generateRandomKey(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.JwtSecret = newSecret

	if err := os.WriteFile(defaultJwtKeyFile, []byte(newSecret), 0600); err != nil {
		log.Printf("WARN: Failed to save generated JWT secret to '%s': %v. The key is valid for this session only.", defaultJwtKeyFile, err)
		return "Generated (In Memory)", nil
	}
	log.Printf("INFO: Generated and saved new JWT secret to: %s", defaultJwtKeyFile)
	return fmt.Sprintf("Generated & Saved (%s)", defaultJwtKeyFile), nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable or returns a default
// value. Recognizes "true", "1", "yes" (case-insensitive) as true.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("WARN: Invalid boolean value for environment variable %s: '%s'. Using default: %t", key, value, fallback)
	}
	return fallback
}

// logConfiguration prints the loaded configuration settings.
func logConfiguration(cfg *Config, secretSource string) {
	log.Println("--- Configuration ---")
	log.Printf("Server Address: %s", cfg.ListenAddress)
	log.Printf("Server Port: %s", cfg.ListenPort)
	log.Printf("Store File: %s", cfg.StoreFilePath)
	log.Printf("Language File: %s", cfg.LangFilePath)
	log.Printf("Store Save Interval: %s", cfg.SaveInterval)
	log.Printf("Store Backup Enabled: %t", cfg.EnableBackup)
	log.Printf("JWT Secret Source: %s", secretSource)
	log.Printf("JWT Token Lifetime: %s", cfg.TokenLifetime)
	log.Printf("Bcrypt Cost: %d", cfg.BcryptCost)
	log.Println("---------------------")
}

// generateRandomKey generates a cryptographically secure random key of the
// specified byte length and returns it as a hex-encoded string.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
