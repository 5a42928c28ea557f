package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"bandserver/config"
	"bandserver/models"
	"bandserver/utils"
)

// ErrNotFound is returned when an operation targets an id that is not in its
// collection. Callers can distinguish "succeeded" from "target missing".
var ErrNotFound = errors.New("not found")

// DefaultLanguage is the site language used when no preference has been
// persisted yet.
const DefaultLanguage = "it"

// supportedLanguages are the codes accepted for the site language slot.
var supportedLanguages = map[string]bool{"it": true, "en": true}

// Database owns the root content object and manages hydration, debounced
// persistence and concurrent access. All mutation goes through its methods.
type Database struct {
	models.Store // Embedded root object (collections + settings + mutex)

	config      *config.Config
	saveTimer   *time.Timer // Timer for debounced saving
	savePending bool        // Set when a save is queued
	saveMutex   sync.Mutex  // Guards the save timer state

	language  string     // Cached site language code
	langMutex sync.Mutex // Guards the language slot
}

// NewDatabase creates a Database seeded with the hard-coded defaults, then
// hydrates it from the configured store file. A missing file is not an
// error; an existing but unparsable file is.
func NewDatabase(cfg *config.Config) (*Database, error) {
	db := &Database{
		Store:    models.DefaultStore(),
		config:   cfg,
		language: DefaultLanguage,
	}

	log.Printf("INFO: Initializing content store with file: %s", cfg.StoreFilePath)
	if err := db.Load(); err != nil {
		log.Printf("ERROR: Store load failed with critical error: %v", err)
		return nil, err
	}

	if err := db.ensureAdminPassword(); err != nil {
		return nil, err
	}
	db.loadLanguage()

	return db, nil
}

// Load hydrates the store from the JSON file named in the configuration.
// Persisted values are unmarshalled over the defaults, so top-level keys
// present in the file win while newly added default fields survive. A
// missing file keeps the defaults; a parse error is returned to the caller.
func (db *Database) Load() error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	fileData, err := os.ReadFile(db.config.StoreFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("INFO: Store file '%s' not found. Starting from defaults.", db.config.StoreFilePath)
			return nil
		}
		log.Printf("ERROR: Failed to read store file '%s': %v. Proceeding with defaults.", db.config.StoreFilePath, err)
		return nil
	}

	if err := json.Unmarshal(fileData, &db.Store); err != nil {
		log.Printf("CRITICAL: Failed to parse JSON data from store file '%s': %v", db.config.StoreFilePath, err)
		return err
	}

	db.normalizeLocked()

	log.Printf("INFO: Loaded store from %s. Albums: %d, Songs: %d, Podcasts: %d, Media: %d, Products: %d, Comments: %d",
		db.config.StoreFilePath, len(db.Store.Albums), len(db.Store.Songs), len(db.Store.Podcasts),
		len(db.Store.Media), len(db.Store.Products), len(db.Store.Comments))

	return nil
}

// normalizeLocked repairs nil collections after unmarshalling and restores
// the immutable English translation base. Caller must hold the write lock.
func (db *Database) normalizeLocked() {
	if db.Store.Albums == nil {
		db.Store.Albums = []models.Album{}
	}
	if db.Store.Songs == nil {
		db.Store.Songs = []models.Song{}
	}
	if db.Store.Podcasts == nil {
		db.Store.Podcasts = []models.Podcast{}
	}
	if db.Store.Media == nil {
		db.Store.Media = []models.MediaItem{}
	}
	if db.Store.Products == nil {
		db.Store.Products = []models.Product{}
	}
	if db.Store.Uploads == nil {
		db.Store.Uploads = []models.Upload{}
	}
	if db.Store.Comments == nil {
		db.Store.Comments = []models.Comment{}
	}
	if db.Store.Translations == nil {
		db.Store.Translations = models.DefaultTranslations()
	}
	// English is the fallback base and never editable, even when an older
	// store file carries a modified copy.
	db.Store.Translations["en"] = models.EnglishBase()
}

// ensureAdminPassword hashes the configured initial admin password into the
// store when no hash has been persisted yet (first boot, or pre-auth data).
func (db *Database) ensureAdminPassword() error {
	db.Store.Mu.Lock()
	needsHash := db.Store.Admin.PasswordHash == ""
	db.Store.Mu.Unlock()
	if !needsHash {
		return nil
	}

	hash, err := utils.HashPassword(db.config.AdminPassword, db.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize admin password: %w", err)
	}

	db.Store.Mu.Lock()
	db.Store.Admin.PasswordHash = hash
	db.Store.Mu.Unlock()

	log.Printf("INFO: Initialized admin password hash for user '%s'", db.AdminAccount().Username)
	db.requestSave()
	return nil
}

// persist writes the whole root object to the store file. Write is atomic
// (tmp file + rename) with an optional .bak copy of the previous file.
func (db *Database) persist() error {
	db.Store.Mu.RLock()
	jsonData, err := json.MarshalIndent(&db.Store, "", "  ")
	db.Store.Mu.RUnlock()
	if err != nil {
		log.Printf("ERROR: Failed to marshal store state to JSON: %v", err)
		return err
	}

	tempFilePath := db.config.StoreFilePath + ".tmp"
	backupFilePath := db.config.StoreFilePath + ".bak"

	if err := os.WriteFile(tempFilePath, jsonData, 0644); err != nil {
		log.Printf("ERROR: Failed to write temporary store file '%s': %v", tempFilePath, err)
		return err
	}

	if db.config.EnableBackup {
		if _, err := os.Stat(db.config.StoreFilePath); err == nil {
			if err := os.Rename(db.config.StoreFilePath, backupFilePath); err != nil {
				log.Printf("WARN: Failed to rename '%s' to '%s' for backup: %v. Proceeding with save.", db.config.StoreFilePath, backupFilePath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Error checking store file '%s' before backup: %v", db.config.StoreFilePath, err)
		}
	}

	if err := os.Rename(tempFilePath, db.config.StoreFilePath); err != nil {
		log.Printf("ERROR: Failed to rename temporary file '%s' to '%s': %v", tempFilePath, db.config.StoreFilePath, err)
		_ = os.Remove(tempFilePath)
		return err
	}

	log.Printf("INFO: Saved store state to %s", db.config.StoreFilePath)
	return nil
}

// requestSave is called after every mutation to trigger a debounced save.
// Persistence failures are logged, never surfaced to the caller; the
// in-memory state stays authoritative until the next successful write.
func (db *Database) requestSave() {
	db.saveMutex.Lock()
	defer db.saveMutex.Unlock()

	if db.config.SaveInterval <= 0 {
		go func() {
			if err := db.persist(); err != nil {
				log.Printf("ERROR: Immediate persist failed: %v", err)
			}
		}()
		return
	}

	if db.saveTimer != nil {
		db.saveTimer.Stop()
	}
	db.savePending = true

	db.saveTimer = time.AfterFunc(db.config.SaveInterval, func() {
		db.saveMutex.Lock()
		if !db.savePending {
			db.saveMutex.Unlock()
			return
		}
		db.savePending = false
		db.saveMutex.Unlock()

		if err := db.persist(); err != nil {
			log.Printf("ERROR: Debounced persist failed: %v", err)
		}
	})
}

// Close flushes any pending save before shutdown.
func (db *Database) Close() error {
	var needsFinalPersist bool

	db.saveMutex.Lock()
	if db.saveTimer != nil {
		db.saveTimer.Stop()
		db.saveTimer = nil
	}
	if db.savePending {
		needsFinalPersist = true
		db.savePending = false
	}
	db.saveMutex.Unlock()

	if needsFinalPersist {
		log.Printf("INFO: Performing final persist on close...")
		if err := db.persist(); err != nil {
			log.Printf("ERROR: Final persist failed during close: %v", err)
			return err
		}
	}
	return nil
}

// --- Site language slot ---

// The language preference lives in its own tiny file, independent from the
// content store, mirroring the two persisted keys of the original site.

// loadLanguage reads the persisted language code, keeping the default when
// the slot is missing or holds an unsupported code.
func (db *Database) loadLanguage() {
	data, err := os.ReadFile(db.config.LangFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to read language file '%s': %v. Using default '%s'.", db.config.LangFilePath, err, DefaultLanguage)
		}
		return
	}
	code := strings.TrimSpace(string(data))
	if !supportedLanguages[code] {
		log.Printf("WARN: Unsupported language '%s' in '%s'. Using default '%s'.", code, db.config.LangFilePath, DefaultLanguage)
		return
	}
	db.langMutex.Lock()
	db.language = code
	db.langMutex.Unlock()
}

// Language returns the current site language code.
func (db *Database) Language() string {
	db.langMutex.Lock()
	defer db.langMutex.Unlock()
	return db.language
}

// SetLanguage updates the site language and persists it to the language
// slot. Unsupported codes are rejected.
func (db *Database) SetLanguage(code string) error {
	if !supportedLanguages[code] {
		return fmt.Errorf("unsupported language '%s'", code)
	}

	db.langMutex.Lock()
	db.language = code
	db.langMutex.Unlock()

	if err := os.WriteFile(db.config.LangFilePath, []byte(code), 0644); err != nil {
		// Same policy as the store: the in-memory value is authoritative,
		// the write failure is logged and swallowed.
		log.Printf("ERROR: Failed to persist language '%s' to '%s': %v", code, db.config.LangFilePath, err)
	}
	return nil
}

// --- ID and timestamp helpers ---

// nextEntityID derives a fresh numeric id from the current Unix-millisecond
// clock, bumped past maxExisting so that rapid successive creations in the
// same collection never collide.
func nextEntityID(maxExisting int64) int64 {
	now := time.Now().UnixMilli()
	if now <= maxExisting {
		return maxExisting + 1
	}
	return now
}

// nowStamp returns the creation timestamp format used across all entities.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
