package db

import (
	"errors"
	"fmt"
	"log"

	"bandserver/models"
	"bandserver/utils"
)

// Settings repositories: singleton values replaced or merged wholesale.

// ErrWrongPassword is returned by ChangePassword when the current password
// does not match the stored hash.
var ErrWrongPassword = errors.New("current password is incorrect")

// BandProfile returns the band profile singleton.
func (db *Database) BandProfile() models.BandProfile {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()
	return db.Store.Band
}

// UpdateBandProfile shallow-merges the patch over the band profile.
func (db *Database) UpdateBandProfile(patch models.BandProfilePatch) models.BandProfile {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	band := db.Store.Band
	if patch.Name != nil {
		band.Name = *patch.Name
	}
	if patch.Tagline != nil {
		band.Tagline = *patch.Tagline
	}
	if patch.Description != nil {
		band.Description = *patch.Description
	}
	if patch.Email != nil {
		band.Email = *patch.Email
	}
	if patch.Social != nil {
		band.Social = *patch.Social
	}
	if patch.Sections != nil {
		band.Sections = *patch.Sections
	}
	db.Store.Band = band
	log.Printf("INFO: Updated band profile")

	db.requestSave()
	return band
}

// Theme returns the theme singleton and its current revision.
func (db *Database) Theme() (models.Theme, int64) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()
	return db.Store.Theme, db.Store.ThemeRevision
}

// UpdateTheme shallow-merges the patch over the theme and bumps the theme
// revision counter, which dependent views use to force a remount.
func (db *Database) UpdateTheme(patch models.ThemePatch) (models.Theme, int64) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	theme := db.Store.Theme
	if patch.PrimaryColor != nil {
		theme.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		theme.SecondaryColor = *patch.SecondaryColor
	}
	if patch.AccentColor != nil {
		theme.AccentColor = *patch.AccentColor
	}
	if patch.BackgroundColor != nil {
		theme.BackgroundColor = *patch.BackgroundColor
	}
	if patch.TextColor != nil {
		theme.TextColor = *patch.TextColor
	}
	if patch.FontFamily != nil {
		theme.FontFamily = *patch.FontFamily
	}
	if patch.HeroBackgroundMode != nil {
		theme.HeroBackgroundMode = *patch.HeroBackgroundMode
	}
	if patch.HeroBackgroundImage != nil {
		theme.HeroBackgroundImage = *patch.HeroBackgroundImage
	}
	if patch.HeroOverlayOpacity != nil {
		theme.HeroOverlayOpacity = *patch.HeroOverlayOpacity
	}
	if patch.GradientDirection != nil {
		theme.GradientDirection = *patch.GradientDirection
	}
	if patch.GradientPattern != nil {
		theme.GradientPattern = *patch.GradientPattern
	}

	db.Store.Theme = theme
	db.Store.ThemeRevision++
	revision := db.Store.ThemeRevision
	log.Printf("INFO: Updated theme (revision %d)", revision)

	db.requestSave()
	return theme, revision
}

// FooterSettings returns the footer configuration singleton.
func (db *Database) FooterSettings() models.FooterSettings {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()
	return db.Store.Footer
}

// ReplaceFooterSettings replaces the footer configuration wholesale.
func (db *Database) ReplaceFooterSettings(footer models.FooterSettings) models.FooterSettings {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	if footer.Links == nil {
		footer.Links = []models.FooterLink{}
	}
	db.Store.Footer = footer
	log.Printf("INFO: Replaced footer settings")

	db.requestSave()
	return footer
}

// SeoSettings returns the SEO configuration singleton.
func (db *Database) SeoSettings() models.SeoSettings {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()
	return db.Store.Seo
}

// ReplaceSeoSettings replaces the SEO configuration wholesale.
func (db *Database) ReplaceSeoSettings(seo models.SeoSettings) models.SeoSettings {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	db.Store.Seo = seo
	log.Printf("INFO: Replaced SEO settings")

	db.requestSave()
	return seo
}

// SystemConfig returns the system configuration singleton.
func (db *Database) SystemConfig() models.SystemConfig {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()
	return db.Store.System
}

// ReplaceSystemConfig replaces the system configuration wholesale.
func (db *Database) ReplaceSystemConfig(system models.SystemConfig) models.SystemConfig {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	db.Store.System = system
	log.Printf("INFO: Replaced system configuration")

	db.requestSave()
	return system
}

// Translations returns a copy of all language tables.
func (db *Database) Translations() map[string]map[string]string {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	out := make(map[string]map[string]string, len(db.Store.Translations))
	for lang, table := range db.Store.Translations {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		out[lang] = copied
	}
	return out
}

// TranslationsFor returns the table for one language, or false when the
// language has no table.
func (db *Database) TranslationsFor(lang string) (map[string]string, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	table, ok := db.Store.Translations[lang]
	if !ok {
		return nil, false
	}
	copied := make(map[string]string, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return copied, true
}

// ReplaceTranslations replaces the editable language tables wholesale.
// English is the immutable built-in base: any "en" entry in the input is
// ignored and the built-in table is re-emitted.
func (db *Database) ReplaceTranslations(translations map[string]map[string]string) map[string]map[string]string {
	db.Store.Mu.Lock()

	next := make(map[string]map[string]string, len(translations)+1)
	for lang, table := range translations {
		if lang == "en" {
			continue
		}
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		next[lang] = copied
	}
	next["en"] = models.EnglishBase()
	db.Store.Translations = next
	log.Printf("INFO: Replaced translations (%d languages)", len(next))

	db.Store.Mu.Unlock()
	db.requestSave()
	return db.Translations()
}

// Translate resolves a string key for the given language, falling back to
// the English base when the language or the key is missing.
func (db *Database) Translate(lang, key string) string {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	if table, ok := db.Store.Translations[lang]; ok {
		if value, ok := table[key]; ok && value != "" {
			return value
		}
	}
	if value, ok := db.Store.Translations["en"][key]; ok {
		return value
	}
	return key
}

// AdminAccount returns the admin identity without the password hash.
func (db *Database) AdminAccount() models.AdminAccount {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	account := db.Store.Admin
	account.PasswordHash = ""
	return account
}

// VerifyAdminLogin checks the given username and password against the
// stored admin identity.
func (db *Database) VerifyAdminLogin(username, password string) bool {
	db.Store.Mu.RLock()
	account := db.Store.Admin
	db.Store.Mu.RUnlock()

	if username != account.Username {
		return false
	}
	return utils.CheckPasswordHash(password, account.PasswordHash)
}

// UpdateAdminCredentials replaces the admin username and email.
func (db *Database) UpdateAdminCredentials(username, email string) models.AdminAccount {
	db.Store.Mu.Lock()
	db.Store.Admin.Username = username
	db.Store.Admin.Email = email
	db.Store.Mu.Unlock()
	log.Printf("INFO: Updated admin credentials (username: %q)", username)

	db.requestSave()
	return db.AdminAccount()
}

// ChangePassword verifies the current password against the stored bcrypt
// hash and persists a hash of the new one. Returns ErrWrongPassword on a
// mismatch.
func (db *Database) ChangePassword(current, next string) error {
	db.Store.Mu.RLock()
	storedHash := db.Store.Admin.PasswordHash
	db.Store.Mu.RUnlock()

	if !utils.CheckPasswordHash(current, storedHash) {
		log.Printf("WARN: Password change rejected: current password mismatch")
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(next, db.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	db.Store.Mu.Lock()
	db.Store.Admin.PasswordHash = hash
	db.Store.Mu.Unlock()
	log.Printf("INFO: Admin password changed")

	db.requestSave()
	return nil
}
