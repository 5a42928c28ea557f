package db

import (
	"testing"

	"bandserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBandProfileShallowMerge(t *testing.T) {
	database, _ := setupTestDB(t)

	original := database.BandProfile()

	updated := database.UpdateBandProfile(models.BandProfilePatch{
		Tagline: strPtr("New tagline"),
	})

	assert.Equal(t, "New tagline", updated.Tagline)
	assert.Equal(t, original.Name, updated.Name, "Untouched fields keep their values")
	assert.Equal(t, original.Social, updated.Social)
}

func TestUpdateBandProfileReplacesNestedBlocks(t *testing.T) {
	database, _ := setupTestDB(t)

	updated := database.UpdateBandProfile(models.BandProfilePatch{
		Social: &models.SocialLinks{Instagram: "https://instagram.com/test"},
	})

	assert.Equal(t, "https://instagram.com/test", updated.Social.Instagram)
	// The nested block is replaced wholesale, so siblings reset too.
	assert.Empty(t, updated.Social.Spotify)
}

func TestUpdateThemeBumpsRevision(t *testing.T) {
	database, _ := setupTestDB(t)

	_, before := database.Theme()

	theme, afterFirst := database.UpdateTheme(models.ThemePatch{PrimaryColor: strPtr("#ff0000")})
	assert.Equal(t, "#ff0000", theme.PrimaryColor)
	assert.Equal(t, before+1, afterFirst)

	// Even an empty patch counts as an update.
	_, afterSecond := database.UpdateTheme(models.ThemePatch{})
	assert.Equal(t, afterFirst+1, afterSecond)
}

func TestReplaceFooterSettings(t *testing.T) {
	database, _ := setupTestDB(t)

	replaced := database.ReplaceFooterSettings(models.FooterSettings{
		Description: "Just us",
		Copyright:   "© 2026",
	})

	assert.Equal(t, "Just us", replaced.Description)
	assert.NotNil(t, replaced.Links, "A nil links slice must be repaired")
	assert.Empty(t, replaced.Links)

	// Replacement is wholesale: fields missing from the input are zeroed.
	again := database.ReplaceFooterSettings(models.FooterSettings{Copyright: "© 2027"})
	assert.Empty(t, again.Description)
}

func TestReplaceSeoAndSystemConfig(t *testing.T) {
	database, _ := setupTestDB(t)

	seo := database.ReplaceSeoSettings(models.SeoSettings{Title: "Aurora Nera — Official"})
	assert.Equal(t, "Aurora Nera — Official", seo.Title)
	assert.Equal(t, seo, database.SeoSettings())

	system := database.SystemConfig()
	system.Security.MaintenanceMode = true
	system.Shipping.FlatRate = 9.9
	saved := database.ReplaceSystemConfig(system)

	assert.True(t, saved.Security.MaintenanceMode)
	assert.Equal(t, 9.9, database.SystemConfig().Shipping.FlatRate)
}

func TestReplaceTranslationsKeepsEnglishBase(t *testing.T) {
	database, _ := setupTestDB(t)

	result := database.ReplaceTranslations(map[string]map[string]string{
		"it": {"nav.music": "Musica!"},
		"en": {"nav.music": "should be ignored"},
		"de": {"nav.music": "Musik"},
	})

	assert.Equal(t, "Musica!", result["it"]["nav.music"])
	assert.Equal(t, "Musik", result["de"]["nav.music"])
	assert.Equal(t, models.EnglishBase()["nav.music"], result["en"]["nav.music"],
		"English must be re-emitted from the built-in base")
}

func TestTranslationsReturnCopies(t *testing.T) {
	database, _ := setupTestDB(t)

	table, ok := database.TranslationsFor("it")
	require.True(t, ok)
	table["nav.music"] = "mutated"

	fresh, _ := database.TranslationsFor("it")
	assert.NotEqual(t, "mutated", fresh["nav.music"])

	_, ok = database.TranslationsFor("xx")
	assert.False(t, ok)
}

func TestTranslateFallbackChain(t *testing.T) {
	database, _ := setupTestDB(t)

	database.ReplaceTranslations(map[string]map[string]string{
		"it": {"nav.music": "Musica"},
	})

	// Language hit.
	assert.Equal(t, "Musica", database.Translate("it", "nav.music"))
	// Key missing in the language table: fall back to English.
	assert.Equal(t, models.EnglishBase()["nav.home"], database.Translate("it", "nav.home"))
	// Unknown language: English.
	assert.Equal(t, models.EnglishBase()["nav.music"], database.Translate("xx", "nav.music"))
	// Unknown everywhere: the key itself.
	assert.Equal(t, "no.such.key", database.Translate("it", "no.such.key"))
}

func TestUpdateAdminCredentials(t *testing.T) {
	database, _ := setupTestDB(t)

	account := database.UpdateAdminCredentials("newadmin", "new@auroranera.example")
	assert.Equal(t, "newadmin", account.Username)
	assert.Equal(t, "new@auroranera.example", account.Email)
	assert.Empty(t, account.PasswordHash)

	// The password is untouched; only the login name changed.
	assert.False(t, database.VerifyAdminLogin("admin", testAdminPassword))
	assert.True(t, database.VerifyAdminLogin("newadmin", testAdminPassword))
}

func TestChangePassword(t *testing.T) {
	database, _ := setupTestDB(t)

	err := database.ChangePassword("wrong-current", "brand-new-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.True(t, database.VerifyAdminLogin("admin", testAdminPassword),
		"A rejected change must leave the old password working")

	require.NoError(t, database.ChangePassword(testAdminPassword, "brand-new-password"))
	assert.False(t, database.VerifyAdminLogin("admin", testAdminPassword))
	assert.True(t, database.VerifyAdminLogin("admin", "brand-new-password"))
}

func TestChangePasswordSurvivesRestart(t *testing.T) {
	cfg := newTestConfig(t)
	database, err := NewDatabase(cfg)
	require.NoError(t, err)

	require.NoError(t, database.ChangePassword(testAdminPassword, "rotated-password"))
	require.NoError(t, database.Close())

	reloaded, err := NewDatabase(cfg)
	require.NoError(t, err)
	defer reloaded.Close()

	assert.True(t, reloaded.VerifyAdminLogin("admin", "rotated-password"))
	assert.False(t, reloaded.VerifyAdminLogin("admin", testAdminPassword),
		"The configured initial password must not re-hash over a stored one")
}
