package db

import (
	"testing"

	"bandserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func int64Ptr(i int64) *int64    { return &i }
func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestCreateAndGetAlbum(t *testing.T) {
	database, _ := setupTestDB(t)

	created := database.CreateAlbum(models.Album{
		Title:       "Aurora",
		Genre:       "electronic",
		TrackCount:  9,
		IsActive:    true,
		ReleaseDate: "2025-03-01",
	})

	assert.NotZero(t, created.ID, "Create must assign an id")
	assert.NotEmpty(t, created.CreatedAt, "Create must stamp the creation time")
	assert.NotNil(t, created.MusicianCredits, "Credits slice must never be nil")

	fetched, found := database.GetAlbumByID(created.ID)
	require.True(t, found)
	assert.Equal(t, created, fetched)

	_, found = database.GetAlbumByID(created.ID + 999)
	assert.False(t, found)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	database, _ := setupTestDB(t)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		album := database.CreateAlbum(models.Album{Title: "Rapid"})
		assert.False(t, seen[album.ID], "Rapid successive creates must never collide")
		seen[album.ID] = true
	}
}

func TestUpdateAlbumShallowMerge(t *testing.T) {
	database, _ := setupTestDB(t)

	album := database.CreateAlbum(models.Album{Title: "Original", Genre: "rock", TrackCount: 10})

	updated, err := database.UpdateAlbum(album.ID, models.AlbumPatch{
		Title:    strPtr("Renamed"),
		IsActive: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "rock", updated.Genre, "Untouched fields must keep their values")
	assert.Equal(t, 10, updated.TrackCount)
	assert.Equal(t, album.CreatedAt, updated.CreatedAt, "CreatedAt is immutable")
	assert.Equal(t, album.ID, updated.ID, "The id is immutable")
}

func TestUpdateAlbumEmptyPatchIsIdempotent(t *testing.T) {
	database, _ := setupTestDB(t)

	album := database.CreateAlbum(models.Album{Title: "Steady", Genre: "folk"})

	updated, err := database.UpdateAlbum(album.ID, models.AlbumPatch{})
	require.NoError(t, err)
	assert.Equal(t, album, updated, "An empty patch must change nothing")
}

func TestUpdateAlbumNotFound(t *testing.T) {
	database, _ := setupTestDB(t)

	_, err := database.UpdateAlbum(12345, models.AlbumPatch{Title: strPtr("Ghost")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAlbumCascadesToSongs(t *testing.T) {
	database, _ := setupTestDB(t)

	kept := database.CreateAlbum(models.Album{Title: "Kept"})
	doomed := database.CreateAlbum(models.Album{Title: "Doomed"})

	database.CreateSong(models.Song{Title: "Survivor", AlbumID: kept.ID})
	database.CreateSong(models.Song{Title: "Casualty One", AlbumID: doomed.ID})
	database.CreateSong(models.Song{Title: "Casualty Two", AlbumID: doomed.ID})

	require.NoError(t, database.DeleteAlbum(doomed.ID))

	_, found := database.GetAlbumByID(doomed.ID)
	assert.False(t, found)

	songs := database.GetAllSongs()
	require.Len(t, songs, 1, "Songs of the deleted album must be removed with it")
	assert.Equal(t, "Survivor", songs[0].Title)
	assert.Empty(t, database.GetSongsByAlbum(doomed.ID))
}

func TestDeleteAlbumNotFound(t *testing.T) {
	database, _ := setupTestDB(t)

	err := database.DeleteAlbum(99999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSongCRUD(t *testing.T) {
	database, _ := setupTestDB(t)

	album := database.CreateAlbum(models.Album{Title: "Host"})
	song := database.CreateSong(models.Song{Title: "Track One", AlbumID: album.ID, Duration: "3:42"})
	assert.NotZero(t, song.ID)
	assert.NotEmpty(t, song.CreatedAt)

	fetched, found := database.GetSongByID(song.ID)
	require.True(t, found)
	assert.Equal(t, song, fetched)

	updated, err := database.UpdateSong(song.ID, models.SongPatch{
		Lyrics:   strPtr("La notte scende..."),
		IsActive: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "La notte scende...", updated.Lyrics)
	assert.Equal(t, "3:42", updated.Duration)

	require.NoError(t, database.DeleteSong(song.ID))
	_, found = database.GetSongByID(song.ID)
	assert.False(t, found)

	assert.ErrorIs(t, database.DeleteSong(song.ID), ErrNotFound)
}

func TestSongAlbumReferenceNotValidated(t *testing.T) {
	database, _ := setupTestDB(t)

	// No album with this id exists; the song is stored anyway.
	song := database.CreateSong(models.Song{Title: "Orphan", AlbumID: 424242})
	fetched, found := database.GetSongByID(song.ID)
	require.True(t, found)
	assert.Equal(t, int64(424242), fetched.AlbumID)
}

func TestGetSongsByAlbum(t *testing.T) {
	database, _ := setupTestDB(t)

	a := database.CreateAlbum(models.Album{Title: "A"})
	b := database.CreateAlbum(models.Album{Title: "B"})
	database.CreateSong(models.Song{Title: "A1", AlbumID: a.ID})
	database.CreateSong(models.Song{Title: "B1", AlbumID: b.ID})
	database.CreateSong(models.Song{Title: "A2", AlbumID: a.ID})

	songs := database.GetSongsByAlbum(a.ID)
	require.Len(t, songs, 2)
	for _, song := range songs {
		assert.Equal(t, a.ID, song.AlbumID)
	}
}

func TestPodcastCRUD(t *testing.T) {
	database, _ := setupTestDB(t)

	episode := database.CreatePodcast(models.Podcast{Title: "Episode 1", IsNew: true})
	assert.NotZero(t, episode.ID)
	assert.NotEmpty(t, episode.PublishDate, "PublishDate must default to now")

	dated := database.CreatePodcast(models.Podcast{Title: "Episode 2", PublishDate: "2025-01-15"})
	assert.Equal(t, "2025-01-15", dated.PublishDate, "A supplied PublishDate is kept")

	updated, err := database.UpdatePodcast(episode.ID, models.PodcastPatch{
		IsNew:    boolPtr(false),
		IsActive: boolPtr(true),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsNew)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "Episode 1", updated.Title)

	require.NoError(t, database.DeletePodcast(dated.ID))
	assert.Len(t, database.GetAllPodcasts(), 1)

	_, err = database.UpdatePodcast(dated.ID, models.PodcastPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllReturnsCopies(t *testing.T) {
	database, _ := setupTestDB(t)

	database.CreateAlbum(models.Album{Title: "Immutable"})

	albums := database.GetAllAlbums()
	albums[0].Title = "Mutated"

	fresh := database.GetAllAlbums()
	assert.Equal(t, "Immutable", fresh[0].Title, "Callers must not be able to mutate stored state")
}

// Catalog lifecycle end to end: fresh store, build a release, tear it down.
func TestCatalogScenario(t *testing.T) {
	database, _ := setupTestDB(t)

	require.Empty(t, database.GetAllAlbums(), "A fresh store starts with no content")

	album := database.CreateAlbum(models.Album{Title: "Debut", Genre: "indie"})
	songOne := database.CreateSong(models.Song{Title: "Opener", AlbumID: album.ID})
	database.CreateSong(models.Song{Title: "Closer", AlbumID: album.ID})

	_, err := database.UpdateAlbum(album.ID, models.AlbumPatch{IsActive: boolPtr(true)})
	require.NoError(t, err)
	_, err = database.UpdateSong(songOne.ID, models.SongPatch{IsActive: boolPtr(true)})
	require.NoError(t, err)

	require.Len(t, database.GetSongsByAlbum(album.ID), 2)

	require.NoError(t, database.DeleteAlbum(album.ID))
	assert.Empty(t, database.GetAllAlbums())
	assert.Empty(t, database.GetAllSongs())
}
