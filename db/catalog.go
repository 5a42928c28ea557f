package db

import (
	"fmt"
	"log"

	"bandserver/models"
)

// Catalog repositories: albums, songs and podcast episodes. Every write
// locks the root object, replaces the affected slice (copy-on-write) and
// requests a persist. Updates are shallow merges; a missing id returns
// ErrNotFound.

// --- Albums ---

// CreateAlbum assigns a fresh id and creation timestamp, appends the album
// and returns it.
func (db *Database) CreateAlbum(album models.Album) models.Album {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	album.ID = nextEntityID(maxAlbumID(db.Store.Albums))
	album.CreatedAt = nowStamp()
	if album.MusicianCredits == nil {
		album.MusicianCredits = []string{}
	}
	db.Store.Albums = append(db.Store.Albums, album)
	log.Printf("INFO: Created Album ID: %d, Title: %q", album.ID, album.Title)

	db.requestSave()
	return album
}

// GetAlbumByID retrieves an album by id.
func (db *Database) GetAlbumByID(id int64) (models.Album, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, album := range db.Store.Albums {
		if album.ID == id {
			return album, true
		}
	}
	return models.Album{}, false
}

// GetAllAlbums returns a copy of the albums collection.
func (db *Database) GetAllAlbums() []models.Album {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	albums := make([]models.Album, len(db.Store.Albums))
	copy(albums, db.Store.Albums)
	return albums
}

// UpdateAlbum shallow-merges the patch over the stored album.
func (db *Database) UpdateAlbum(id int64, patch models.AlbumPatch) (models.Album, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, album := range db.Store.Albums {
		if album.ID != id {
			continue
		}
		if patch.Title != nil {
			album.Title = *patch.Title
		}
		if patch.Cover != nil {
			album.Cover = *patch.Cover
		}
		if patch.ReleaseDate != nil {
			album.ReleaseDate = *patch.ReleaseDate
		}
		if patch.Description != nil {
			album.Description = *patch.Description
		}
		if patch.Genre != nil {
			album.Genre = *patch.Genre
		}
		if patch.Duration != nil {
			album.Duration = *patch.Duration
		}
		if patch.TrackCount != nil {
			album.TrackCount = *patch.TrackCount
		}
		if patch.ProductionCredits != nil {
			album.ProductionCredits = *patch.ProductionCredits
		}
		if patch.MusicianCredits != nil {
			album.MusicianCredits = *patch.MusicianCredits
		}
		if patch.LinerNotes != nil {
			album.LinerNotes = *patch.LinerNotes
		}
		if patch.IsActive != nil {
			album.IsActive = *patch.IsActive
		}

		albums := make([]models.Album, len(db.Store.Albums))
		copy(albums, db.Store.Albums)
		albums[i] = album
		db.Store.Albums = albums
		log.Printf("INFO: Updated Album ID: %d", id)

		db.requestSave()
		return album, nil
	}
	return models.Album{}, fmt.Errorf("album with ID %d: %w", id, ErrNotFound)
}

// DeleteAlbum removes the album and cascades to every song whose AlbumID
// matches. This is the only cascade in the store.
func (db *Database) DeleteAlbum(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	albums := make([]models.Album, 0, len(db.Store.Albums))
	found := false
	for _, album := range db.Store.Albums {
		if album.ID == id {
			found = true
			continue
		}
		albums = append(albums, album)
	}
	if !found {
		return fmt.Errorf("album with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Albums = albums

	songs := make([]models.Song, 0, len(db.Store.Songs))
	removed := 0
	for _, song := range db.Store.Songs {
		if song.AlbumID == id {
			removed++
			continue
		}
		songs = append(songs, song)
	}
	db.Store.Songs = songs
	log.Printf("INFO: Deleted Album ID: %d (cascade removed %d songs)", id, removed)

	db.requestSave()
	return nil
}

func maxAlbumID(albums []models.Album) int64 {
	var max int64
	for _, a := range albums {
		if a.ID > max {
			max = a.ID
		}
	}
	return max
}

// --- Songs ---

// CreateSong assigns a fresh id and creation timestamp, appends the song and
// returns it. The AlbumID reference is accepted as-is, matching the store's
// contract of no referential validation.
func (db *Database) CreateSong(song models.Song) models.Song {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	song.ID = nextEntityID(maxSongID(db.Store.Songs))
	song.CreatedAt = nowStamp()
	db.Store.Songs = append(db.Store.Songs, song)
	log.Printf("INFO: Created Song ID: %d, Title: %q, AlbumID: %d", song.ID, song.Title, song.AlbumID)

	db.requestSave()
	return song
}

// GetSongByID retrieves a song by id.
func (db *Database) GetSongByID(id int64) (models.Song, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, song := range db.Store.Songs {
		if song.ID == id {
			return song, true
		}
	}
	return models.Song{}, false
}

// GetAllSongs returns a copy of the songs collection.
func (db *Database) GetAllSongs() []models.Song {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	songs := make([]models.Song, len(db.Store.Songs))
	copy(songs, db.Store.Songs)
	return songs
}

// GetSongsByAlbum returns the songs referencing the given album id.
func (db *Database) GetSongsByAlbum(albumID int64) []models.Song {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	songs := make([]models.Song, 0)
	for _, song := range db.Store.Songs {
		if song.AlbumID == albumID {
			songs = append(songs, song)
		}
	}
	return songs
}

// UpdateSong shallow-merges the patch over the stored song.
func (db *Database) UpdateSong(id int64, patch models.SongPatch) (models.Song, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, song := range db.Store.Songs {
		if song.ID != id {
			continue
		}
		if patch.Title != nil {
			song.Title = *patch.Title
		}
		if patch.AlbumID != nil {
			song.AlbumID = *patch.AlbumID
		}
		if patch.Duration != nil {
			song.Duration = *patch.Duration
		}
		if patch.AudioURL != nil {
			song.AudioURL = *patch.AudioURL
		}
		if patch.Lyrics != nil {
			song.Lyrics = *patch.Lyrics
		}
		if patch.Notes != nil {
			song.Notes = *patch.Notes
		}
		if patch.IsActive != nil {
			song.IsActive = *patch.IsActive
		}

		songs := make([]models.Song, len(db.Store.Songs))
		copy(songs, db.Store.Songs)
		songs[i] = song
		db.Store.Songs = songs
		log.Printf("INFO: Updated Song ID: %d", id)

		db.requestSave()
		return song, nil
	}
	return models.Song{}, fmt.Errorf("song with ID %d: %w", id, ErrNotFound)
}

// DeleteSong removes a song by id.
func (db *Database) DeleteSong(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	songs := make([]models.Song, 0, len(db.Store.Songs))
	found := false
	for _, song := range db.Store.Songs {
		if song.ID == id {
			found = true
			continue
		}
		songs = append(songs, song)
	}
	if !found {
		return fmt.Errorf("song with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Songs = songs
	log.Printf("INFO: Deleted Song ID: %d", id)

	db.requestSave()
	return nil
}

func maxSongID(songs []models.Song) int64 {
	var max int64
	for _, s := range songs {
		if s.ID > max {
			max = s.ID
		}
	}
	return max
}

// --- Podcasts ---

// CreatePodcast assigns a fresh id and publish date, appends the episode and
// returns it.
func (db *Database) CreatePodcast(episode models.Podcast) models.Podcast {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	episode.ID = nextEntityID(maxPodcastID(db.Store.Podcasts))
	if episode.PublishDate == "" {
		episode.PublishDate = nowStamp()
	}
	db.Store.Podcasts = append(db.Store.Podcasts, episode)
	log.Printf("INFO: Created Podcast ID: %d, Title: %q", episode.ID, episode.Title)

	db.requestSave()
	return episode
}

// GetPodcastByID retrieves a podcast episode by id.
func (db *Database) GetPodcastByID(id int64) (models.Podcast, bool) {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	for _, episode := range db.Store.Podcasts {
		if episode.ID == id {
			return episode, true
		}
	}
	return models.Podcast{}, false
}

// GetAllPodcasts returns a copy of the podcasts collection.
func (db *Database) GetAllPodcasts() []models.Podcast {
	db.Store.Mu.RLock()
	defer db.Store.Mu.RUnlock()

	episodes := make([]models.Podcast, len(db.Store.Podcasts))
	copy(episodes, db.Store.Podcasts)
	return episodes
}

// UpdatePodcast shallow-merges the patch over the stored episode.
func (db *Database) UpdatePodcast(id int64, patch models.PodcastPatch) (models.Podcast, error) {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	for i, episode := range db.Store.Podcasts {
		if episode.ID != id {
			continue
		}
		if patch.Title != nil {
			episode.Title = *patch.Title
		}
		if patch.Description != nil {
			episode.Description = *patch.Description
		}
		if patch.Duration != nil {
			episode.Duration = *patch.Duration
		}
		if patch.AudioURL != nil {
			episode.AudioURL = *patch.AudioURL
		}
		if patch.IsNew != nil {
			episode.IsNew = *patch.IsNew
		}
		if patch.IsActive != nil {
			episode.IsActive = *patch.IsActive
		}
		if patch.PublishDate != nil {
			episode.PublishDate = *patch.PublishDate
		}

		episodes := make([]models.Podcast, len(db.Store.Podcasts))
		copy(episodes, db.Store.Podcasts)
		episodes[i] = episode
		db.Store.Podcasts = episodes
		log.Printf("INFO: Updated Podcast ID: %d", id)

		db.requestSave()
		return episode, nil
	}
	return models.Podcast{}, fmt.Errorf("podcast with ID %d: %w", id, ErrNotFound)
}

// DeletePodcast removes a podcast episode by id.
func (db *Database) DeletePodcast(id int64) error {
	db.Store.Mu.Lock()
	defer db.Store.Mu.Unlock()

	episodes := make([]models.Podcast, 0, len(db.Store.Podcasts))
	found := false
	for _, episode := range db.Store.Podcasts {
		if episode.ID == id {
			found = true
			continue
		}
		episodes = append(episodes, episode)
	}
	if !found {
		return fmt.Errorf("podcast with ID %d: %w", id, ErrNotFound)
	}
	db.Store.Podcasts = episodes
	log.Printf("INFO: Deleted Podcast ID: %d", id)

	db.requestSave()
	return nil
}

func maxPodcastID(episodes []models.Podcast) int64 {
	var max int64
	for _, e := range episodes {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
