package models

// Patch types carry partial updates. A nil field means "leave unchanged";
// updates are shallow merges over the stored entity.

// AlbumPatch is a partial update for an Album.
type AlbumPatch struct {
	Title             *string   `json:"title"`
	Cover             *string   `json:"cover"`
	ReleaseDate       *string   `json:"releaseDate"`
	Description       *string   `json:"description"`
	Genre             *string   `json:"genre"`
	Duration          *string   `json:"duration"`
	TrackCount        *int      `json:"trackCount"`
	ProductionCredits *string   `json:"productionCredits"`
	MusicianCredits   *[]string `json:"musicianCredits"`
	LinerNotes        *string   `json:"linerNotes"`
	IsActive          *bool     `json:"isActive"`
}

// SongPatch is a partial update for a Song.
type SongPatch struct {
	Title    *string `json:"title"`
	AlbumID  *int64  `json:"albumId"`
	Duration *string `json:"duration"`
	AudioURL *string `json:"audioUrl"`
	Lyrics   *string `json:"lyrics"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// PodcastPatch is a partial update for a Podcast episode.
type PodcastPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	AudioURL    *string `json:"audioUrl"`
	IsNew       *bool   `json:"isNew"`
	IsActive    *bool   `json:"isActive"`
	PublishDate *string `json:"publishDate"`
}

// MediaPatch is a partial update for a MediaItem.
type MediaPatch struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

// ProductPatch is a partial update for a Product.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	IsLimited   *bool    `json:"isLimited"`
	IsActive    *bool    `json:"isActive"`
}

// BandProfilePatch is a partial update for the BandProfile singleton.
// Social and Sections replace the whole nested value when present.
type BandProfilePatch struct {
	Name        *string            `json:"name"`
	Tagline     *string            `json:"tagline"`
	Description *string            `json:"description"`
	Email       *string            `json:"email"`
	Social      *SocialLinks       `json:"social"`
	Sections    *SectionVisibility `json:"sections"`
}

// ThemePatch is a partial update for the Theme singleton.
type ThemePatch struct {
	PrimaryColor        *string  `json:"primaryColor"`
	SecondaryColor      *string  `json:"secondaryColor"`
	AccentColor         *string  `json:"accentColor"`
	BackgroundColor     *string  `json:"backgroundColor"`
	TextColor           *string  `json:"textColor"`
	FontFamily          *string  `json:"fontFamily"`
	HeroBackgroundMode  *string  `json:"heroBackgroundMode"`
	HeroBackgroundImage *string  `json:"heroBackgroundImage"`
	HeroOverlayOpacity  *float64 `json:"heroOverlayOpacity"`
	GradientDirection   *string  `json:"gradientDirection"`
	GradientPattern     *string  `json:"gradientPattern"`
}
