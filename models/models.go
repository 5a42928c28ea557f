package models

import "sync"

// Entity status values.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
	CommentRejected = "rejected"

	UploadUploading = "uploading"
	UploadCompleted = "completed"

	MediaImage = "image"
	MediaVideo = "video"
)

// Album is one release in the band's catalog. Songs reference it via AlbumID.
type Album struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Cover             string   `json:"cover"`
	ReleaseDate       string   `json:"releaseDate"`
	Description       string   `json:"description"`
	Genre             string   `json:"genre"`
	Duration          string   `json:"duration"`
	TrackCount        int      `json:"trackCount"`
	ProductionCredits string   `json:"productionCredits"`
	MusicianCredits   []string `json:"musicianCredits"`
	LinerNotes        string   `json:"linerNotes"`
	IsActive          bool     `json:"isActive"`
	CreatedAt         string   `json:"createdAt"` // RFC3339
}

// Song belongs to an album via AlbumID. The reference is not validated on
// create/update; deleting an album removes its songs (the only cascade).
type Song struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	AlbumID   int64  `json:"albumId"`
	Duration  string `json:"duration"`
	AudioURL  string `json:"audioUrl"`
	Lyrics    string `json:"lyrics"`
	Notes     string `json:"notes"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// Podcast is one episode in the podcast section.
type Podcast struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	AudioURL    string `json:"audioUrl"`
	IsNew       bool   `json:"isNew"`
	IsActive    bool   `json:"isActive"`
	PublishDate string `json:"publishDate"`
}

// MediaItem is one entry in the photo/video gallery.
type MediaItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"` // "image" or "video"
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

// Product is one merch store item.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	IsLimited   bool    `json:"isLimited"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
}

// Upload tracks a file upload. Status moves uploading -> completed; the
// client re-puts the same ID to report progress, so writes are upserts.
type Upload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	URL        string `json:"url"`
	Status     string `json:"status"` // "uploading" or "completed"
	UploadDate string `json:"uploadDate"`
}

// Comment is one fan wall entry. Moderation moves Status between pending,
// approved and rejected; every transition is allowed.
type Comment struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Liked     bool   `json:"liked"`
	Status    string `json:"status"`
}

// SocialLinks holds the band's public social profiles.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
	Spotify   string `json:"spotify"`
	TikTok    string `json:"tiktok"`
}

// SectionVisibility toggles which public site sections are shown.
type SectionVisibility struct {
	Music   bool `json:"music"`
	Media   bool `json:"media"`
	Podcast bool `json:"podcast"`
	FanWall bool `json:"fanWall"`
	Store   bool `json:"store"`
}

// BandProfile is the singleton describing the act itself.
type BandProfile struct {
	Name        string            `json:"name"`
	Tagline     string            `json:"tagline"`
	Description string            `json:"description"`
	Email       string            `json:"email"`
	Social      SocialLinks       `json:"social"`
	Sections    SectionVisibility `json:"sections"`
}

// Theme is the singleton consumed by the rendering layer as CSS variables.
type Theme struct {
	PrimaryColor        string  `json:"primaryColor"`
	SecondaryColor      string  `json:"secondaryColor"`
	AccentColor         string  `json:"accentColor"`
	BackgroundColor     string  `json:"backgroundColor"`
	TextColor           string  `json:"textColor"`
	FontFamily          string  `json:"fontFamily"`
	HeroBackgroundMode  string  `json:"heroBackgroundMode"` // "image" or "gradient"
	HeroBackgroundImage string  `json:"heroBackgroundImage"`
	HeroOverlayOpacity  float64 `json:"heroOverlayOpacity"`
	GradientDirection   string  `json:"gradientDirection"`
	GradientPattern     string  `json:"gradientPattern"`
}

// FooterLink is one navigation entry in the footer.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterSettings is the footer configuration singleton.
type FooterSettings struct {
	Description     string       `json:"description"`
	Copyright       string       `json:"copyright"`
	ShowSocialLinks bool         `json:"showSocialLinks"`
	Links           []FooterLink `json:"links"`
}

// SeoSettings is the SEO configuration singleton.
type SeoSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OgImage     string `json:"ogImage"`
}

// ShippingConfig holds merch shipping rates.
type ShippingConfig struct {
	FlatRate             float64 `json:"flatRate"`
	FreeThreshold        float64 `json:"freeThreshold"`
	InternationalRate    float64 `json:"internationalRate"`
	InternationalEnabled bool    `json:"internationalEnabled"`
}

// StripeConfig holds payment keys. These are stored configuration values
// only; no payment calls are made by this server.
type StripeConfig struct {
	PublishableKey string `json:"publishableKey"`
	SecretKey      string `json:"secretKey"`
	WebhookSecret  string `json:"webhookSecret"`
	Enabled        bool   `json:"enabled"`
}

// TaxConfig holds tax rates applied at checkout by the storefront.
type TaxConfig struct {
	Rate     float64 `json:"rate"`
	Included bool    `json:"included"`
}

// EmailConfig holds SMTP settings used by the storefront mailer.
type EmailConfig struct {
	SMTPHost     string `json:"smtpHost"`
	SMTPPort     int    `json:"smtpPort"`
	SMTPUser     string `json:"smtpUser"`
	SMTPPassword string `json:"smtpPassword"`
	FromAddress  string `json:"fromAddress"`
}

// SecurityConfig holds admin security toggles.
type SecurityConfig struct {
	MaintenanceMode   bool `json:"maintenanceMode"`
	RequireModeration bool `json:"requireModeration"`
}

// InventoryConfig holds stock handling policy.
type InventoryConfig struct {
	TrackStock        bool `json:"trackStock"`
	AllowBackorders   bool `json:"allowBackorders"`
	LowStockThreshold int  `json:"lowStockThreshold"`
}

// SystemConfig is the system configuration singleton (shipping, payments,
// tax, email, security, inventory).
type SystemConfig struct {
	Shipping  ShippingConfig  `json:"shipping"`
	Stripe    StripeConfig    `json:"stripe"`
	Tax       TaxConfig       `json:"tax"`
	Email     EmailConfig     `json:"email"`
	Security  SecurityConfig  `json:"security"`
	Inventory InventoryConfig `json:"inventory"`
}

// AdminAccount is the singleton admin identity. The bcrypt hash is part of
// the persisted state so password changes survive restarts.
type AdminAccount struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Store is the root object: every collection and settings singleton,
// serialized wholesale to a single JSON file.
type Store struct {
	Band          BandProfile                  `json:"band"`
	Theme         Theme                        `json:"theme"`
	ThemeRevision int64                        `json:"themeRevision"`
	Footer        FooterSettings               `json:"footer"`
	Seo           SeoSettings                  `json:"seo"`
	System        SystemConfig                 `json:"system"`
	Translations  map[string]map[string]string `json:"translations"`
	Admin         AdminAccount                 `json:"admin"`

	Albums   []Album     `json:"albums"`
	Songs    []Song      `json:"songs"`
	Podcasts []Podcast   `json:"podcasts"`
	Media    []MediaItem `json:"media"`
	Products []Product   `json:"products"`
	Uploads  []Upload    `json:"uploads"`
	Comments []Comment   `json:"comments"`

	// Mutex for thread-safe access to all fields above.
	Mu sync.RWMutex `json:"-"`
}
