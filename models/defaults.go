package models

// baseEnglish is the built-in English string table. English is the fallback
// language and is never editable; DefaultTranslations always re-emits it.
var baseEnglish = map[string]string{
	"nav.home":         "Home",
	"nav.music":        "Music",
	"nav.media":        "Media",
	"nav.podcast":      "Podcast",
	"nav.fanwall":      "Fan Wall",
	"nav.store":        "Store",
	"hero.listen":      "Listen Now",
	"music.tracks":     "Tracks",
	"music.lyrics":     "Lyrics",
	"podcast.new":      "New Episode",
	"fanwall.title":    "Fan Wall",
	"fanwall.leave":    "Leave a message",
	"fanwall.pending":  "Your message is awaiting moderation",
	"store.addToCart":  "Add to Cart",
	"store.soldOut":    "Sold Out",
	"store.limited":    "Limited Edition",
	"footer.contact":   "Contact",
	"footer.followUs":  "Follow Us",
	"common.loading":   "Loading...",
	"common.seeMore":   "See More",
}

var baseItalian = map[string]string{
	"nav.home":         "Home",
	"nav.music":        "Musica",
	"nav.media":        "Media",
	"nav.podcast":      "Podcast",
	"nav.fanwall":      "Bacheca Fan",
	"nav.store":        "Negozio",
	"hero.listen":      "Ascolta Ora",
	"music.tracks":     "Brani",
	"music.lyrics":     "Testi",
	"podcast.new":      "Nuovo Episodio",
	"fanwall.title":    "Bacheca Fan",
	"fanwall.leave":    "Lascia un messaggio",
	"fanwall.pending":  "Il tuo messaggio è in attesa di moderazione",
	"store.addToCart":  "Aggiungi al Carrello",
	"store.soldOut":    "Esaurito",
	"store.limited":    "Edizione Limitata",
	"footer.contact":   "Contatti",
	"footer.followUs":  "Seguici",
	"common.loading":   "Caricamento...",
	"common.seeMore":   "Vedi Altro",
}

// EnglishBase returns a fresh copy of the built-in English string table.
func EnglishBase() map[string]string {
	out := make(map[string]string, len(baseEnglish))
	for k, v := range baseEnglish {
		out[k] = v
	}
	return out
}

// DefaultTranslations returns the built-in language tables (English base plus
// the editable Italian table).
func DefaultTranslations() map[string]map[string]string {
	it := make(map[string]string, len(baseItalian))
	for k, v := range baseItalian {
		it[k] = v
	}
	return map[string]map[string]string{
		"en": EnglishBase(),
		"it": it,
	}
}

// DefaultStore returns the hard-coded initial state: populated settings
// singletons and empty collections. Hydration overlays persisted values on
// top of this.
func DefaultStore() Store {
	return Store{
		Band: BandProfile{
			Name:        "Aurora Nera",
			Tagline:     "Dark melodies, bright nights",
			Description: "Aurora Nera is an independent act blending electronic textures with live instrumentation.",
			Email:       "contact@auroranera.example",
			Social: SocialLinks{
				Instagram: "https://instagram.com/auroranera",
				Facebook:  "https://facebook.com/auroranera",
				YouTube:   "https://youtube.com/@auroranera",
				Spotify:   "https://open.spotify.com/artist/auroranera",
				TikTok:    "https://tiktok.com/@auroranera",
			},
			Sections: SectionVisibility{
				Music:   true,
				Media:   true,
				Podcast: true,
				FanWall: true,
				Store:   true,
			},
		},
		Theme: Theme{
			PrimaryColor:        "#7c3aed",
			SecondaryColor:      "#0ea5e9",
			AccentColor:         "#f59e0b",
			BackgroundColor:     "#0b0b0f",
			TextColor:           "#f5f5f5",
			FontFamily:          "Inter",
			HeroBackgroundMode:  "gradient",
			HeroBackgroundImage: "",
			HeroOverlayOpacity:  0.55,
			GradientDirection:   "135deg",
			GradientPattern:     "aurora",
		},
		Footer: FooterSettings{
			Description:     "Official site of Aurora Nera.",
			Copyright:       "© Aurora Nera. All rights reserved.",
			ShowSocialLinks: true,
			Links: []FooterLink{
				{Label: "Privacy", URL: "/privacy"},
				{Label: "Press Kit", URL: "/press"},
			},
		},
		Seo: SeoSettings{
			Title:       "Aurora Nera — Official Site",
			Description: "Music, podcast, media and merch from Aurora Nera.",
			Keywords:    "aurora nera, music, band, podcast, merch",
			OgImage:     "/images/og-cover.jpg",
		},
		System: SystemConfig{
			Shipping: ShippingConfig{
				FlatRate:             6.9,
				FreeThreshold:        60,
				InternationalRate:    14.5,
				InternationalEnabled: true,
			},
			Stripe: StripeConfig{Enabled: false},
			Tax:    TaxConfig{Rate: 22, Included: true},
			Email: EmailConfig{
				SMTPPort:    587,
				FromAddress: "noreply@auroranera.example",
			},
			Security: SecurityConfig{RequireModeration: true},
			Inventory: InventoryConfig{
				TrackStock:        true,
				AllowBackorders:   false,
				LowStockThreshold: 5,
			},
		},
		Translations: DefaultTranslations(),
		Admin: AdminAccount{
			Username: "admin",
			Email:    "admin@auroranera.example",
			// PasswordHash is filled in on first load from the configured
			// initial password.
		},

		Albums:   []Album{},
		Songs:    []Song{},
		Podcasts: []Podcast{},
		Media:    []MediaItem{},
		Products: []Product{},
		Uploads:  []Upload{},
		Comments: []Comment{},
	}
}
