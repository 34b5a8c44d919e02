package model

import "time"

type Competition struct {
	ID          int32
	Name        string
	Season      string
	LogoURL     string
	Description string
	Created     time.Time
}

type Team struct {
	ID            int32
	CompetitionID int32
	Name          string
	ShortName     string
	LogoURL       string
}

// PortalConfig holds the site wide display settings for the public pages.
type PortalConfig struct {
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline"`
	LogoURL      string `yaml:"logo_url"`
	PrimaryColor string `yaml:"primary_color"`
	AccentColor  string `yaml:"accent_color"`
	FooterText   string `yaml:"footer_text"`
}

func DefaultPortalConfig() PortalConfig {
	return PortalConfig{
		Title:        "Futbalito",
		Tagline:      "Live scores, commentary and news",
		PrimaryColor: "#0b6e4f",
		AccentColor:  "#f2c14e",
		FooterText:   "Futbalito",
	}
}
