package models

import "time"

// SiteSettings is the singleton admin-editable site configuration
// document. It is stored under a fixed key.
type SiteSettings struct {
	Key          string    `json:"-" bson:"key"`
	SiteTitle    string    `json:"siteTitle" bson:"siteTitle"`
	BannerText   string    `json:"bannerText" bson:"bannerText"`
	BannerURL    string    `json:"bannerUrl" bson:"bannerUrl"`
	ContactEmail string    `json:"contactEmail" bson:"contactEmail"`
	ContactPhone string    `json:"contactPhone" bson:"contactPhone"`
	FooterNotice string    `json:"footerNotice" bson:"footerNotice"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SiteSettingsKey is the fixed document key for SiteSettings.
const SiteSettingsKey = "site"
