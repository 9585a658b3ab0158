package domain

// Settings holds the deployment-wide branding defaults. One row; loaded at
// startup, updated only by explicit admin save.
type Settings struct {
	LogoURL   *string
	BannerURL *string
}
