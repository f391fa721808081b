// Package profile implements the profile singleton: the page owner's
// displayed identity, stored as a single JSON document with merge-on-update
// semantics.
package profile

type Profile struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Bio         string            `json:"bio"`
	Email       string            `json:"email"`
	Avatar      string            `json:"avatar,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	SocialLinks map[string]string `json:"socialLinks"`
}

// Default is the profile served (and materialized at bootstrap) before the
// owner has saved anything.
func Default() Profile {
	return Profile{
		Name:        "Your Name",
		Description: "A brief description about yourself",
		Bio:         "A longer bio that tells more about you",
		Email:       "your.email@example.com",
		SocialLinks: map[string]string{
			"twitter":   "https://twitter.com/yourusername",
			"instagram": "https://instagram.com/yourusername",
			"linkedin":  "https://linkedin.com/in/yourusername",
		},
	}
}

// UpdateParams is a shallow key-wise override: nil fields keep the stored
// value, a non-nil SocialLinks replaces the stored map wholesale (no
// per-platform merging).
type UpdateParams struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Bio         *string           `json:"bio"`
	Email       *string           `json:"email"`
	Avatar      *string           `json:"avatar"`
	ImageURL    *string           `json:"imageUrl"`
	SocialLinks map[string]string `json:"socialLinks"`
}
