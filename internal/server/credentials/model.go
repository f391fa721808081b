// Package credentials implements the administrative credential: a single
// username/password-hash record, independent of the user collection, that
// gates the admin surface. Rotation requires proof of the current password.
package credentials

type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// DefaultUsername and DefaultPassword seed the credential file on first
// start. The password is stored hashed; change it right after deployment.
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)
