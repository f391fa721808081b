package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the one-way hash used for stored credentials. Verify must
// be resistant to timing attacks.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptHasher hashes with bcrypt at the given cost (bcrypt.DefaultCost when
// zero). The salt is embedded in the produced hash.
type BcryptHasher struct {
	Cost int
}

func (b *BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
