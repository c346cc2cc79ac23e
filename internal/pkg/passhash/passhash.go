package passhash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used unless overridden by config.
const DefaultCost = 10

// ErrInvalidHash marks a stored hash that bcrypt cannot parse. A merely
// wrong password is not an error.
var ErrInvalidHash = errors.New("malformed password hash")

type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted one-way hash. bcrypt generates a fresh random
// salt per call, so hashing the same input twice yields different output.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. The comparison is
// constant-time inside bcrypt.
func (h *Hasher) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
}
