package repository

import "errors"

// ErrDuplicateKey surfaces a uniqueness violation from the store so the
// service layer can map it without importing gorm.
var ErrDuplicateKey = errors.New("duplicate key")
