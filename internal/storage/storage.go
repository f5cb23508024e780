package storage

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateSlug = errors.New("slug already exists")
	ErrNameTaken     = errors.New("name already exists")
)
