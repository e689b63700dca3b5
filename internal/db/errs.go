package db

import "errors"

var (
	// database errs.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStoreNotOpen       = errors.New("store is not open")
	ErrDriverUnknown      = errors.New("unknown database driver")
)

var (
	// records errs.
	ErrRecordNotFound = errors.New("no record found")
	ErrRecordScan     = errors.New("scan record")
	ErrRecordInsert   = errors.New("inserting record")
	ErrCommit         = errors.New("commit error")
)
