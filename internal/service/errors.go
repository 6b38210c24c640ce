package service

import "errors"

var (
	ErrNotFound        = errors.New("task not found")
	ErrStoreNil        = errors.New("task store is nil")
	ErrSessionStoreNil = errors.New("session store is nil")
)
