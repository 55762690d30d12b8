package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientInUse    = errors.New("client has related records, cannot delete")
)
