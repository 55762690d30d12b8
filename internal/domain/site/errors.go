package site

import "errors"

var (
	ErrSiteNotFound       = errors.New("site not found")
	ErrAssignmentNotFound = errors.New("site assignment not found")
	ErrAssignmentExists   = errors.New("employee already assigned to this site")
)
