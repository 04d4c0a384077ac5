package service

import "errors"

// ErrTitleRequired indicates a fragment create request without a title.
var ErrTitleRequired = errors.New("fragbase: fragment title is required")
