package handleindex

import "errors"

var (
	ErrInvalidItemData = errors.New("invalid scheduled item data")
	ErrMissingReminder = errors.New("scheduled item has no reminder id")
)
