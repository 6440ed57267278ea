package config

import "errors"

var (
	ErrRedisAddrMissing        = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB          = errors.New("REDIS_DB must be a valid integer")
	ErrReminderStoreURLMissing = errors.New("REMINDER_STORE_URL environment variable is required")
	ErrPrimindTasksURLMissing  = errors.New("PRIMIND_TASKS_URL is required")
)
