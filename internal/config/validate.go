package config

func ValidateForRun(cfg *Config) error {
	if cfg.ReminderStoreURL == "" {
		return ErrReminderStoreURLMissing
	}
	return cfg.Redis.Validate()
}
