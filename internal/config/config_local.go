//go:build !gcloud

package config

func (c *TaskQueueConfig) Validate() error {
	if c.PrimindTasksURL == "" {
		return ErrPrimindTasksURLMissing
	}
	return nil
}
