package platform

import (
	"fmt"
	"sync"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
)

// ChannelRegistry holds the channels set up with SetChannel. Task payloads
// carry the presentation of their channel so the push sender needs no
// channel state of its own.
type ChannelRegistry struct {
	mu       sync.RWMutex
	channels map[domain.ChannelID]domain.Channel
}

func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{
		channels: make(map[domain.ChannelID]domain.Channel),
	}
}

func (r *ChannelRegistry) Set(channel domain.Channel) error {
	if channel.ID == "" {
		return fmt.Errorf("channel id must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels[channel.ID] = channel
	return nil
}

func (r *ChannelRegistry) Get(id domain.ChannelID) (domain.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channel, ok := r.channels[id]
	if !ok {
		return domain.Channel{}, fmt.Errorf("%w: %s", domain.ErrChannelNotRegistered, id)
	}
	return channel, nil
}
