// Package notify fans a message out to named channels.
//
// Channels are pluggable ChannelDriver implementations registered by
// name. The gateway ships with the log channel; unrecognized channel
// names are skipped silently so callers can list channels best-effort
// without validation errors.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultChannels is used when a request names no channels.
var DefaultChannels = []string{"log"}

// ChannelDriver performs the side effect for one channel kind.
type ChannelDriver interface {
	// Name is the channel name callers use to address this driver.
	Name() string

	// Send delivers the message through the channel.
	Send(ctx context.Context, message string) error
}

// Service dispatches messages to registered channel drivers.
type Service struct {
	mu      sync.RWMutex
	drivers map[string]ChannelDriver
}

// NewService creates a notify service with the built-in log driver.
func NewService() *Service {
	s := &Service{drivers: make(map[string]ChannelDriver)}
	s.RegisterDriver(&LogDriver{})
	return s
}

// RegisterDriver adds or replaces a channel driver.
func (s *Service) RegisterDriver(driver ChannelDriver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[driver.Name()] = driver
}

// Dispatch sends message to each recognized channel and returns the
// names of the channels that accepted it. Unknown names are ignored;
// a driver failure skips that channel without failing the fan-out.
func (s *Service) Dispatch(ctx context.Context, message string, channels []string) []string {
	if len(channels) == 0 {
		channels = DefaultChannels
	}

	sent := []string{}
	for _, name := range channels {
		s.mu.RLock()
		driver, ok := s.drivers[name]
		s.mu.RUnlock()
		if !ok {
			continue
		}
		if err := driver.Send(ctx, message); err != nil {
			log.Warn().Err(err).Str("channel", name).Msg("Notification channel failed")
			continue
		}
		sent = append(sent, name)
	}
	return sent
}

// LogDriver writes notifications to the process log.
type LogDriver struct{}

func (d *LogDriver) Name() string { return "log" }

func (d *LogDriver) Send(ctx context.Context, message string) error {
	log.Info().Str("channel", "log").Msg(message)
	return nil
}
