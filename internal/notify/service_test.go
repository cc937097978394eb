package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BlackRoad-OS/command-center/internal/notify"
)

type recordingDriver struct {
	name     string
	messages []string
	err      error
}

func (d *recordingDriver) Name() string { return d.name }

func (d *recordingDriver) Send(ctx context.Context, message string) error {
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, message)
	return nil
}

func TestDispatch_UnknownChannelsIgnored(t *testing.T) {
	s := notify.NewService()

	sent := s.Dispatch(context.Background(), "hello", []string{"log", "unknown-channel"})
	assert.Equal(t, []string{"log"}, sent)
}

func TestDispatch_DefaultChannels(t *testing.T) {
	s := notify.NewService()

	sent := s.Dispatch(context.Background(), "hello", nil)
	assert.Equal(t, []string{"log"}, sent)
}

func TestDispatch_FailingDriverSkipped(t *testing.T) {
	s := notify.NewService()
	s.RegisterDriver(&recordingDriver{name: "broken", err: errors.New("down")})
	ok := &recordingDriver{name: "ok"}
	s.RegisterDriver(ok)

	sent := s.Dispatch(context.Background(), "hello", []string{"broken", "ok"})
	assert.Equal(t, []string{"ok"}, sent)
	assert.Equal(t, []string{"hello"}, ok.messages)
}
