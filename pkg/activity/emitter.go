package activity

import "context"

// DefaultChannel tags events that do not choose their own channel.
const DefaultChannel = "admin"

// Config switches emission on and names the default channel.
type Config struct {
	Enabled bool
	Channel string
}

// Emitter delivers events to a hook set. A nil or disabled emitter is safe
// to call and does nothing.
type Emitter struct {
	hooks  Hooks
	config Config
}

// NewEmitter builds an emitter. An empty channel falls back to
// DefaultChannel.
func NewEmitter(hooks Hooks, config Config) *Emitter {
	if config.Channel == "" {
		config.Channel = DefaultChannel
	}
	return &Emitter{hooks: hooks, config: config}
}

// Enabled reports whether emitted events can reach at least one hook.
func (e *Emitter) Enabled() bool {
	return e != nil && e.config.Enabled && len(e.hooks) > 0
}

// Emit stamps the configured channel on channel-less events and notifies the
// hooks.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if event.Channel == "" {
		event.Channel = e.config.Channel
	}
	return e.hooks.Notify(ctx, event)
}
