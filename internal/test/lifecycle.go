package test

import "go.uber.org/fx"

// LifecycleRecorder collects hooks registered by the backend's lifecycle
// wiring so tests can invoke start and stop directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without scheduling it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when the server requests termination,
// such as after a listen failure.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown performs a non-blocking send so repeated calls cannot hang.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
