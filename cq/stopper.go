package cq

import "sync"

// stopper handles a done channel for internal coordination. The zero
// value is ready to use.
type stopper struct {
	done  chan struct{}
	start sync.Once
	stop  func()
}

func (s *stopper) init() {
	s.start.Do(func() {
		s.done = make(chan struct{})
		s.stop = sync.OnceFunc(func() { close(s.done) })
	})
}

// Stop closes the Done channel. It is safe to call more than once.
func (s *stopper) Stop() {
	s.init()
	s.stop()
}

// Done returns a channel that is closed when Stop is called.
func (s *stopper) Done() <-chan struct{} {
	s.init()
	return s.done
}
