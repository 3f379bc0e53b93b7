package e2etests_cli

import "sync"

// syncBuffer lets stdout and stderr be read while the command writes to them.
type syncBuffer struct {
	msg string
	m   sync.Mutex
}

func (e *syncBuffer) Write(p []byte) (n int, err error) {
	e.m.Lock()
	defer e.m.Unlock()
	e.msg += string(p)
	return len(p), nil
}

func (e *syncBuffer) Read() string {
	e.m.Lock()
	defer e.m.Unlock()
	return e.msg
}
