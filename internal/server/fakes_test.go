package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"sync"

	"github.com/charmbracelet/ssh"
)

type fakeContext struct {
	context.Context
	mu     sync.Mutex
	values map[any]any
	remote net.Addr
}

func newFakeContext(ctx context.Context, remote net.Addr) *fakeContext {
	return &fakeContext{Context: ctx, values: map[any]any{}, remote: remote}
}

func (f *fakeContext) Lock()                         { f.mu.Lock() }
func (f *fakeContext) Unlock()                       { f.mu.Unlock() }
func (f *fakeContext) User() string                  { return "guest" }
func (f *fakeContext) SessionID() string             { return "session-test" }
func (f *fakeContext) ClientVersion() string         { return "SSH-2.0-test" }
func (f *fakeContext) ServerVersion() string         { return "SSH-2.0-portfolio" }
func (f *fakeContext) RemoteAddr() net.Addr          { return f.remote }
func (f *fakeContext) LocalAddr() net.Addr           { return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 2222} }
func (f *fakeContext) Permissions() *ssh.Permissions { return &ssh.Permissions{} }
func (f *fakeContext) SetValue(key, value interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}
func (f *fakeContext) Value(key interface{}) interface{} {
	f.mu.Lock()
	v, ok := f.values[key]
	f.mu.Unlock()
	if ok {
		return v
	}
	return f.Context.Value(key)
}

type fakeSession struct {
	ctx      *fakeContext
	user     string
	remote   net.Addr
	pty      ssh.Pty
	hasPTY   bool
	mu       sync.Mutex
	writes   []string
	exitCode *int
}

func newFakeSession(ctx context.Context, ip string) *fakeSession {
	var remote net.Addr
	if ip != "" {
		remote = &net.TCPAddr{IP: net.ParseIP(ip), Port: 50022}
	}
	return &fakeSession{
		ctx:    newFakeContext(ctx, remote),
		user:   "guest",
		remote: remote,
		pty:    ssh.Pty{Term: "xterm-256color", Window: ssh.Window{Width: 120, Height: 40}},
		hasPTY: true,
	}
}

func (f *fakeSession) Read([]byte) (int, error) { return 0, io.EOF }
func (f *fakeSession) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, string(p))
	return len(p), nil
}
func (f *fakeSession) Close() error                                   { return nil }
func (f *fakeSession) CloseWrite() error                              { return nil }
func (f *fakeSession) SendRequest(string, bool, []byte) (bool, error) { return false, nil }
func (f *fakeSession) Stderr() io.ReadWriter                          { return &bytes.Buffer{} }
func (f *fakeSession) User() string                                   { return f.user }
func (f *fakeSession) RemoteAddr() net.Addr                           { return f.remote }
func (f *fakeSession) LocalAddr() net.Addr                            { return f.ctx.LocalAddr() }
func (f *fakeSession) Environ() []string                              { return nil }
func (f *fakeSession) Exit(code int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exitCode = &code
	return nil
}
func (f *fakeSession) Command() []string            { return nil }
func (f *fakeSession) RawCommand() string           { return "" }
func (f *fakeSession) Subsystem() string            { return "" }
func (f *fakeSession) PublicKey() ssh.PublicKey     { return nil }
func (f *fakeSession) Context() ssh.Context         { return f.ctx }
func (f *fakeSession) Permissions() ssh.Permissions { return ssh.Permissions{} }
func (f *fakeSession) EmulatedPty() bool            { return false }
func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return f.pty, nil, f.hasPTY
}
func (f *fakeSession) Signals(chan<- ssh.Signal) {}
func (f *fakeSession) Break(chan<- bool)         {}

func (f *fakeSession) written() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func (f *fakeSession) recordedExitCode() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.exitCode == nil {
		return 0, false
	}
	return *f.exitCode, true
}
