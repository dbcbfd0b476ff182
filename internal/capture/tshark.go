package capture

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// Source runs the external capture facility as a child process bound to one
// network interface and streams its stdout line by line for the length of one
// capture window.
type Source struct {
	binary   string
	iface    string
	duration time.Duration
}

// NewSource creates a capture source for the given tshark binary, interface
// and window length.
func NewSource(binary, iface string, duration time.Duration) *Source {
	return &Source{binary: binary, iface: iface, duration: duration}
}

// Run starts the capture process and sends raw output lines to out until the
// stream ends or the window deadline expires. On expiry the child gets a
// termination request, but Run returns without waiting for it to exit: the
// window must close on time even if the process is slow to die. The out
// channel is always closed. Only a start failure is returned as an error; the
// caller degrades to an empty window.
func (s *Source) Run(ctx context.Context, out chan<- string) error {
	defer close(out)

	cmd := exec.Command(s.binary, "-i", s.iface, "-n", "-l")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open capture stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start capture process: %w", err)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	deadline := time.NewTimer(s.duration)
	defer deadline.Stop()

read:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				break read
			}
			out <- line
		case <-deadline.C:
			break read
		case <-ctx.Done():
			break read
		}
	}

	// Graceful termination request, then reap in the background. A child
	// that ignores SIGTERM is killed after a short grace period.
	_ = cmd.Process.Signal(syscall.SIGTERM)
	go func() {
		kill := time.AfterFunc(2*time.Second, func() { _ = cmd.Process.Kill() })
		defer kill.Stop()
		for range lines {
		}
		_ = cmd.Wait()
	}()

	return nil
}
