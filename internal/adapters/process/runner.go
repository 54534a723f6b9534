// Package process launches resource compiler processes.
package process

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CompilerProcess by executing the compiler binary.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Args returns the compiler command line for job, without the executable.
func Args(job domain.CompileJob) []string {
	args := []string{domain.CompilerCompileFlag, job.CompilerArgs}
	if job.ForPackaging {
		args = append(args, domain.CompilerPackageFlag)
	}
	if job.DestinationFile != "" {
		args = append(args, domain.CompilerOutputFlag, job.DestinationFile)
	}
	return args
}

// Submit starts the compiler for job. The compiler runs inside a pseudo-terminal so
// that its interleaved stdout and stderr are captured in order; when no terminal is
// available it falls back to a shared pipe.
func (r *Runner) Submit(job domain.CompileJob) (ports.ProcessHandle, error) {
	h := &handle{done: make(chan struct{})}

	cmd := exec.Command(job.Executable, Args(job)...) //nolint:gosec // configured compiler executable
	ptmx, err := pty.Start(cmd)
	if err == nil {
		go h.run(cmd, func() { _, _ = io.Copy(&h.output, ptmx) }, func() { _ = ptmx.Close() })
		return h, nil
	}

	r.logger.Debug("pseudo-terminal unavailable, using pipes", "error", err.Error())

	cmd = exec.Command(job.Executable, Args(job)...) //nolint:gosec // configured compiler executable
	cmd.Stdout = &h.output
	cmd.Stderr = &h.output
	if startErr := cmd.Start(); startErr != nil {
		err := zerr.Wrap(startErr, domain.ErrProcessStartFailed.Error())
		err = zerr.With(err, "executable", job.Executable)
		return nil, zerr.With(err, "resource", job.ResourceID.String())
	}
	go h.run(cmd, nil, nil)
	return h, nil
}

// syncBuffer is a bytes.Buffer safe for one writer and later readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type handle struct {
	output syncBuffer
	result domain.CompileResult
	done   chan struct{}
}

func (h *handle) run(cmd *exec.Cmd, copyOutput, closeOutput func()) {
	defer close(h.done)

	ioDone := make(chan struct{})
	if copyOutput != nil {
		go func() {
			defer close(ioDone)
			copyOutput()
		}()
	} else {
		close(ioDone)
	}

	err := cmd.Wait()
	if closeOutput != nil {
		// Reads from the pty master fail with EIO once the child exits, ending the copy.
		<-ioDone
		closeOutput()
	}

	h.result = domain.CompileResult{
		Succeeded: err == nil,
		ExitCode:  exitCode(err),
		Output:    normalizeOutput(h.output.String()),
	}
}

// Poll reports whether the process exited.
func (h *handle) Poll() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Collect returns the result. It blocks until the process exits.
func (h *handle) Collect() domain.CompileResult {
	<-h.done
	return h.result
}

// Wait blocks until the process exits.
func (h *handle) Wait() {
	<-h.done
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// normalizeOutput strips the carriage returns a pseudo-terminal adds and the trailing newline.
func normalizeOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}
