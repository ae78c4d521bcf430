package studio

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:embed bridge.js
var bridgeScript string

const (
	maxFrameSize = 1 << 20
	// drainTimeout bounds how long an exited bridge's channel is read for
	// trailing frames; grandchildren may keep the descriptor open.
	drainTimeout = 2 * time.Second
)

// NodeStarter runs the studio server in a node process through the embedded
// bridge script. The node process runs in the project root so that
// @remotion/studio-server resolves from the project's node_modules.
// The bridge channel uses an inherited descriptor, which needs a Unix-like OS.
type NodeStarter struct {
	binary string
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewNodeStarter creates a starter using the given node executable.
func NewNodeStarter(binary string, logger *zap.Logger) *NodeStarter {
	if binary == "" {
		binary = "node"
	}
	return &NodeStarter{
		binary: binary,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
	}
}

// SetOutput redirects the studio server's own output.
func (n *NodeStarter) SetOutput(stdout, stderr io.Writer) {
	n.stdout = stdout
	n.stderr = stderr
}

// Start launches node, sends the configuration and waits until the studio
// server reports that it is up, fails, exits, or ctx is done.
func (n *NodeStarter) Start(ctx context.Context, cfg *StartupConfiguration, queue Queue) (Instance, error) {
	channelR, channelW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create bridge channel: %w", err)
	}

	cmd := exec.Command(n.binary, "-e", bridgeScript)
	cmd.Dir = cfg.RemotionRoot
	cmd.Stdout = n.stdout
	cmd.Stderr = n.stderr
	cmd.ExtraFiles = []*os.File{channelW}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		channelR.Close()
		channelW.Close()
		return nil, fmt.Errorf("failed to open bridge stdin: %w", err)
	}

	if err := cmd.Start(); err != nil {
		channelR.Close()
		channelW.Close()
		return nil, fmt.Errorf("failed to launch %s: %w", n.binary, err)
	}
	// The child owns its copy of the write end now.
	channelW.Close()

	n.logger.Debug("Studio bridge launched", zap.Int("pid", cmd.Process.Pid), zap.String("node", n.binary))

	inst := newNodeInstance(cmd, stdin, n.logger)
	go inst.serve(channelR, queue)
	go inst.wait()

	if err := inst.send(message{Type: msgStart, Config: cfg}); err != nil {
		inst.kill()
		<-inst.done
		return nil, fmt.Errorf("failed to send configuration to studio bridge: %w", err)
	}

	select {
	case port := <-inst.started:
		inst.port = port
		return inst, nil
	case err := <-inst.failed:
		inst.kill()
		<-inst.done
		return nil, err
	case <-inst.done:
		select {
		case err := <-inst.failed:
			return nil, err
		default:
		}
		return nil, fmt.Errorf("studio process exited before startup: %w", inst.exitErr())
	case <-ctx.Done():
		inst.kill()
		<-inst.done
		return nil, ctx.Err()
	}
}

type nodeInstance struct {
	cmd    *exec.Cmd
	logger *zap.Logger

	mu    sync.Mutex
	stdin io.WriteCloser
	enc   *json.Encoder

	ctx    context.Context
	cancel context.CancelFunc

	started chan int
	failed  chan error
	drained chan struct{}
	done    chan struct{}

	port    int
	waitErr error
}

func newNodeInstance(cmd *exec.Cmd, stdin io.WriteCloser, logger *zap.Logger) *nodeInstance {
	ctx, cancel := context.WithCancel(context.Background())
	return &nodeInstance{
		cmd:     cmd,
		logger:  logger,
		stdin:   stdin,
		enc:     json.NewEncoder(stdin),
		ctx:     ctx,
		cancel:  cancel,
		started: make(chan int, 1),
		failed:  make(chan error, 1),
		drained: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (i *nodeInstance) Port() int {
	return i.port
}

func (i *nodeInstance) Wait() error {
	<-i.done
	return i.waitErr
}

func (i *nodeInstance) Stop(ctx context.Context) error {
	i.cancel()

	// Closing stdin makes the bridge exit on its own.
	i.mu.Lock()
	i.stdin.Close()
	i.mu.Unlock()

	if err := i.interrupt(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		i.kill()
	}

	select {
	case <-i.done:
		return nil
	case <-ctx.Done():
		i.kill()
		<-i.done
		return ctx.Err()
	}
}

func (i *nodeInstance) send(msg message) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.enc.Encode(msg)
}

func (i *nodeInstance) serve(r *os.File, queue Queue) {
	defer close(i.drained)
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	for scanner.Scan() {
		var msg message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			i.logger.Warn("Ignoring malformed bridge frame", zap.Error(err))
			continue
		}

		switch msg.Type {
		case msgStarted:
			select {
			case i.started <- msg.Port:
			default:
			}
		case msgFailed:
			if msg.Stack != "" {
				i.logger.Debug("Studio server stack trace", zap.String("stack", msg.Stack))
			}
			select {
			case i.failed <- fmt.Errorf("studio server failed to start: %s", msg.Error):
			default:
			}
		case msgCall:
			go i.reply(queue, msg)
		default:
			i.logger.Warn("Unknown bridge frame", zap.String("type", msg.Type))
		}
	}
	if err := scanner.Err(); err != nil {
		i.logger.Warn("Bridge channel read failed", zap.Error(err))
	}
}

func (i *nodeInstance) reply(queue Queue, call message) {
	i.logger.Debug("Studio queue call", zap.String("method", call.Method), zap.Int64("id", call.ID))
	if err := i.send(dispatch(i.ctx, queue, call)); err != nil {
		i.logger.Warn("Failed to answer bridge call", zap.String("method", call.Method), zap.Error(err))
	}
}

func (i *nodeInstance) wait() {
	err := i.cmd.Wait()
	select {
	case <-i.drained:
	case <-time.After(drainTimeout):
	}
	i.waitErr = err
	i.cancel()
	close(i.done)
}

func (i *nodeInstance) exitErr() error {
	if i.waitErr != nil {
		return i.waitErr
	}
	return errors.New("exit status 0")
}

func (i *nodeInstance) interrupt() error {
	if runtime.GOOS == "windows" {
		return i.cmd.Process.Kill()
	}
	return i.cmd.Process.Signal(os.Interrupt)
}

func (i *nodeInstance) kill() {
	if err := i.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		i.logger.Warn("Failed to kill studio process", zap.Error(err))
	}
}
