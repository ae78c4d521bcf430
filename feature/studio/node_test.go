package studio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeNode writes a shell script standing in for node. It ignores the bridge
// source and speaks the frame protocol directly.
func fakeNode(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("bridge channel needs a Unix-like OS")
	}
	path := filepath.Join(t.TempDir(), "node")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func newTestStarter(binary string) *NodeStarter {
	n := NewNodeStarter(binary, zap.NewNop())
	n.SetOutput(io.Discard, io.Discard)
	return n
}

func testConfig(t *testing.T) *StartupConfiguration {
	cfg := DefaultConfiguration()
	cfg.RemotionRoot = t.TempDir()
	return &cfg
}

func TestNodeStarter_Started(t *testing.T) {
	bin := fakeNode(t, `read -r start
echo '{"type":"started","port":3123}' >&3
exec sleep 30`)

	inst, err := newTestStarter(bin).Start(context.Background(), testConfig(t), NoopQueue{})
	require.NoError(t, err)
	assert.Equal(t, 3123, inst.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, inst.Stop(ctx))
	assert.Error(t, inst.Wait())
}

func TestNodeStarter_ReceivesConfiguration(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "start.json")
	bin := fakeNode(t, `read -r start
printf '%s' "$start" > '`+dump+`'
echo '{"type":"started"}' >&3
exec sleep 30`)

	cfg := testConfig(t)
	port := 4100
	cfg.DesiredPort = &port

	inst, err := newTestStarter(bin).Start(context.Background(), cfg, NoopQueue{})
	require.NoError(t, err)
	defer inst.Stop(context.Background())

	assert.Equal(t, AutoPort, inst.Port())

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"start"`)
	assert.Contains(t, string(data), `"desiredPort":4100`)
	assert.Contains(t, string(data), `"codec":"h264"`)
}

func TestNodeStarter_Failed(t *testing.T) {
	bin := fakeNode(t, `read -r start
echo '{"type":"failed","error":"Port 3000 is already in use"}' >&3
exit 1`)

	inst, err := newTestStarter(bin).Start(context.Background(), testConfig(t), NoopQueue{})
	assert.Nil(t, inst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port 3000 is already in use")
}

func TestNodeStarter_ExitBeforeStart(t *testing.T) {
	bin := fakeNode(t, `read -r start
exit 3`)

	inst, err := newTestStarter(bin).Start(context.Background(), testConfig(t), NoopQueue{})
	assert.Nil(t, inst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited before startup")
}

func TestNodeStarter_MissingBinary(t *testing.T) {
	starter := newTestStarter(filepath.Join(t.TempDir(), "no-such-node"))
	inst, err := starter.Start(context.Background(), testConfig(t), NoopQueue{})
	assert.Nil(t, inst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to launch")
}

func TestNodeStarter_ContextCanceled(t *testing.T) {
	bin := fakeNode(t, `read -r start
exec sleep 30`)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	inst, err := newTestStarter(bin).Start(ctx, testConfig(t), NoopQueue{})
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNodeStarter_ProxiesQueueCalls(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "reply.json")
	bin := fakeNode(t, `read -r start
echo '{"type":"call","id":1,"method":"addJob","params":{"compositionId":"Intro"}}' >&3
read -r reply
printf '%s' "$reply" > '`+dump+`'
echo '{"type":"started","port":3001}' >&3
exec sleep 30`)

	queue := &recordingQueue{}
	inst, err := newTestStarter(bin).Start(context.Background(), testConfig(t), queue)
	require.NoError(t, err)
	defer inst.Stop(context.Background())

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	reply := string(data)
	assert.True(t, strings.Contains(reply, `"type":"reply"`), reply)
	assert.Contains(t, reply, `"id":1`)
	assert.Contains(t, reply, `"result":{"id":"job-1"}`)

	queue.mu.Lock()
	defer queue.mu.Unlock()
	require.Len(t, queue.added, 1)
	assert.Equal(t, "Intro", queue.added[0]["compositionId"])
}

func TestBridgeScriptEmbedded(t *testing.T) {
	assert.Contains(t, bridgeScript, "@remotion/studio-server")
	assert.Contains(t, bridgeScript, "startStudio")
	assert.Contains(t, bridgeScript, "webpackOverride")
}
