// Package socketio provides a sink block that reports stream summaries
// to a Socket.IO server. The block consumes its input locally and emits
// one event per flush window, so the network never back-pressures the
// flowgraph at sample granularity.
package socketio

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/registry"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

// DefaultFlushItems is the flush window used when the argument is omitted.
const DefaultFlushItems = 65536

const defaultTimeout = 10 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct{}

// Config defines the arguments for the socketio block.
type Config struct {
	URL                string `flow:"url"`
	Namespace          string `flow:"namespace,optional"`
	EmitEvent          string `flow:"emit_event,optional"`
	FlushItems         int64  `flow:"flush_items,optional"`
	Timeout            string `flow:"timeout,optional"`
	InsecureSkipVerify bool   `flow:"insecure_skip_verify,optional"`
}

// Block streams per-window summaries of its input to a Socket.IO server.
type Block struct {
	cfg        Config
	base       *url.URL
	flushItems int64
	timeout    time.Duration
}

// New creates a socketio block.
func New(cfg Config) (*Block, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("socketio: url is required")
	}
	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("socketio: failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("socketio: url must include scheme and host, got %q", cfg.URL)
	}
	if cfg.FlushItems < 0 {
		return nil, fmt.Errorf("socketio: flush_items must not be negative, got %d", cfg.FlushItems)
	}
	if cfg.EmitEvent == "" {
		cfg.EmitEvent = "samples"
	}

	flushItems := cfg.FlushItems
	if flushItems == 0 {
		flushItems = DefaultFlushItems
	}

	timeout := defaultTimeout
	if cfg.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("socketio: failed to parse timeout: %w", err)
		}
	}

	return &Block{
		cfg:        cfg,
		base:       parsedURL,
		flushItems: flushItems,
		timeout:    timeout,
	}, nil
}

// Describe implements flow.Block.
func (b *Block) Describe() flow.Signature {
	return flow.Signature{
		Inputs: []string{endpoint.DefaultInput},
	}
}

// Work implements flow.Block.
func (b *Block) Work(ctx context.Context, in []*ring.Reader[float32], _ []*ring.Writer[float32]) error {
	r := in[0]
	logger := ctxlog.FromContext(ctx).With("block", "socketio", "url", b.cfg.URL, "emitEvent", b.cfg.EmitEvent)
	logger.Debug("Work started")
	defer logger.Debug("Work finished")

	baseURL := fmt.Sprintf("%s://%s", b.base.Scheme, b.base.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(b.base.Path)

	if b.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	client := manager.Socket(b.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		client.Disconnect()
	}()

	connected := make(chan error, 1)
	client.On(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "namespace", b.cfg.Namespace, "sid", client.Id())
		select {
		case connected <- nil:
		default:
		}
	})
	client.On(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			} else {
				err = fmt.Errorf("connect_error: %v", errs[0])
			}
		}
		select {
		case connected <- err:
		default:
		}
	})

	client.Connect()

	connectCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	select {
	case <-connectCtx.Done():
		return fmt.Errorf("timed out while waiting for initial connection")
	case err := <-connected:
		if err != nil {
			return fmt.Errorf("connect failed: %w", err)
		}
	}

	var (
		total   int64
		pending int64
		sum     float64
		lo      = float32(math.Inf(1))
		hi      = float32(math.Inf(-1))
	)
	flush := func() {
		if pending == 0 {
			return
		}
		client.Emit(b.cfg.EmitEvent, map[string]any{
			"items": pending,
			"total": total,
			"min":   lo,
			"max":   hi,
			"mean":  sum / float64(pending),
		})
		pending, sum = 0, 0
		lo = float32(math.Inf(1))
		hi = float32(math.Inf(-1))
	}

	for {
		src, err := r.Slice(ctx)
		if err != nil {
			// A drained stream still reports its tail window.
			if errors.Is(err, io.EOF) {
				flush()
			}
			return err
		}
		for _, v := range src {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			sum += float64(v)
		}
		total += int64(len(src))
		pending += int64(len(src))
		r.Consume(len(src))
		if pending >= b.flushItems {
			flush()
		}
	}
}

// Register registers the block type with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBlock("socketio", &registry.RegisteredBlock{
		NewParams: func() any { return new(Config) },
		New: func(params any) (flow.Block, error) {
			return New(*params.(*Config))
		},
	})
}
