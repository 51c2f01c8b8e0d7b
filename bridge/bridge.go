// Package bridge exposes the accelerator functions to a host process over
// newline-delimited JSON.
//
// Each input line is a request:
//
//	{"id": 7, "fn": "check_bullet_enemy_collisions", "args": {"bullets": [[0, 0]], ...}}
//
// and produces exactly one output line:
//
//	{"id": 7, "result": [[0, 0]]}
//	{"id": 7, "error": {"kind": "invalid_argument", "message": "..."}}
//
// The id is echoed back verbatim and may be any JSON value.
package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/meghashyamc/fingerblaster/config"
	"github.com/meghashyamc/fingerblaster/gesture"
	"github.com/meghashyamc/fingerblaster/logger"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const maxRequestSize = 4 << 20

// Defaults fill in arguments a request leaves out.
type Defaults struct {
	PinchThreshold float64
	Calibration    gesture.Calibration
	ScreenWidth    int
	ScreenHeight   int
}

func DefaultsFromConfig(cfg *config.Config) Defaults {
	return Defaults{
		PinchThreshold: cfg.GetPinchThreshold(),
		Calibration:    cfg.GetFingerCalibration(),
		ScreenWidth:    cfg.GetScreenWidth(),
		ScreenHeight:   cfg.GetScreenHeight(),
	}
}

type Bridge struct {
	defaults Defaults
	handlers map[string]handlerFunc
	logger   logger.Logger
}

func New(defaults Defaults, log logger.Logger) *Bridge {
	b := &Bridge{
		defaults: defaults,
		logger:   log,
	}
	b.registerHandlers()

	b.logger.Debug("bridge created", "functions", len(b.handlers), "pinchThreshold", defaults.PinchThreshold)
	return b
}

// Serve answers requests from r on w, one line each, until r is exhausted or
// ctx is cancelled. Cancellation ends Serve even while r is blocked; the
// reading goroutine then exits on the next line or when r is closed.
func (b *Bridge) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go scanLines(ctx, r, lines, readErr)

	out := bufio.NewWriter(w)

	b.logger.Info("serving requests")
	served := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read request: %w", err)
			}

			b.logger.Info("input closed", "served", served)
			return nil
		}

		if _, err := out.WriteString(b.Handle(line) + "\n"); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		// The host waits for each answer before sending the next frame.
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to flush response: %w", err)
		}
		served++
	}
}

// scanLines feeds non-blank lines from r into lines and closes it when r ends
// or ctx is cancelled. The scanner's error, if r ended, goes to readErr.
func scanLines(ctx context.Context, r io.Reader, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			return
		}
	}

	readErr <- scanner.Err()
}

// Handle answers a single request line. It never fails: problems with the
// request are reported in the response's error object.
func (b *Bridge) Handle(line string) string {
	if !gjson.Valid(line) {
		return b.errorResponse(gjson.Result{}, fmt.Errorf("%w: malformed JSON", ErrInvalidRequest))
	}

	request := gjson.Parse(line)
	id := request.Get("id")
	if !request.IsObject() {
		return b.errorResponse(id, fmt.Errorf("%w: request must be a JSON object", ErrInvalidRequest))
	}

	fn := request.Get("fn").String()
	handler, ok := b.handlers[fn]
	if !ok {
		return b.errorResponse(id, fmt.Errorf("%w: %q", ErrUnknownFunction, fn))
	}

	result, err := handler(args{raw: request.Get("args")})
	if err != nil {
		return b.errorResponse(id, fmt.Errorf("%s: %w", fn, err))
	}

	if err := checkFinite(result); err != nil {
		return b.errorResponse(id, fmt.Errorf("%s: %w", fn, err))
	}

	response, err := sjson.Set(withID(id), "result", result)
	if err != nil {
		return b.errorResponse(id, fmt.Errorf("%s: failed to encode result: %w", fn, err))
	}

	b.logger.Debug("request handled", "fn", fn, "id", id.Raw)
	return response
}

func (b *Bridge) errorResponse(id gjson.Result, err error) string {
	kind := errorKind(err)
	b.logger.Warn("request failed", "kind", kind, "id", id.Raw, "err", err)

	response, _ := sjson.Set(withID(id), "error.kind", kind)
	response, _ = sjson.Set(response, "error.message", err.Error())
	return response
}

func withID(id gjson.Result) string {
	if !id.Exists() {
		return "{}"
	}

	response, err := sjson.SetRaw("{}", "id", id.Raw)
	if err != nil {
		return "{}"
	}
	return response
}
