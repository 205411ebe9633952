// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// now is a function pointer that returns time.Now to the caller.
var now = time.Now

// Carve scans data for the configured magic signatures and reconstructs a
// normalized object from every valid candidate. A nil cfg is replaced by
// [NewConfig].
//
// Failures are local to one candidate: a corrupt or truncated candidate is
// reported in [Result.Failures] and never stops processing of the remaining
// candidates. Carve returns a non-nil error only if the input exceeds the
// configured maximum input size or if ctx is canceled; cancellation is
// checked between candidates, and the partial [Result] is returned along
// with the context error.
func Carve(ctx context.Context, data []byte, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	cfg.Logger().Info("carve", "inputSize", len(data), "signatures", len(cfg.Signatures()))

	// prepare telemetry capturing
	td := &TelemetryData{InputSize: int64(len(data))}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureCarveDuration(td, now())

	// limit input size
	if err := cfg.CheckInputSize(int64(len(data))); err != nil {
		td.LastCarveError = err
		return nil, err
	}

	res := &Result{}
	var mu sync.Mutex

	// candidates share only the read-only input buffer
	g := new(errgroup.Group)
	g.SetLimit(cfg.Concurrency())

	scanner := NewScanner(data, cfg.Signatures())
	var ctxErr error
	for {
		// check for cancellation between candidates
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}

		m, ok := scanner.Next()
		if !ok {
			break
		}

		g.Go(func() error {
			obj, err := reconstruct(data, m.Start, cfg)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				td.CarveErrors++
				td.LastCarveError = err
				if errors.Is(err, ErrTruncatedHeader) {
					td.TruncatedHeaders++
				}
				cfg.Logger().Debug("carve failed", "offset", m.Start, "error", err)
				res.Failures = append(res.Failures, Failure{Offset: m.Start, Err: err})
			case obj == nil:
				td.SkippedVariants++
				cfg.Logger().Debug("unsupported variant", "offset", m.Start)
			default:
				td.CarvedObjects++
				td.CarveSize += int64(len(obj.Data))
				cfg.Logger().Debug("carved object", "offset", m.Start, "version", obj.Version, "size", len(obj.Data))
				res.Objects = append(res.Objects, *obj)
			}
			return nil
		})
	}

	// workers report through res, never through errors
	_ = g.Wait()

	// restore scan order after parallel reconstruction
	sort.Slice(res.Objects, func(i, j int) bool {
		return res.Objects[i].Offset < res.Objects[j].Offset
	})
	sort.Slice(res.Failures, func(i, j int) bool {
		return res.Failures[i].Offset < res.Failures[j].Offset
	})

	if ctxErr != nil {
		td.LastCarveError = ctxErr
		return res, ctxErr
	}
	return res, nil
}

// reconstruct decodes, decompresses and validates the candidate at offset
// and assembles the normalized object. It returns (nil, nil) if the magic at
// offset has no registered decompressor, which is a non-match rather than a
// failure.
//
// Any panic out of a decoding or decompression step is recovered and
// converted into an error scoped to this offset, so one malformed candidate
// can never abort a scan.
func reconstruct(data []byte, offset int, cfg *Config) (obj *Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			obj = nil
			err = fmt.Errorf("cannot carve object at offset %d: %v", offset, r)
		}
	}()

	hdr, err := decodeHeader(data, offset)
	if err != nil {
		return nil, err
	}

	want := hdr.bodySize()
	if want < 0 {
		return nil, fmt.Errorf("%w at offset %d: declared length %d", ErrInvalidDeclaredSize, offset, hdr.declaredLength)
	}

	dec, ok := lookupDecompressor(hdr.magic[:])
	if !ok {
		return nil, nil
	}

	// the (possibly compressed) body starts right after the header and
	// spans at most the declared body size
	body := data[offset+headerLength:]
	if int64(len(body)) > want {
		body = body[:want]
	}

	stream, err := dec(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d: %v", ErrDecompression, offset, err)
	}
	defer func() {
		if closer, ok := stream.(io.Closer); ok {
			closer.Close()
		}
	}()

	decompressed, err := io.ReadAll(newLimitErrorReader(stream, cfg.MaxObjectSize()))
	if err != nil {
		if errors.Is(err, ErrMaxObjectSizeExceeded) {
			return nil, fmt.Errorf("%w at offset %d", ErrMaxObjectSizeExceeded, offset)
		}
		return nil, fmt.Errorf("%w at offset %d: %v", ErrDecompression, offset, err)
	}

	if int64(len(decompressed)) != want {
		return nil, fmt.Errorf("%w at offset %d: %d != %d", ErrSizeMismatch, offset, len(decompressed), want)
	}

	out := make([]byte, 0, headerLength+len(decompressed))
	out = append(out, encodeHeader(hdr.version, hdr.declaredLength)...)
	out = append(out, decompressed...)
	return &Object{Data: out, Offset: offset, Version: hdr.version}, nil
}

// captureCarveDuration captures the duration of the carving run
func captureCarveDuration(td *TelemetryData, start time.Time) {
	stop := now()
	td.CarveDuration = stop.Sub(start)
}
