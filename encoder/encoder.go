// Package encoder implements the CBOR encoding engine: it walks a Go value
// graph, consults the type-dispatch registry, coordinates the
// shared-reference table, and writes RFC 8949 bytes to an io.Writer.
//
// An Encoder is NOT safe for concurrent use by multiple goroutines; create
// one per goroutine, the same way the teacher documents NumericEncoder.
package encoder

import (
	"fmt"
	"io"
	"reflect"

	"github.com/binorbit/cbor/cbortype"
	"github.com/binorbit/cbor/errs"
	"github.com/binorbit/cbor/format"
	"github.com/binorbit/cbor/internal/options"
	"github.com/binorbit/cbor/internal/pool"
	"github.com/binorbit/cbor/internal/sharedref"
	"github.com/binorbit/cbor/internal/wire"
	"github.com/binorbit/cbor/registry"
)

// Encoder writes CBOR-encoded values to an underlying io.Writer.
type Encoder struct {
	w        io.Writer
	cfg      *config
	shared   *sharedref.EncodeTable
	registry *registry.Registry

	// cur is the buffer the currently-active encode call appends to. It is
	// swapped out by EncodeToBytes so that a nested encode can capture its
	// own byte range while sharing the same Encoder (and shared-ref table).
	cur *pool.ByteBuffer
}

// New creates an Encoder that writes to w.
func New(w io.Writer, opts ...Option) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		w:        w,
		cfg:      cfg,
		shared:   sharedref.NewEncodeTable(),
		registry: registry.New(),
	}, nil
}

// RegisterType installs fn as the encoder for values of type t, at the
// highest dispatch priority. Consulted ahead of built-in types only when
// the encoder's canonical mode is CanonicalFull; otherwise it's consulted
// after the built-in type switch fails to match.
func (e *Encoder) RegisterType(t reflect.Type, fn registry.EncodeFunc) {
	e.registry.Register(t, fn)
}

// Encode serialises v as one top-level CBOR item and writes it to the
// underlying stream.
func (e *Encoder) Encode(v any) error {
	buf := pool.Get()
	defer pool.Put(buf)

	prev := e.cur
	e.cur = buf
	err := e.encodeDispatch(v)
	e.cur = prev

	if err != nil {
		return err
	}

	_, err = e.w.Write(buf.Bytes())
	return err
}

// EncodeToBytes swaps the active output sink for a fresh in-memory buffer
// for the duration of encoding v, then returns the produced bytes without
// writing them to the underlying stream. The shared-reference table is
// preserved across the swap, so a value written this way still
// participates correctly in outer shared/cyclic structures.
func (e *Encoder) EncodeToBytes(v any) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	prev := e.cur
	e.cur = buf
	err := e.encodeDispatch(v)
	e.cur = prev

	if err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeLength emits the initial byte for major type mt with argument arg,
// choosing the narrowest legal width (spec §4.4 "Initial byte length
// choice").
func (e *Encoder) EncodeLength(mt format.MajorType, arg uint64) error {
	e.cur.B = wire.AppendHeader(e.cur.B, mt, arg)
	return nil
}

// encodeDispatch is the central type switch used for every value reachable
// from an Encode/EncodeToBytes call, including container elements.
func (e *Encoder) encodeDispatch(v any) error {
	if e.cfg.canonical == CanonicalFull {
		if fn, ok := e.lookupRegistry(v); ok {
			return e.emitFromRegistry(fn, v)
		}
	}

	if handled, err := e.encodeBuiltin(v); handled {
		return err
	}

	if e.cfg.canonical != CanonicalFull {
		if fn, ok := e.lookupRegistry(v); ok {
			return e.emitFromRegistry(fn, v)
		}
	}

	if e.cfg.defaultFn != nil {
		return e.cfg.defaultFn(e, v)
	}

	return fmt.Errorf("%w: %T", errs.ErrCannotSerialize, v)
}

func (e *Encoder) lookupRegistry(v any) (registry.EncodeFunc, bool) {
	if v == nil {
		return nil, false
	}
	return e.registry.Lookup(reflect.TypeOf(v))
}

func (e *Encoder) emitFromRegistry(fn registry.EncodeFunc, v any) error {
	b, err := fn(v)
	if err != nil {
		return err
	}
	e.cur.MustWrite(b)
	return nil
}

// encodeShared implements spec §4.2's encode_shared algorithm: look up the
// value's identity in the shared-ref table; if already assigned, emit a
// tag-29 back reference; otherwise, when sharing is enabled, assign a slot
// and wrap the dispatched content in a tag-28 definition; when sharing is
// disabled, dispatch directly but still track in-progress identities so a
// cycle is reported as errs.ErrCyclicNoSharing instead of recursing
// forever.
func (e *Encoder) encodeShared(identity any, kind func() error) error {
	if e.cfg.valueSharing {
		if idx, found := e.shared.Lookup(identity); found {
			if err := e.EncodeLength(format.MajorTag, format.TagSharedRef); err != nil {
				return err
			}
			return e.EncodeUint(uint64(idx))
		}

		if e.shared.InProgress(identity) {
			return fmt.Errorf("%w: value revisited before its shared definition completed", errs.ErrCyclicNoSharing)
		}

		e.shared.Begin(identity)
		if err := e.EncodeLength(format.MajorTag, format.TagShareableDef); err != nil {
			e.shared.End(identity)
			return err
		}
		err := kind()
		e.shared.End(identity)
		return err
	}

	if e.shared.InProgress(identity) {
		return fmt.Errorf("%w: cyclic structure with value sharing disabled", errs.ErrCyclicNoSharing)
	}

	e.shared.BeginInProgressOnly(identity)
	err := kind()
	e.shared.End(identity)
	return err
}
