package feature

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pbanos/arbor/injection"
	"github.com/vmihailenco/msgpack/v5"
)

// cborEncMode sorts map keys so sparse values always produce the same
// bytes. cborDecMode accepts any text string the encoder writes, valid
// UTF-8 or not.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("feature: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{UTF8: cbor.UTF8DecodeInvalid}.DecMode()
	if err != nil {
		panic("feature: CBOR decoder initialization failed: " + err.Error())
	}
}

// dispatchedWire carries every value so that zero and nil values of the
// selected kind survive the trip
type dispatchedWire[A, B, C, D any] struct {
	Kind       Kind `msgpack:"k" cbor:"k"`
	Ordinal    A    `msgpack:"o" cbor:"o"`
	Nominal    B    `msgpack:"n" cbor:"n"`
	Continuous C    `msgpack:"c" cbor:"c"`
	Sparse     D    `msgpack:"s" cbor:"s"`
}

func (d Dispatched[A, B, C, D]) wire() (*dispatchedWire[A, B, C, D], error) {
	if d.kind == 0 {
		return nil, fmt.Errorf("undefined dispatched value cannot be encoded")
	}
	return &dispatchedWire[A, B, C, D]{d.kind, d.ordinal, d.nominal, d.continuous, d.sparse}, nil
}

func (d *Dispatched[A, B, C, D]) fromWire(w *dispatchedWire[A, B, C, D]) error {
	if w.Kind < OrdinalKind || w.Kind > SparseKind {
		return injection.Malformed("unknown dispatched value kind %d", int(w.Kind))
	}
	*d = Dispatched[A, B, C, D]{kind: w.Kind}
	switch w.Kind {
	case OrdinalKind:
		d.ordinal = w.Ordinal
	case NominalKind:
		d.nominal = w.Nominal
	case ContinuousKind:
		d.continuous = w.Continuous
	case SparseKind:
		d.sparse = w.Sparse
	}
	return nil
}

// MarshalMsgpack implements msgpack.Marshaler.
func (d Dispatched[A, B, C, D]) MarshalMsgpack() ([]byte, error) {
	w, err := d.wire()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(w)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (d *Dispatched[A, B, C, D]) UnmarshalMsgpack(data []byte) error {
	w := &dispatchedWire[A, B, C, D]{}
	err := msgpack.Unmarshal(data, w)
	if err != nil {
		return injection.Malformed("decoding dispatched value: %v", err)
	}
	return d.fromWire(w)
}

// MarshalCBOR implements cbor.Marshaler.
func (d Dispatched[A, B, C, D]) MarshalCBOR() ([]byte, error) {
	w, err := d.wire()
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *Dispatched[A, B, C, D]) UnmarshalCBOR(data []byte) error {
	w := &dispatchedWire[A, B, C, D]{}
	err := cborDecMode.Unmarshal(data, w)
	if err != nil {
		return injection.Malformed("decoding dispatched value: %v", err)
	}
	return d.fromWire(w)
}
