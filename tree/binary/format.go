package binary

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

/*
Format is a structural codec: it encodes Go values into bytes by walking
their exported fields and decodes them back into values of the same type.
*/
type Format interface {
	// Name identifies the format
	Name() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type msgpackFormat struct{}

// Msgpack returns a Format writing MessagePack.
func Msgpack() Format {
	return msgpackFormat{}
}

func (msgpackFormat) Name() string {
	return "msgpack"
}

func (msgpackFormat) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackFormat) Decode(data []byte, v any) error {
	r := bytes.NewReader(data)
	err := msgpack.NewDecoder(r).Decode(v)
	if err != nil {
		return err
	}
	if r.Len() > 0 {
		return fmt.Errorf("msgpack: %d bytes of extraneous data", r.Len())
	}
	return nil
}

// CBOR encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys and smallest integer encoding, so equal trees produce
// identical bytes. The encoder writes strings as they are, so decoding
// accepts text strings that are not valid UTF-8.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("binary: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		UTF8:           cbor.UTF8DecodeInvalid,
	}.DecMode()
	if err != nil {
		panic("binary: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborFormat struct{}

// CBOR returns a Format writing deterministic CBOR.
func CBOR() Format {
	return cborFormat{}
}

func (cborFormat) Name() string {
	return "cbor"
}

func (cborFormat) Encode(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

func (cborFormat) Decode(data []byte, v any) error {
	return cborDecMode.Unmarshal(data, v)
}

type compressedFormat struct {
	Format
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

/*
Compressed takes a Format and returns another one that compresses its
output with zstd and decompresses input before decoding it. The returned
Format is safe for concurrent use.
*/
func Compressed(f Format) (Format, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, err
	}
	return &compressedFormat{f, encoder, decoder}, nil
}

func (cf *compressedFormat) Name() string {
	return cf.Format.Name() + "+zstd"
}

func (cf *compressedFormat) Encode(v any) ([]byte, error) {
	data, err := cf.Format.Encode(v)
	if err != nil {
		return nil, err
	}
	return cf.encoder.EncodeAll(data, nil), nil
}

func (cf *compressedFormat) Decode(data []byte, v any) error {
	raw, err := cf.decoder.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return cf.Format.Decode(raw, v)
}
