package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a whole-file compression wrapper.
type Compression int

const (
	NoCompression Compression = iota
	LZ4Compression
	ZstdCompression
)

var compressionSuffixes = map[Compression]string{
	LZ4Compression:  ".lz4",
	ZstdCompression: ".zst",
}

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case LZ4Compression:
		return "lz4"
	case ZstdCompression:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// Suffix returns the file extension of the compression wrapper, or ""
// for NoCompression.
func (c Compression) Suffix() string {
	return compressionSuffixes[c]
}

// zstd decoders and encoders are safe for concurrent use and costly to
// build, so one of each is shared.
var (
	zstdDecoder *zstd.Decoder
	zstdEncoder *zstd.Encoder
)

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("format: zstd decoder initialization failed: " + err.Error())
	}
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("format: zstd encoder initialization failed: " + err.Error())
	}
}

// Decompress unwraps data compressed with c. lz4 input is expected in
// the lz4 frame format, which is what the lz4 command line tool writes.
func Decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case NoCompression:
		return data, nil
	case LZ4Compression:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, nil
	case ZstdCompression:
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// Compress is the inverse of Decompress.
func Compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case NoCompression:
		return data, nil
	case LZ4Compression:
		buf := bytes.NewBuffer(nil)
		w := lz4.NewWriter(buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	case ZstdCompression:
		return zstdEncoder.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}
