package proteomisc

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a byte prefix by
// checking against a set of known compression signatures. Byte code
// signatures from https://stackoverflow.com/a/19127748/199475
func DetectDataType(prefix []byte) DataType {
Outer:
	for dt, sig := range byteCodeSigs {
		if len(prefix) < len(sig) {
			continue
		}
		for position := range sig {
			if prefix[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// MaybeDecompressReader wraps r with the appropriate decompressor if its
// leading bytes carry a known compression signature. Unlike file-based
// detection, this works on non-seekable streams such as Stdin: the
// sniffed bytes are buffered, not consumed. If no signature is
// recognized, the stream is assumed to be uncompressed.
func MaybeDecompressReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch DetectDataType(prefix) {
	case DataTypeGzip:
		return gzip.NewReader(br)
	case DataTypeZip:
		return zipstream.NewReader(br), nil
	case DataTypeBZip2:
		return bzip2.NewReader(br), nil
	case DataTypeXZ:
		return xz.NewReader(br, 0)
	case DataTypeZ:
		return zlib.NewReader(br)
	}

	// No data type detected. For now, we assume this is uncompressed.
	return br, nil
}
