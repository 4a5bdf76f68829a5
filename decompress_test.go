package proteomisc

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
)

func TestDetectDataType(t *testing.T) {
	for _, v := range []struct {
		prefix []byte
		want   DataType
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00}, DataTypeGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0x00}, DataTypeZip},
		{[]byte{0x42, 0x5a, 0x68, 0x39, 0x31, 0x41}, DataTypeBZip2},
		{[]byte("<?xml "), DataTypeNoCompression},
		{[]byte("so"), DataTypeNoCompression},
		{nil, DataTypeNoCompression},
	} {
		if got := DetectDataType(v.prefix); got != v.want {
			t.Errorf("DetectDataType(% x) = %v, want %v", v.prefix, got, v.want)
		}
	}
}

func TestMaybeDecompressReaderPlain(t *testing.T) {
	r, err := MaybeDecompressReader(strings.NewReader("source name\tcomment[data file]\n"))
	if err != nil {
		t.Fatal(err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "source name\tcomment[data file]\n" {
		t.Errorf("got %q", out)
	}
}

func TestMaybeDecompressReaderGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("hello, spectra")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := MaybeDecompressReader(&buf)
	if err != nil {
		t.Fatal(err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello, spectra" {
		t.Errorf("got %q", out)
	}
}
