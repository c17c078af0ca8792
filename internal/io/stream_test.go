package ioutils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

type failingWriter struct{ err error }

func (f failingWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestCopyStream(t *testing.T) {
	var dst bytes.Buffer
	if err := CopyStream(context.Background(), strings.NewReader("hello world"), &dst); err != nil {
		t.Fatalf("CopyStream failed: %v", err)
	}
	if dst.String() != "hello world" {
		t.Errorf("copied %q, want %q", dst.String(), "hello world")
	}
}

func TestCopyStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var dst bytes.Buffer
	err := CopyStream(ctx, strings.NewReader("data"), &dst)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTee_BothSinksReceiveEverything(t *testing.T) {
	payload := strings.Repeat("<episode url=\"x\"/>", 5000)

	var archive bytes.Buffer
	var parsed []byte
	err := Tee(context.Background(), strings.NewReader(payload), &archive, func(r io.Reader) error {
		var err error
		parsed, err = io.ReadAll(r)
		return err
	})
	if err != nil {
		t.Fatalf("Tee failed: %v", err)
	}
	if archive.String() != payload {
		t.Error("archive sink did not receive the full payload")
	}
	if string(parsed) != payload {
		t.Error("consumer did not receive the full payload")
	}
}

func TestTee_ConsumerStopsEarly(t *testing.T) {
	payload := strings.Repeat("x", 1<<20)

	var archive bytes.Buffer
	err := Tee(context.Background(), strings.NewReader(payload), &archive, func(r io.Reader) error {
		buf := make([]byte, 10)
		_, err := io.ReadFull(r, buf)
		return err
	})
	if err != nil {
		t.Fatalf("Tee failed: %v", err)
	}
	if archive.Len() != len(payload) {
		t.Errorf("archive got %d bytes, want %d", archive.Len(), len(payload))
	}
}

func TestTee_SourceFailure(t *testing.T) {
	readErr := errors.New("connection reset")
	src := &failingReader{data: []byte("partial"), err: readErr}

	var archive bytes.Buffer
	err := Tee(context.Background(), src, &archive, func(r io.Reader) error {
		_, err := io.ReadAll(r)
		return err
	})
	if !errors.Is(err, readErr) {
		t.Errorf("err = %v, want %v", err, readErr)
	}
}

func TestTee_ConsumerFailureAbortsCopy(t *testing.T) {
	parseErr := errors.New("bad xml")
	payload := strings.Repeat("y", 1<<20)

	var archive bytes.Buffer
	err := Tee(context.Background(), strings.NewReader(payload), &archive, func(r io.Reader) error {
		return parseErr
	})
	if !errors.Is(err, parseErr) {
		t.Errorf("err = %v, want %v", err, parseErr)
	}
}

func TestTee_SinkFailure(t *testing.T) {
	writeErr := errors.New("disk full")

	err := Tee(context.Background(), strings.NewReader("data"), failingWriter{err: writeErr}, func(r io.Reader) error {
		_, err := io.ReadAll(r)
		return err
	})
	if !errors.Is(err, writeErr) {
		t.Errorf("err = %v, want %v", err, writeErr)
	}
}
