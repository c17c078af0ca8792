package ioutils

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// CopyStream pipes src into dst until src is exhausted or either side fails.
//
// The context is checked between chunks; a cancelled context aborts the copy
// with ctx.Err().
//
// Example:
//
//	err := CopyStream(ctx, resp.Body, archiveFile)
func CopyStream(ctx context.Context, src io.Reader, dst io.Writer) error {
	_, err := io.Copy(dst, ctxReader{ctx: ctx, r: src})
	return err
}

// Tee fans a single source out to two consumers.
//
// One read loop copies src into both sink and a pipe; consume runs
// concurrently and reads from the other end of that pipe. Tee returns once
// both sides have finished. The first failure from either side aborts the
// other, and that error is returned.
//
// Example:
//
//	var urls []string
//	err := Tee(ctx, resp.Body, archiveFile, func(r io.Reader) error {
//	    urls, err = extractor.ExtractURLs(r)
//	    return err
//	})
func Tee(ctx context.Context, src io.Reader, sink io.Writer, consume func(io.Reader) error) error {
	pr, pw := io.Pipe()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := CopyStream(ctx, src, io.MultiWriter(sink, pw))
		// A nil error closes the pipe with io.EOF.
		pw.CloseWithError(err)
		return err
	})

	g.Go(func() error {
		if err := consume(pr); err != nil {
			pr.CloseWithError(err)
			return err
		}
		// Drain anything the consumer left so the read loop is never blocked.
		_, err := io.Copy(io.Discard, pr)
		return err
	})

	return g.Wait()
}
