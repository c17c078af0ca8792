package main

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// fetchProgress draws a byte counter for the feed download.
type fetchProgress struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func newFetchProgress(w io.Writer, feedID string) *fetchProgress {
	container := mpb.New(
		mpb.WithOutput(w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	name := "feed " + feedID + " "
	bar := container.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.CountersKibiByte("% .1f / % .1f"),
		),
	)

	return &fetchProgress{container: container, bar: bar}
}

// update is an http.ProgressWriter callback. total is -1 when unknown.
func (p *fetchProgress) update(written, total int64) {
	if total > 0 {
		p.bar.SetTotal(total, false)
	}
	p.bar.SetCurrent(written)
}

// finish completes or aborts the bar and waits for the final render.
func (p *fetchProgress) finish(ok bool) {
	if ok {
		p.bar.SetTotal(-1, true)
	} else {
		p.bar.Abort(false)
	}
	p.container.Wait()
}
