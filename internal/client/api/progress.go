package api

import "io"

// progressReader reports the cumulative percentage of the request body the
// transport has consumed. Percentages are non-decreasing for a single body.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	onProgress func(percent float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		if p.onProgress != nil && p.total > 0 {
			percent := float64(p.read) / float64(p.total) * 100
			if percent > 100 {
				percent = 100
			}
			p.onProgress(percent)
		}
	}
	return n, err
}
