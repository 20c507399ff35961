// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package epochs provides iterators over regularly spaced measurement epochs
// aligned to GPS time, and a means of merging several time ordered epoch
// streams into one.
package epochs

import (
	"iter"
	"math/big"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/gnsstime"
)

// AlignGPS returns the earliest instant at or after dt whose GPS time,
// measured from the GPS epoch, is a whole multiple of interval. For example
// with a 30s interval the result has a GPS seconds of week that is
// divisible by 30. dt is returned unchanged if interval is not positive.
func AlignGPS(dt gnsstime.DateTime, interval time.Duration) gnsstime.DateTime {
	if interval <= 0 {
		return dt
	}
	rem := gpsRemainder(dt, interval)
	if rem == 0 {
		return dt
	}
	return dt.AddDuration(interval - rem)
}

var gpsEpochSeconds = gnsstime.GPSEpoch.StdTime().Unix() - int64(gnsstime.GPSUTCLeap/time.Second)

// gpsRemainder returns the GPS time of dt modulo interval, in [0, interval).
// GPS time is held as whole seconds and nanoseconds since a time.Duration
// cannot span more than about 292 years.
func gpsRemainder(dt gnsstime.DateTime, interval time.Duration) time.Duration {
	t := dt.StdTime()
	sec, nsec := t.Unix()-gpsEpochSeconds, int64(t.Nanosecond())
	if interval%time.Second == 0 {
		n := int64(interval / time.Second)
		r := sec % n
		if r < 0 {
			r += n
		}
		return time.Duration(r)*time.Second + time.Duration(nsec)
	}
	ns := new(big.Int).Mul(big.NewInt(sec), big.NewInt(int64(time.Second)))
	ns.Add(ns, big.NewInt(nsec))
	return time.Duration(ns.Mod(ns, big.NewInt(int64(interval))).Int64())
}

// Grid represents the GPS aligned epochs, Interval apart, that lie
// within [Start, End].
type Grid struct {
	Start    gnsstime.DateTime
	End      gnsstime.DateTime
	Interval time.Duration
}

// Epochs returns an iterator over the epochs in the grid. No epochs
// are returned if Interval is not positive or End precedes the first
// aligned epoch.
func (g Grid) Epochs() iter.Seq[gnsstime.DateTime] {
	return func(yield func(gnsstime.DateTime) bool) {
		if g.Interval <= 0 {
			return
		}
		for e := AlignGPS(g.Start, g.Interval); !e.After(g.End); e = e.AddDuration(g.Interval) {
			if !yield(e) {
				return
			}
		}
	}
}

// Stream returns the grid as a named stream suitable for use with Merge.
func (g Grid) Stream(name string) Stream {
	return Stream{Name: name, Epochs: g.Epochs()}
}

// Stream is a named sequence of epochs in non-decreasing order.
type Stream struct {
	Name   string
	Epochs iter.Seq[gnsstime.DateTime]
}

// Tagged is an epoch together with the name of the stream it came from.
type Tagged struct {
	Name  string
	Epoch gnsstime.DateTime
}

type pending struct {
	epoch  gnsstime.DateTime
	stream int
}

func (p pending) Less(o pending) bool {
	if c := p.epoch.Compare(o.epoch); c != 0 {
		return c < 0
	}
	return p.stream < o.stream
}

// Merge returns an iterator that merges the supplied streams into a single
// stream in time order. Epochs that are equal are returned in the order
// that their streams were supplied. Each stream must itself be in time
// order. At most one epoch per stream is buffered.
func Merge(streams ...Stream) iter.Seq[Tagged] {
	return func(yield func(Tagged) bool) {
		nexts := make([]func() (gnsstime.DateTime, bool), len(streams))
		h := make(heap.Heap[pending], 0, len(streams))
		for i, s := range streams {
			next, stop := iter.Pull(s.Epochs)
			defer stop()
			nexts[i] = next
			if e, ok := next(); ok {
				h.Push(pending{epoch: e, stream: i})
			}
		}
		for h.Len() > 0 {
			p := h.Pop()
			if !yield(Tagged{Name: streams[p.stream].Name, Epoch: p.epoch}) {
				return
			}
			if e, ok := nexts[p.stream](); ok {
				h.Push(pending{epoch: e, stream: p.stream})
			}
		}
	}
}
