// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/chart/base/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidRange is returned for tick ranges that are not
// finite with min strictly less than max.
var ErrInvalidRange = errors.New("plot: invalid tick range")

// maxTicks bounds the number of ticks generated for one axis.
const maxTicks = 1000

var (
	log10of2 = math.Log10(2)
	log10of5 = math.Log10(5)
)

// Tick is one labeled axis reference value.
type Tick struct {
	Value float64
	Label string
}

// TickSpacing returns the "nice" spacing for ticks over a range of
// the given width: a power of 10 times 1, 2 or 5, targeting
// about 4 intervals.
func TickSpacing(width float64) float64 {
	lg := math.Log10(width / 4)
	fl := math.Floor(lg)
	step := math.Pow(10, fl)
	switch frac := lg - fl; {
	case frac > log10of5:
		step *= 5
	case frac > log10of2:
		step *= 2
	}
	return step
}

// NiceTicks returns evenly spaced tick values in ascending order,
// covering every multiple of [TickSpacing] within [min, max] inclusive.
// The range must be finite with min < max, otherwise
// [ErrInvalidRange] is returned.
func NiceTicks(min, max float64) ([]float64, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	step := TickSpacing(max - min)
	lo := math.Ceil(min / step)
	hi := math.Floor(max / step)
	n := hi - lo
	if step == 0 || math.IsNaN(n) || n > maxTicks {
		return nil, fmt.Errorf("%w: [%g, %g] needs too many ticks", ErrInvalidRange, min, max)
	}
	ticks := make([]float64, 0, int(n)+1)
	for i := 0; i <= int(n); i++ {
		v := (lo + float64(i)) * step
		if v < min || v > max {
			continue
		}
		if v == 0 {
			v = 0 // no negative zero
		}
		ticks = append(ticks, v)
	}
	return ticks, nil
}

// Ticks returns [NiceTicks] for the range with labels formatted for
// the given locale (a BCP 47 tag such as "en" or "de-CH"; invalid or
// empty tags use English). Labels carry as many decimals as the tick
// spacing needs.
func Ticks(min, max float64, locale string) ([]Tick, error) {
	vals, err := NiceTicks(min, max)
	if err != nil {
		return nil, err
	}
	p := message.NewPrinter(localeTag(locale))
	prec := labelPrecision(TickSpacing(max - min))
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Label: formatTick(p, v, prec)}
	}
	return ticks, nil
}

func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// labelPrecision returns the number of decimals needed to
// distinguish ticks at the given spacing.
func labelPrecision(step float64) int {
	p := -int(math.Floor(math.Log10(step)))
	if p < 0 {
		return 0
	}
	return p
}

func formatTick(p *message.Printer, v float64, prec int) string {
	av := math.Abs(v)
	if prec > 6 || av >= 1e12 {
		return p.Sprintf("%.4g", v)
	}
	return p.Sprint(number.Decimal(v, number.Scale(prec)))
}
