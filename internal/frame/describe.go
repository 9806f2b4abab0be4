package frame

import (
	"math"
	"slices"
	"strconv"
)

// StatisticColumn names the first column of a [Frame.Describe] result.
const StatisticColumn = "statistic"

var statistics = []string{"count", "null_count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe returns summary statistics with one row per statistic and one
// column per column of f. Numeric columns get every statistic; other
// columns get counts and the lexical min and max.
//
// count excludes nulls. std is the sample standard deviation. Quantiles
// take the nearest observation.
func (f *Frame) Describe() *Frame {
	cols := make([]*Column, 0, len(f.cols)+1)
	label := NewColumn(StatisticColumn, KindString)
	for _, s := range statistics {
		label.Append(s, 0)
	}
	cols = append(cols, label)
	for _, c := range f.cols {
		if c.Kind().Numeric() {
			cols = append(cols, describeNumeric(c))
		} else {
			cols = append(cols, describeText(c))
		}
	}
	return &Frame{cols: cols, rows: len(statistics)}
}

func describeNumeric(c *Column) *Column {
	var vals []float64
	for i := range c.Len() {
		if v, ok := c.Float(i); ok && !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	nulls := c.Len() - countValid(c)
	slices.Sort(vals)

	out := NewColumn(c.Name(), KindFloat)
	appendFloat(out, float64(countValid(c)), true)
	appendFloat(out, float64(nulls), true)
	if len(vals) == 0 {
		for range statistics[2:] {
			out.AppendNull()
		}
		return out
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	appendFloat(out, mean, true)

	var sq float64
	for _, v := range vals {
		sq += (v - mean) * (v - mean)
	}
	appendFloat(out, math.Sqrt(sq/float64(len(vals)-1)), len(vals) > 1)

	appendFloat(out, vals[0], true)
	for _, q := range []float64{0.25, 0.5, 0.75} {
		appendFloat(out, quantile(vals, q), true)
	}
	appendFloat(out, vals[len(vals)-1], true)
	return out
}

func describeText(c *Column) *Column {
	out := NewColumn(c.Name(), KindString)
	valid := countValid(c)
	out.Append(strconv.Itoa(valid), 0)
	out.Append(strconv.Itoa(c.Len()-valid), 0)
	for range statistics[2:4] {
		out.AppendNull()
	}

	var lo, hi string
	first := true
	for i := range c.Len() {
		if c.IsNull(i) {
			continue
		}
		t := c.Text(i)
		if first || t < lo {
			lo = t
		}
		if first || t > hi {
			hi = t
		}
		first = false
	}
	if valid == 0 {
		out.AppendNull()
	} else {
		out.Append(lo, 0)
	}
	for range statistics[5:8] {
		out.AppendNull()
	}
	if valid == 0 {
		out.AppendNull()
	} else {
		out.Append(hi, 0)
	}
	return out
}

func countValid(c *Column) int {
	n := 0
	for i := range c.Len() {
		if !c.IsNull(i) {
			n++
		}
	}
	return n
}

// quantile picks the nearest observation of sorted vals.
func quantile(sorted []float64, q float64) float64 {
	i := int(math.Round(q * float64(len(sorted)-1)))
	return sorted[i]
}

func appendFloat(c *Column, v float64, ok bool) {
	if !ok {
		c.AppendNull()
		return
	}
	c.Append(FormatFloat(v), v)
}

// FormatFloat renders v with at most six decimals and no trailing zeros.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
