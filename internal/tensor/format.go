package tensor

import (
	"math"
	"strconv"
	"strings"
)

// PrintOptions controls how String and Format render elements.
type PrintOptions struct {
	MaxDecimals    int // Cap on digits after the point in fixed notation.
	MaxExpDecimals int // Cap on mantissa digits after the point in exponential notation.
}

// DefaultPrintOptions returns the options used by String.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		MaxDecimals:    5,
		MaxExpDecimals: 4,
	}
}

// layout is the per-tensor field layout shared by every element.
type layout struct {
	before    int  // characters before the decimal point, including sign
	after     int  // characters after the decimal point
	expDigits int  // exponent digits; 0 means fixed notation
	expSign   bool // always print the exponent sign
}

func (l layout) width() int {
	w := l.before + 1 + l.after
	if l.expDigits > 0 {
		w += 1 + l.expDigits
		if l.expSign {
			w++
		}
	}
	return w
}

// String renders the tensor as nested bracketed rows with aligned columns.
//
// Example:
//
//	[[3.0, 1.0, 4.0],
//	 [1.0, 5.0, 9.0]]
func (t *Tensor) String() string {
	return t.Format(DefaultPrintOptions())
}

// Format renders the tensor like String using the given options.
func (t *Tensor) Format(opts PrintOptions) string {
	var l layout
	if t.size > 0 {
		l = t.layout(opts)
	}
	var b strings.Builder
	t.render(&b, make([]int, len(t.shape)), 0, l)
	return b.String()
}

// layout computes the shared field layout from the finite elements.
func (t *Tensor) layout(opts PrintOptions) layout {
	var (
		minAbs, maxAbs float64
		lo, hi         float64
		finite         bool
		negInf         bool
	)
	for v := range t.Values() {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			negInf = negInf || math.IsInf(f, -1)
			continue
		}
		a := math.Abs(f)
		if !finite {
			minAbs, maxAbs, lo, hi, finite = a, a, f, f, true
			continue
		}
		minAbs, maxAbs = math.Min(minAbs, a), math.Max(maxAbs, a)
		lo, hi = math.Min(lo, f), math.Max(hi, f)
	}
	if negInf {
		// Leave room for the sign of -inf.
		lo = math.Min(lo, -1)
	}

	exponential := maxAbs >= 1e3 || (minAbs > 0 && minAbs < 1e-2)
	limit := opts.MaxDecimals
	if exponential {
		limit = opts.MaxExpDecimals
	}
	limit = max(limit, 1)

	var l layout
	for v := range t.Values() {
		l.after = max(l.after, decimalsNeeded(v, exponential, limit))
	}

	if exponential {
		l.before = 1
		if lo < 0 {
			l.before = 2
		}
		l.expSign = minAbs < 1
		l.expDigits = 1
		if maxAbs >= 1e10 || (minAbs > 0 && minAbs < 1e-9) {
			l.expDigits = 2
		}
		return l
	}

	// Size the integer part from the rounded extremes so a carry such as
	// 9.99999 -> 10.0 still fits the column.
	l.before = 1
	if hi > 0 {
		l.before = max(l.before, intDigits(roundTo(hi, l.after)))
	}
	if lo < 0 {
		l.before = max(l.before, intDigits(roundTo(-lo, l.after))+1)
	}
	return l
}

// decimalsNeeded returns how many digits after the point f needs, at most
// limit and at least 1, with trailing zeros dropped.
func decimalsNeeded(v float32, exponential bool, limit int) int {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 1
	}
	f = math.Abs(f)
	if exponential {
		f, _ = mantissa(f)
	}
	scale := math.Pow(10, float64(limit))
	frac := int64(math.Round((f - math.Floor(f)) * scale))
	if frac == 0 || frac >= int64(scale) {
		return 1
	}
	digits := limit
	for frac%10 == 0 {
		frac /= 10
		digits--
	}
	return digits
}

// roundTo rounds a non-negative f to the given number of decimals the way
// formatElement does.
func roundTo(f float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	whole := math.Floor(f)
	return whole + math.Round((f-whole)*scale)/scale
}

// intDigits returns the number of digits in the integer part of a positive f.
func intDigits(f float64) int {
	if f < 1 {
		return 1
	}
	return int(math.Floor(math.Log10(f))) + 1
}

// mantissa splits a positive f into m * 10^exp with 1 <= m < 10.
func mantissa(f float64) (float64, int) {
	exp := int(math.Floor(math.Log10(f)))
	m := f * math.Pow(10, float64(-exp))
	// Log10 can be off by one ulp around exact powers of ten.
	if m >= 10 {
		m /= 10
		exp++
	} else if m < 1 {
		m *= 10
		exp--
	}
	return m, exp
}

// render writes the sub-tensor at coords[:depth] to b.
func (t *Tensor) render(b *strings.Builder, coords []int, depth int, l layout) {
	dims := len(t.shape)
	if depth == dims {
		b.WriteString(formatElement(t.get(coords), l))
		return
	}

	b.WriteByte('[')
	for i := 0; i < t.shape[depth]; i++ {
		if i > 0 {
			b.WriteByte(',')
			b.WriteString(strings.Repeat("\n", dims-depth-1))
			if depth == dims-1 {
				b.WriteByte(' ')
			} else {
				b.WriteString(strings.Repeat(" ", depth+1))
			}
		}
		coords[depth] = i
		t.render(b, coords, depth+1, l)
	}
	coords[depth] = 0
	b.WriteByte(']')
}

// formatElement renders one value right-aligned to the layout width.
func formatElement(v float32, l layout) string {
	width := l.width()
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return padLeft("NaN", width)
	case math.IsInf(f, 1):
		return padLeft("inf", width)
	case math.IsInf(f, -1):
		return padLeft("-inf", width)
	}

	neg := f < 0
	f = math.Abs(f)

	exp := 0
	if l.expDigits > 0 && f != 0 {
		f, exp = mantissa(f)
	}

	scale := math.Pow(10, float64(l.after))
	whole := int64(f)
	frac := int64(math.Round((f - float64(whole)) * scale))
	if frac >= int64(scale) {
		whole++
		frac -= int64(scale)
		if l.expDigits > 0 && whole >= 10 {
			whole, exp = 1, exp+1
		}
	}

	fracStr := strconv.FormatInt(frac, 10)
	fracStr = strings.Repeat("0", l.after-len(fracStr)) + fracStr
	if l.expDigits == 0 {
		fracStr = strings.TrimRight(fracStr, "0")
		if fracStr == "" {
			fracStr = "0"
		}
	}

	var b strings.Builder
	intStr := strconv.FormatInt(whole, 10)
	if neg {
		intStr = "-" + intStr
	}
	b.WriteString(padLeft(intStr, l.before))
	b.WriteByte('.')
	b.WriteString(fracStr)
	b.WriteString(strings.Repeat(" ", max(0, l.after-len(fracStr))))

	if l.expDigits > 0 {
		b.WriteByte('e')
		switch {
		case exp < 0:
			b.WriteByte('-')
		case l.expSign:
			b.WriteByte('+')
		}
		expStr := strconv.Itoa(abs(exp))
		b.WriteString(strings.Repeat("0", max(0, l.expDigits-len(expStr))))
		b.WriteString(expStr)
	}
	return b.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
