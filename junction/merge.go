package junction

import (
	"cmp"
	"slices"

	"github.com/SubhashUFlorida/millipede-bar/dsp/core"
	"github.com/SubhashUFlorida/millipede-bar/waveform"
)

// Value is a sample that may be absent at a time key.
type Value struct {
	V     float64
	Valid bool
}

func present(v float64) Value {
	return Value{V: v, Valid: true}
}

// Row is one time key of the merged output.
type Row struct {
	Key         int64 // nanoseconds
	Incident    Value
	Reflected   Value
	Transmitted Value
}

// Time returns the row time in seconds.
func (r Row) Time() float64 {
	return core.KeyTime(r.Key)
}

// Merge outer-joins the incident series with the reflected and transmitted
// waves indexed by keys. Rows are ordered by key; a key present on one side
// only leaves the other side's values absent.
func Merge(series waveform.Series, keys []int64, reflected, transmitted []float64) []Row {
	left := make([]int64, len(series.Time))
	for i, t := range series.Time {
		left[i] = core.TimeKey(t)
	}
	li := sortedOrder(left)
	ri := sortedOrder(keys)

	rows := make([]Row, 0, len(left)+len(keys))
	i, j := 0, 0
	for i < len(li) || j < len(ri) {
		var row Row
		switch {
		case j == len(ri) || (i < len(li) && left[li[i]] < keys[ri[j]]):
			row.Key = left[li[i]]
			row.Incident = present(series.Amplitude[li[i]])
			i++
		case i == len(li) || keys[ri[j]] < left[li[i]]:
			row.Key = keys[ri[j]]
			row.Reflected = present(reflected[ri[j]])
			row.Transmitted = present(transmitted[ri[j]])
			j++
		default:
			row.Key = left[li[i]]
			row.Incident = present(series.Amplitude[li[i]])
			row.Reflected = present(reflected[ri[j]])
			row.Transmitted = present(transmitted[ri[j]])
			i++
			j++
		}
		rows = append(rows, row)
	}
	return rows
}

// sortedOrder returns the indices of keys in ascending key order, stable for
// equal keys.
func sortedOrder(keys []int64) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	if slices.IsSorted(keys) {
		return idx
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
	return idx
}
