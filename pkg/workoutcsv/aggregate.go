package workoutcsv

import "sort"

// accumulator collects nil-aware sums and means for one group.
type accumulator struct {
	sums   [5]float64
	means  [5]float64
	counts [5]int
	rows   int
}

// sum field order: planned_hours, planned_km, actual_hours, actual_km, tss.
// mean field order: if, power_avg, hr_avg, rpe, feeling.

func (a *accumulator) add(rec Record) {
	a.rows++
	for i, v := range []*float64{rec.PlannedHours, rec.PlannedKm, rec.ActualHours, rec.ActualKm, rec.TSS} {
		if v != nil {
			a.sums[i] += *v
		}
	}
	for i, v := range []*float64{rec.IF, rec.PowerAvg, rec.HRAvg, rec.RPE, rec.Feeling} {
		if v != nil {
			a.means[i] += *v
			a.counts[i]++
		}
	}
}

func (a *accumulator) mean(i int) *float64 {
	if a.counts[i] == 0 {
		return nil
	}
	m := a.means[i] / float64(a.counts[i])
	return &m
}

// groupLabel returns the grouping key of a record, or "" when the record has
// no usable date. Dateless rows group together under the empty key so no
// volume is silently dropped.
func groupLabel(rec Record, key GroupKey) string {
	if rec.WorkoutDay == nil {
		return ""
	}
	if key == GroupByWeek {
		return rec.Week
	}
	return rec.WorkoutDay.Format("2006-01-02")
}

// AggregateBy groups the table by calendar day or ISO week and reduces each
// group: sums for volume fields (nil cells excluded, not coerced to zero
// across the group), arithmetic means for intensity fields (nil when the
// whole group is nil), plus a row count. Groups are returned in ascending
// key order, which is chronological for both day and week keys.
func AggregateBy(t Table, key GroupKey) []Aggregate {
	groups := make(map[string]*accumulator)
	for _, rec := range t.Records {
		label := groupLabel(rec, key)
		acc, ok := groups[label]
		if !ok {
			acc = &accumulator{}
			groups[label] = acc
		}
		acc.add(rec)
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]Aggregate, 0, len(labels))
	for _, label := range labels {
		acc := groups[label]
		out = append(out, Aggregate{
			Key:           label,
			PlannedHours:  acc.sums[0],
			PlannedKm:     acc.sums[1],
			ActualHours:   acc.sums[2],
			ActualKm:      acc.sums[3],
			TSS:           acc.sums[4],
			IF:            acc.mean(0),
			PowerAvg:      acc.mean(1),
			HRAvg:         acc.mean(2),
			RPE:           acc.mean(3),
			Feeling:       acc.mean(4),
			WorkoutsCount: acc.rows,
		})
	}
	return out
}
