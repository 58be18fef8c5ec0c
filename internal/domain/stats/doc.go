// Package stats computes classroom statistics over a snapshot of student
// records: per-subject averages, the class mean, above-average ranking and
// low-attendance / needs-attention flagging.
//
// Every aggregate over an empty snapshot fails with domain.ErrEmptyClass.
// Values meant for presentation are rounded with Round; comparisons always
// use full precision so that rounding never moves a student across a boundary.
package stats
