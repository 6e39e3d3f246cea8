//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse implements the filtered query layer of the QuickDrop
// sales dashboard: the filter-to-SQL predicate builder, the aggregate
// query catalog, and the cached aggregation service that executes the
// catalog against the star-schema warehouse.
package warehouse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FilterSet captures the user's active dashboard selection. A nil or
// empty field means "no restriction", never "match nothing". All present
// filters are AND-combined.
//
// Years and Months are legacy filters kept for compatibility with older
// saved dashboards; they can be active alongside DateFrom/DateTo, and a
// contradictory combination (year 2023 with a 2024 date range) simply
// matches zero rows.
type FilterSet struct {
	DateFrom *time.Time
	DateTo   *time.Time

	Cities         []string
	Categories     []string
	PaymentMethods []string

	Years  []int
	Months []int
}

// BuildPredicate converts a FilterSet into a SQL predicate fragment and
// its ordered bind arguments. The fragment is empty when no filter is
// present, otherwise "WHERE " plus AND-joined clauses in a fixed order.
// Filter values only ever travel through bind parameters; none of them
// is interpolated into the SQL text.
//
// Set-valued filters bind the whole slice through "= ANY($n)", so two
// FilterSets differing only in element order produce equivalent
// predicates.
func BuildPredicate(f FilterSet) (string, []any) {
	var clauses []string
	var args []any

	add := func(format string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if len(f.Years) > 0 {
		add("date_dim.year = ANY($%d)", f.Years)
	}
	if len(f.Months) > 0 {
		add("date_dim.month = ANY($%d)", f.Months)
	}
	if len(f.Cities) > 0 {
		add("store_dim.city = ANY($%d)", f.Cities)
	}
	if len(f.Categories) > 0 {
		add("product_dim.category = ANY($%d)", f.Categories)
	}
	if len(f.PaymentMethods) > 0 {
		add("payment_dim.method = ANY($%d)", f.PaymentMethods)
	}
	if f.DateFrom != nil {
		add("date_dim.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("date_dim.date <= $%d", *f.DateTo)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// Key returns a canonical string for the FilterSet, used as part of the
// result cache key. Set values are sorted so that selections differing
// only in order share a cache entry.
func (f FilterSet) Key() string {
	var b strings.Builder

	writeDate := func(tag string, t *time.Time) {
		b.WriteString(tag)
		b.WriteByte('=')
		if t != nil {
			b.WriteString(t.Format("2006-01-02"))
		}
		b.WriteByte(';')
	}
	writeStrs := func(tag string, vals []string) {
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		b.WriteString(tag)
		b.WriteByte('=')
		b.WriteString(strings.Join(sorted, ","))
		b.WriteByte(';')
	}
	writeInts := func(tag string, vals []int) {
		sorted := append([]int(nil), vals...)
		sort.Ints(sorted)
		b.WriteString(tag)
		b.WriteByte('=')
		for i, v := range sorted {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(';')
	}

	writeDate("from", f.DateFrom)
	writeDate("to", f.DateTo)
	writeStrs("cities", f.Cities)
	writeStrs("categories", f.Categories)
	writeStrs("methods", f.PaymentMethods)
	writeInts("years", f.Years)
	writeInts("months", f.Months)

	return b.String()
}
