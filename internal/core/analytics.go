package core

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Summary is the profit overview computed over a user's full
// transaction set.
type Summary struct {
	TotalSales        float64 `json:"totalSales"`
	TotalExpenses     float64 `json:"totalExpenses"`
	Profit            float64 `json:"profit"`
	TotalTransactions int     `json:"totalTransactions"`
}

// ComputeSummary sums sale and expense amounts over the given set.
// An empty set yields all-zero totals.
func ComputeSummary(txs []Transaction) Summary {
	s := Summary{TotalTransactions: len(txs)}
	for _, t := range txs {
		switch t.Type {
		case Sale:
			s.TotalSales += t.Amount
		case Expense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Profit = s.TotalSales - s.TotalExpenses
	return s
}

// ItemCount pairs a lowercased item name with its occurrence count.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayOfWeekCounts holds one counter per weekday, Sunday first. It
// marshals as an object keyed by weekday name in that fixed order.
type DayOfWeekCounts [7]int

func (c DayOfWeekCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range weekdayNames {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		n, err := json.Marshal(c[i])
		if err != nil {
			return nil, err
		}
		buf.Write(n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TopItemsByDay holds the most sold item per weekday, Sunday first,
// nil where no sales fall on that weekday. It marshals as an object
// keyed by weekday name, nil entries as JSON null.
type TopItemsByDay [7]*ItemCount

func (t TopItemsByDay) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range weekdayNames {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		v, err := json.Marshal(t[i])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MonthTotals accumulates amounts for one "Jan 2006" bucket. Profit
// is kept consistent after every increment, not recomputed at the end.
type MonthTotals struct {
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// MonthlyBreakdown groups totals by month label, remembering the
// order in which labels were first seen. Marshalling preserves that
// order rather than sorting keys, so the serialized object reads in
// encounter order like the API always has.
type MonthlyBreakdown struct {
	labels []string
	totals map[string]*MonthTotals
}

func (b *MonthlyBreakdown) add(label string, t Transaction) {
	if b.totals == nil {
		b.totals = make(map[string]*MonthTotals)
	}
	m, ok := b.totals[label]
	if !ok {
		m = &MonthTotals{}
		b.totals[label] = m
		b.labels = append(b.labels, label)
	}
	if t.Type == Sale {
		m.Sales += t.Amount
	} else {
		m.Expenses += t.Amount
	}
	m.Profit = m.Sales - m.Expenses
}

// Labels returns the month labels in first-occurrence order.
func (b MonthlyBreakdown) Labels() []string {
	return b.labels
}

// Month returns the totals for the given label.
func (b MonthlyBreakdown) Month(label string) (MonthTotals, bool) {
	m, ok := b.totals[label]
	if !ok {
		return MonthTotals{}, false
	}
	return *m, true
}

func (b MonthlyBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range b.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(label)
		buf.Write(key)
		buf.WriteByte(':')
		v, err := json.Marshal(b.totals[label])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Analytics is the derived read-only view over a user's transactions.
type Analytics struct {
	TopSellingItems         []ItemCount      `json:"topSellingItems"`
	TopExpenses             []ItemCount      `json:"topExpenses"`
	TransactionsByDayOfWeek DayOfWeekCounts  `json:"transactionsByDayOfWeek"`
	TopItemByDayOfWeek      TopItemsByDay    `json:"topItemByDayOfWeek"`
	MonthlyBreakdown        MonthlyBreakdown `json:"monthlyBreakdown"`
}

// itemCounter counts occurrences while remembering first-encounter
// order, which is the tie-break for equal counts.
type itemCounter struct {
	order  []string
	counts map[string]int
}

func newItemCounter() *itemCounter {
	return &itemCounter{counts: make(map[string]int)}
}

func (c *itemCounter) add(item string) {
	key := strings.ToLower(item)
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns up to limit entries sorted by count descending.
// The sort is stable over encounter order.
func (c *itemCounter) ranked(limit int) []ItemCount {
	out := make([]ItemCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, ItemCount{Item: key, Count: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// top returns the single highest-count entry, or nil if empty.
func (c *itemCounter) top() *ItemCount {
	ranked := c.ranked(1)
	if len(ranked) == 0 {
		return nil
	}
	return &ranked[0]
}

// ComputeAnalytics derives the full analytics view from the given
// set. Day-of-week and month bucketing use the transaction date in
// local time. An empty input yields the zero Analytics value; callers
// respond with an empty object in that case.
func ComputeAnalytics(txs []Transaction) Analytics {
	var a Analytics
	if len(txs) == 0 {
		return a
	}

	saleItems := newItemCounter()
	expenseItems := newItemCounter()
	var salesByDay [7]*itemCounter

	for _, t := range txs {
		day := int(t.Date.Local().Weekday())
		a.TransactionsByDayOfWeek[day]++
		a.MonthlyBreakdown.add(t.Date.Local().Format("Jan 2006"), t)

		switch t.Type {
		case Sale:
			saleItems.add(t.Item)
			if salesByDay[day] == nil {
				salesByDay[day] = newItemCounter()
			}
			salesByDay[day].add(t.Item)
		case Expense:
			expenseItems.add(t.Item)
		}
	}

	a.TopSellingItems = saleItems.ranked(10)
	a.TopExpenses = expenseItems.ranked(10)
	for day, counter := range salesByDay {
		if counter != nil {
			a.TopItemByDayOfWeek[day] = counter.top()
		}
	}
	return a
}
