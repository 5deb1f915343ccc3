/*
File    : mini-script/builtins/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"strings"
	"time"

	"github.com/akashmaji946/mini-script/values"
)

// Timestamps are plain Mini Script numbers: seconds since the Unix epoch,
// UTC, matching the one-numeric-type rule of spec §3.4. time_format and
// time_parse take strftime-style patterns (spec §6.4 requires at least
// "%Y-%m-%d" and "%Y-%m-%d %H:%M:%S"); strftimeToGoLayout translates the
// handful of directives this spec actually uses into Go's reference-time
// layout before handing off to time.Format/time.Parse, grounded on the
// teacher's time.go wrapping those two functions directly rather than
// reimplementing strptime byte-by-byte.
var timeBuiltins = map[string]Func{
	"time_now":     biTimeNow,
	"time_format":  biTimeFormat,
	"time_parse":   biTimeParse,
	"time_year":    biTimeField(func(t time.Time) int { return t.Year() }),
	"time_month":   biTimeField(func(t time.Time) int { return int(t.Month()) }),
	"time_day":     biTimeField(func(t time.Time) int { return t.Day() }),
	"time_hour":    biTimeField(func(t time.Time) int { return t.Hour() }),
	"time_minute":  biTimeField(func(t time.Time) int { return t.Minute() }),
	"time_second":  biTimeField(func(t time.Time) int { return t.Second() }),
	"time_weekday": biTimeWeekday,
	"time_add":     biTimeAdd,
	"time_diff":    biTimeDiff,
	"sleep":        biSleep,
}

// strftimeReplacer maps the strftime directives spec §6.4 requires (plus a
// few common ones) to their Go reference-time equivalents.
var strftimeReplacer = strings.NewReplacer(
	"%Y", "2006",
	"%y", "06",
	"%m", "01",
	"%d", "02",
	"%H", "15",
	"%M", "04",
	"%S", "05",
	"%B", "January",
	"%b", "Jan",
	"%A", "Monday",
	"%a", "Mon",
	"%p", "PM",
	"%%", "%",
)

func strftimeToGoLayout(pattern string) string {
	return strftimeReplacer.Replace(pattern)
}

func toTimestamp(v values.Value) (float64, bool) {
	n, ok := v.(values.Number)
	return n.Value, ok
}

func biTimeNow(args []values.Value, line int) (values.Value, error) {
	if len(args) != 0 {
		return nil, argErr("time_now", 0, len(args))
	}
	return values.Number{Value: float64(time.Now().UTC().Unix())}, nil
}

func biTimeFormat(args []values.Value, line int) (values.Value, error) {
	if len(args) != 2 {
		return nil, argErr("time_format", 2, len(args))
	}
	ts, ok := toTimestamp(args[0])
	if !ok {
		return nil, fmt.Errorf("time_format expects a numeric timestamp, got %s", args[0].Type())
	}
	pattern, ok := args[1].(values.String)
	if !ok {
		return nil, fmt.Errorf("time_format expects a string pattern, got %s", args[1].Type())
	}
	t := time.Unix(int64(ts), 0).UTC()
	return values.String{Value: t.Format(strftimeToGoLayout(pattern.Value))}, nil
}

// biTimeParse returns nil (not an error) when the text doesn't match the
// pattern, per spec §6.4 — a recoverable outcome a Mini Script program can
// branch on, not a host-level failure.
func biTimeParse(args []values.Value, line int) (values.Value, error) {
	if len(args) != 2 {
		return nil, argErr("time_parse", 2, len(args))
	}
	str, ok := args[0].(values.String)
	if !ok {
		return nil, fmt.Errorf("time_parse expects a string, got %s", args[0].Type())
	}
	pattern, ok := args[1].(values.String)
	if !ok {
		return nil, fmt.Errorf("time_parse expects a string pattern, got %s", args[1].Type())
	}
	t, err := time.Parse(strftimeToGoLayout(pattern.Value), str.Value)
	if err != nil {
		return values.NilValue, nil
	}
	return values.Number{Value: float64(t.UTC().Unix())}, nil
}

// biTimeField builds a single-argument builtin that decomposes a timestamp
// with the given time.Time accessor — time_year/month/day/hour/minute/
// second all share this shape.
func biTimeField(field func(time.Time) int) Func {
	return func(args []values.Value, line int) (values.Value, error) {
		if len(args) != 1 {
			return nil, argErr("time field accessor", 1, len(args))
		}
		ts, ok := toTimestamp(args[0])
		if !ok {
			return nil, fmt.Errorf("time field accessor expects a numeric timestamp, got %s", args[0].Type())
		}
		t := time.Unix(int64(ts), 0).UTC()
		return values.Number{Value: float64(field(t))}, nil
	}
}

// biTimeWeekday follows time.Weekday's own convention, 0=Sunday..6=Saturday
// (an Open Question resolution recorded in DESIGN.md).
func biTimeWeekday(args []values.Value, line int) (values.Value, error) {
	if len(args) != 1 {
		return nil, argErr("time_weekday", 1, len(args))
	}
	ts, ok := toTimestamp(args[0])
	if !ok {
		return nil, fmt.Errorf("time_weekday expects a numeric timestamp, got %s", args[0].Type())
	}
	t := time.Unix(int64(ts), 0).UTC()
	return values.Number{Value: float64(int(t.Weekday()))}, nil
}

func biTimeAdd(args []values.Value, line int) (values.Value, error) {
	if len(args) != 2 {
		return nil, argErr("time_add", 2, len(args))
	}
	ts, ok := toTimestamp(args[0])
	if !ok {
		return nil, fmt.Errorf("time_add expects a numeric timestamp, got %s", args[0].Type())
	}
	secs, ok := toTimestamp(args[1])
	if !ok {
		return nil, fmt.Errorf("time_add expects a numeric offset, got %s", args[1].Type())
	}
	return values.Number{Value: ts + secs}, nil
}

func biTimeDiff(args []values.Value, line int) (values.Value, error) {
	if len(args) != 2 {
		return nil, argErr("time_diff", 2, len(args))
	}
	a, ok := toTimestamp(args[0])
	if !ok {
		return nil, fmt.Errorf("time_diff expects a numeric timestamp, got %s", args[0].Type())
	}
	b, ok := toTimestamp(args[1])
	if !ok {
		return nil, fmt.Errorf("time_diff expects a numeric timestamp, got %s", args[1].Type())
	}
	return values.Number{Value: a - b}, nil
}

func biSleep(args []values.Value, line int) (values.Value, error) {
	if len(args) != 1 {
		return nil, argErr("sleep", 1, len(args))
	}
	secs, ok := toTimestamp(args[0])
	if !ok {
		return nil, fmt.Errorf("sleep expects a numeric duration, got %s", args[0].Type())
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return values.NilValue, nil
}
