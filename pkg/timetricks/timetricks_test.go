package timetricks

import (
	"fmt"
	"testing"
	"time"
)

func TestFormatLocalRoundTrip(t *testing.T) {
	// Localizing and re-parsing in the same zone must recover the exact
	// timestamp, including across a DST boundary and in a fixed zone.
	zones := []*time.Location{
		mustLoad(t, "America/Los_Angeles"),
		mustLoad(t, "Pacific/Auckland"),
		time.UTC,
		FixedZone(-7),
		FixedZone(5.5),
	}
	stamps := []int64{
		1660460400, // 2022-08-14, mid forecast season
		1667736000, // 2022-11-06 04:00 PST, after the US fall-back
		0,
	}

	for _, loc := range zones {
		for _, unix := range stamps {
			formatted := FormatLocal(unix, loc)
			parsed, err := time.ParseInLocation(LocalFormat, formatted, loc)
			if err != nil {
				t.Fatalf("parse %q in %v: %v", formatted, loc, err)
			}
			if got := parsed.Unix(); got != unix {
				t.Errorf("round trip in %v: got %d, want %d (via %q)", loc, got, unix, formatted)
			}
		}
	}
}

func TestFormatLocalFallBackAmbiguity(t *testing.T) {
	// 1667725200 is the second 01:00 on the US fall-back day. The wall
	// clock alone cannot say which 01:00 it was, so a round trip through
	// an IANA zone is lossy here; only a fixed offset recovers it.
	la := mustLoad(t, "America/Los_Angeles")
	const unix = 1667725200

	formatted := FormatLocal(unix, la)
	if want := "2022-11-06 01:00:00"; formatted != want {
		t.Fatalf("formatted = %q, want %q", formatted, want)
	}

	parsed, err := time.ParseInLocation(LocalFormat, FormatLocal(unix, FixedZone(-8)), FixedZone(-8))
	if err != nil {
		t.Fatalf("parse in fixed zone: %v", err)
	}
	if got := parsed.Unix(); got != unix {
		t.Errorf("fixed zone round trip = %d, want %d", got, unix)
	}
}

func TestLocalHour(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")
	// 2022-08-14 06:00:00 PDT == 13:00 UTC.
	if got := LocalHour(1660482000, la); got != 6 {
		t.Errorf("LocalHour = %d, want 6", got)
	}
	if got := LocalHour(1660482000, time.UTC); got != 13 {
		t.Errorf("LocalHour in UTC = %d, want 13", got)
	}
}

func ExampleFixedZone() {
	fmt.Println(FormatLocal(1660460400, FixedZone(-7)))
	// Output:
	// 2022-08-14 00:00:00
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}
