package refdate

import (
	"testing"
	"time"
)

var testNow = time.Date(2017, 5, 11, 9, 30, 0, 0, time.UTC)

func TestParseNowKeywords(t *testing.T) {
	for _, input := range []string{"", "now", "Today", "  now  "} {
		got, err := Parse(input, testNow, time.UTC)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", input, err)
			continue
		}
		if !got.Equal(testNow) {
			t.Errorf("Parse(%q) = %v, want %v", input, got, testNow)
		}
	}
}

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2017-05-11", time.Date(2017, 5, 11, 0, 0, 0, 0, time.UTC)},
		{"05/11/2017", time.Date(2017, 5, 11, 0, 0, 0, 0, time.UTC)},
		{"2017-05-11 15:04:05", time.Date(2017, 5, 11, 15, 4, 5, 0, time.UTC)},
		{"May 11, 2017", time.Date(2017, 5, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input, testNow, time.UTC)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	got, err := Parse("2017-05-11", testNow, loc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := time.Date(2017, 5, 11, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("Parse in UTC+2 = %v, want %v", got, want)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not a date at all", testNow, time.UTC); err == nil {
		t.Error("Parse: expected error")
	}
}
