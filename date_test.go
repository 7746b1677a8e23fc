package teller

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "3/14/1990", want: "3/14/1990"},
		{in: "12/1/2001", want: "12/1/2001"},
		{in: "02/05/1999", want: "2/5/1999"}, // padding is accepted, never written back
		{in: " 7/4/1976 ", want: "7/4/1976"},
		{in: "13/1/2000", wantErr: true}, // no 13th month
		{in: "2/30/2001", wantErr: true}, // February has no 30th
		{in: "1990-03-14", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseDate(%q).String() = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestNewDate_Validates(t *testing.T) {
	if _, err := NewDate(2001, time.February, 30); err == nil {
		t.Error("NewDate accepted February 30")
	}
	d, err := NewDate(2000, time.February, 29)
	if err != nil {
		t.Errorf("NewDate rejected the leap day: %v", err)
	}
	if d.Year() != 2000 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("NewDate(2000, February, 29) = %v", d)
	}
}
