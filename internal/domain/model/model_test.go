package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUserIsNew(t *testing.T) {
	if !(&User{}).IsNew() {
		t.Fatal("expected zero id user to be new")
	}
	if (&User{ID: 3}).IsNew() {
		t.Fatal("did not expect persisted user to be new")
	}
}

func TestDateOfDropsTimeComponent(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	moment := time.Date(2024, time.March, 1, 2, 30, 0, 0, loc)

	got := DateOf(moment)
	if got.String() != "2024-03-01" {
		t.Fatalf("expected local calendar date, got %s", got)
	}
	if !got.Equal(NewDate(2024, time.March, 1)) {
		t.Fatalf("expected dates to be equal")
	}
	if !DateOf(moment.UTC()).Before(got) {
		t.Fatalf("expected UTC calendar date to be the previous day")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2018-01-01", want: "2018-01-01"},
		{in: "2000-02-29", want: "2000-02-29"},
		{in: "01-01-2018", wantErr: true},
		{in: "2018-13-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, d)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Birthday *Date `json:"birthday"`
	}
	if err := json.Unmarshal([]byte(`{"birthday":"2001-01-01"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Birthday == nil || payload.Birthday.String() != "2001-01-01" {
		t.Fatalf("unexpected birthday %v", payload.Birthday)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"birthday":"2001-01-01"}` {
		t.Fatalf("unexpected json %s", out)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"01-01-2001"`), &d); err == nil {
		t.Fatal("expected legacy format to be rejected")
	}
	if err := json.Unmarshal([]byte(`20010101`), &d); err == nil {
		t.Fatal("expected non string to be rejected")
	}
	if err := json.Unmarshal([]byte(`null`), &d); err != nil || !d.IsZero() {
		t.Fatalf("expected null to leave zero date, got %v err=%v", d, err)
	}
}
