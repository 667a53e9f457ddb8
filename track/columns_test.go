package track

import (
	"errors"
	"strings"
	"testing"
)

func TestStrictResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Mapping
	}{
		{
			name:    "descriptive headers",
			columns: []string{"Latitude (deg)", "Longitude (deg)", "Course Over Ground"},
			want:    Mapping{Latitude: "Latitude (deg)", Longitude: "Longitude (deg)", Heading: "Course Over Ground"},
		},
		{
			name:    "padded and upper case",
			columns: []string{"  LATITUDE ", " LONG", "COURSE\t"},
			want:    Mapping{Latitude: "  LATITUDE ", Longitude: " LONG", Heading: "COURSE\t"},
		},
		{
			name:    "extra columns are ignored",
			columns: []string{"time", "latitude", "altitude", "longitude", "speed", "course"},
			want:    Mapping{Latitude: "latitude", Longitude: "longitude", Heading: "course"},
		},
		{
			name:    "first match wins per category",
			columns: []string{"latitude", "longitude", "course", "latitude_2", "course_true"},
			want:    Mapping{Latitude: "latitude", Longitude: "longitude", Heading: "course"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrictResolver.Resolve(tt.columns)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestStrictResolver_FailureNamesMissingCategories(t *testing.T) {
	columns := []string{"x", "y", "z"}
	_, err := StrictResolver.Resolve(columns)
	if err == nil {
		t.Fatal("expected resolution error")
	}

	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResolutionError, got %T", err)
	}
	wantMissing := []string{"latitude", "longitude", "course"}
	if strings.Join(rerr.Missing, ",") != strings.Join(wantMissing, ",") {
		t.Errorf("expected missing %v, got %v", wantMissing, rerr.Missing)
	}
	if strings.Join(rerr.Available, ",") != "x,y,z" {
		t.Errorf("expected available columns x,y,z, got %v", rerr.Available)
	}
	for _, s := range []string{"latitude", "longitude", "course", `"x"`, `"y"`, `"z"`} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("error message %q should mention %s", err.Error(), s)
		}
	}
	t.Logf("✓ Resolution failure: %v", err)
}

func TestStrictResolver_PartialFailure(t *testing.T) {
	m, err := StrictResolver.Resolve([]string{"Latitude", "Longitude", "Heading"})
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResolutionError, got %v", err)
	}
	if len(rerr.Missing) != 1 || rerr.Missing[0] != "course" {
		t.Errorf("expected only course missing, got %v", rerr.Missing)
	}
	if m.Latitude != "Latitude" || m.Longitude != "Longitude" {
		t.Errorf("resolved fields should still be reported, got %+v", m)
	}
}

func TestPermissiveResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    Mapping
	}{
		{
			name:    "short names",
			columns: []string{"lat", "lon", "heading"},
			want:    Mapping{Latitude: "lat", Longitude: "lon", Heading: "heading"},
		},
		{
			name:    "long names also match",
			columns: []string{"Latitude", "Longitude", "Heading (deg)"},
			want:    Mapping{Latitude: "Latitude", Longitude: "Longitude", Heading: "Heading (deg)"},
		},
		{
			name:    "name matching two categories goes to the first tested",
			columns: []string{"lat_long", "lon", "head"},
			want:    Mapping{Latitude: "lat_long", Longitude: "lon", Heading: "head"},
		},
		{
			name:    "no backtracking when the first category is taken",
			columns: []string{"lat", "lat_long", "head"},
			want:    Mapping{Latitude: "lat", Heading: "head"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PermissiveResolver.Match(tt.columns)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPermissiveResolver_FailureLabels(t *testing.T) {
	_, err := PermissiveResolver.Resolve([]string{"x", "y", "z"})
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResolutionError, got %v", err)
	}
	if strings.Join(rerr.Missing, ",") != "lat,lon,head" {
		t.Errorf("expected lat,lon,head missing, got %v", rerr.Missing)
	}
}

func TestResolver_Idempotent(t *testing.T) {
	columns := []string{"time", "GPS Latitude", "GPS Longitude", "Course", "Course (mag)"}
	first, err := StrictResolver.Resolve(columns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := StrictResolver.Resolve(columns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Errorf("run %d: expected %+v, got %+v", i, first, again)
		}
	}
	if strings.Join(columns, ",") != "time,GPS Latitude,GPS Longitude,Course,Course (mag)" {
		t.Error("Resolve should not modify the column list")
	}
}

func TestFieldString(t *testing.T) {
	if FieldHeading.String() != "heading" {
		t.Errorf("expected heading, got %s", FieldHeading)
	}
	if Field(9).String() != "unknown" {
		t.Errorf("expected unknown, got %s", Field(9))
	}
}
