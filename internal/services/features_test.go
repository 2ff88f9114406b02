package services

import (
	"testing"

	"fleet-ai-service/internal/ml"
)

func TestEncodeFeaturesOrderIsStable(t *testing.T) {
	in := TripFeatures{
		Distance:    25.5,
		VehicleType: "TRUCK",
		IsElectric:  true,
		HourOfDay:   8,
		DayOfWeek:   7,
		Speed:       45,
	}

	got := EncodeFeatures(in)
	want := []float64{25.5, 4, 1, 8, 7, 1, 1, 45}

	if len(got) != ml.NumFeatures {
		t.Fatalf("vector length = %d, want %d", len(got), ml.NumFeatures)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Same input, same vector, every call.
	again := EncodeFeatures(in)
	for i := range got {
		if got[i] != again[i] {
			t.Fatalf("encoding is not deterministic at index %d", i)
		}
	}
}

func TestEncodeVehicleType(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"BIKE", 0},
		{"SEDAN", 1},
		{"SUV", 2},
		{"VAN", 3},
		{"TRUCK", 4},
		{"BUS", 5},
		{"sedan", 1},
		{"  bus ", 5},
		{"HOVERCRAFT", 1},
		{"", 1},
	}

	for _, c := range cases {
		if got := encodeVehicleType(c.in); got != c.want {
			t.Errorf("encodeVehicleType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRushHourBands(t *testing.T) {
	rush := map[int]bool{7: true, 8: true, 9: true, 17: true, 18: true, 19: true}
	for hour := 0; hour < 24; hour++ {
		want := 0.0
		if rush[hour] {
			want = 1
		}
		if got := isRushHour(hour); got != want {
			t.Errorf("isRushHour(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestWeekendDays(t *testing.T) {
	for day := 1; day <= 7; day++ {
		want := 0.0
		if day == 1 || day == 7 {
			want = 1
		}
		if got := isWeekend(day); got != want {
			t.Errorf("isWeekend(%d) = %v, want %v", day, got, want)
		}
	}
}

func TestEncodeFeaturesZeroValueDefaults(t *testing.T) {
	got := EncodeFeatures(TripFeatures{})
	want := []float64{0, 1, 0, 0, 0, 0, 0, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
