package services

import (
	"math"
	"strings"

	"fleet-ai-service/internal/domain"
)

// Raw trip attributes for a single ETA request or training row.
type TripFeatures struct {
	Distance    float64
	VehicleType string
	IsElectric  bool
	HourOfDay   int
	DayOfWeek   int
	Speed       float64
}

// Closed vehicle type enumeration. Unrecognized types fall back to the
// sedan code rather than failing.
var vehicleTypeCodes = map[string]float64{
	"BIKE":  0,
	"SEDAN": 1,
	"SUV":   2,
	"VAN":   3,
	"TRUCK": 4,
	"BUS":   5,
}

const defaultVehicleCode = 1

// EncodeFeatures builds the fixed-order feature vector:
// [distance, vehicleType, isElectric, hourOfDay, dayOfWeek, isRushHour,
// isWeekend, speed]. The order must match between training and inference;
// it is the single most important invariant of the pipeline.
func EncodeFeatures(in TripFeatures) []float64 {
	return []float64{
		in.Distance,
		encodeVehicleType(in.VehicleType),
		boolToFloat(in.IsElectric),
		float64(in.HourOfDay),
		float64(in.DayOfWeek),
		isRushHour(in.HourOfDay),
		isWeekend(in.DayOfWeek),
		in.Speed,
	}
}

// recordFeatures encodes a historical trip for training, deriving the
// time-of-day features from the trip start. Weekday numbering follows the
// store's 1=Sunday convention.
func recordFeatures(rec domain.TripRecord) []float64 {
	return EncodeFeatures(TripFeatures{
		Distance:    rec.Distance,
		VehicleType: rec.VehicleType,
		IsElectric:  rec.IsElectric,
		HourOfDay:   rec.StartTime.Hour(),
		DayOfWeek:   int(rec.StartTime.Weekday()) + 1,
		Speed:       rec.Speed,
	})
}

func encodeVehicleType(vehicleType string) float64 {
	code, ok := vehicleTypeCodes[strings.ToUpper(strings.TrimSpace(vehicleType))]
	if !ok {
		return defaultVehicleCode
	}
	return code
}

func isRushHour(hour int) float64 {
	if (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19) {
		return 1
	}
	return 0
}

func isWeekend(day int) float64 {
	if day == 1 || day == 7 {
		return 1
	}
	return 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
