package mediameta

import (
	"time"
)

// Meta holds the normalized metadata extracted from an uploaded image.
// Fields that the source file does not carry stay nil so callers can
// persist them as NULL instead of fabricated zero values.
type Meta struct {
	TakenAt     *time.Time
	Width       int
	Height      int
	CameraMake  *string
	CameraModel *string
	Copyright   *string
	FocalLength *int
	Aperture    *float64
	Latitude    *float64
	Longitude   *float64
	Altitude    *float64
}

// Empty reports whether no metadata at all was extracted.
func (m *Meta) Empty() bool {
	return m.TakenAt == nil && m.Width == 0 && m.Height == 0 &&
		m.CameraMake == nil && m.CameraModel == nil && m.Copyright == nil &&
		m.FocalLength == nil && m.Aperture == nil &&
		m.Latitude == nil && m.Longitude == nil && m.Altitude == nil
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
