package mediameta

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lensvault/lensvault/pkg/util"

	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	riimage "github.com/dsoprea/go-utility/image"
	"github.com/pkg/errors"
)

var (
	exifIfdMapping     *exifcommon.IfdMapping
	exifTagIndex       = exif.NewTagIndex()
	exifDateTimeTags   = []string{"DateTimeOriginal", "DateTimeCreated", "CreateDate", "DateTime", "DateTimeDigitized"}
	ExifDateTimeMatch  = make(map[string]int)
	ExifDateTimeRegexp = regexp.MustCompile("((?P<year>\\d{4})|\\D{4})\\D((?P<month>\\d{2})|\\D{2})\\D((?P<day>\\d{2})|\\D{2})\\D((?P<h>\\d{2})|\\D{2})\\D((?P<m>\\d{2})|\\D{2})\\D((?P<s>\\d{2})|\\D{2})(\\.(?P<subsec>\\d+))?(?P<z>\\D)?(?P<zh>\\d{2})?\\D?(?P<zm>\\d{2})?")
	YearMax            = time.Now().Add(OneYear * 3).Year()
)

const (
	OneYear = time.Hour * 24 * 365
	LatMax  = 90
	LngMax  = 180
)

func init() {
	exifIfdMapping = exifcommon.NewIfdMapping()
	_ = exifcommon.LoadStandardIfds(exifIfdMapping)
	names := ExifDateTimeRegexp.SubexpNames()
	for i := 0; i < len(names); i++ {
		if name := names[i]; name != "" {
			ExifDateTimeMatch[name] = i
		}
	}
}

// Reference: https://github.com/photoprism/photoprism/blob/602097635f1c84d91f2d919f7aedaef7a07fc458/internal/meta/exif.go
//
// Extract reads the EXIF block of the given image and maps it onto a Meta.
// Formats without a structural parser fall back to a brute force scan, so
// camera raw files still yield their embedded EXIF data. A file without any
// EXIF block is not an error; an empty Meta is returned instead.
func Extract(ext string, rs io.ReadSeeker, size int64) (*Meta, error) {
	var (
		err      error
		exifData []byte
	)
	parser := getExifParser(ext)
	if parser != nil {
		var res riimage.MediaContext
		res, err = parser.Parse(rs, int(size))
		if err != nil {
			err = fmt.Errorf("failed to parse image structure: %s", err)
		} else {
			_, exifData, err = res.Exif()
			if err != nil {
				err = fmt.Errorf("failed to locate exif root: %s", err)
			}
		}
	}

	if parser == nil || err != nil {
		if _, serr := rs.Seek(0, io.SeekStart); serr != nil {
			return nil, serr
		}
		exifData, err = exif.SearchAndExtractExifWithReader(rs)
		if err != nil {
			if errors.Is(err, exif.ErrNoExif) {
				return &Meta{}, nil
			}
			return nil, fmt.Errorf("failed to scan for exif data: %s", err)
		}
	}

	entries, _, err := exif.GetFlatExifData(exifData, &exif.ScanOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse exif entries: %s", err)
	}

	exifMap := make(map[string]string, len(entries))
	for _, tag := range entries {
		s := strings.Split(tag.FormattedFirst, "\x00")
		if tag.TagName == "" || len(s) == 0 {
		} else if s[0] != "" && (exifMap[tag.TagName] == "" || tag.IfdPath != exif.ThumbnailFqIfdPath) {
			exifMap[tag.TagName] = s[0]
		}
	}

	if len(exifMap) == 0 {
		return &Meta{}, nil
	}

	meta := &Meta{}
	takenTimeGps := time.Time{}

	// Extract GPS info
	var ifdIndex exif.IfdIndex
	_, ifdIndex, err = exif.Collect(exifIfdMapping, exifTagIndex, exifData)
	if err != nil {
		util.Log().Debug("Failed to collect exif data: %s", err)
	} else {
		var ifd *exif.Ifd
		if ifd, err = ifdIndex.RootIfd.ChildWithIfdPath(exifcommon.IfdGpsInfoStandardIfdIdentity); err == nil {
			var gi *exif.GpsInfo
			if gi, err = ifd.GpsInfo(); err != nil {
				util.Log().Debug("Failed to collect exif gps data: %s", err)
			} else {
				if !math.IsNaN(gi.Latitude.Decimal()) && !math.IsNaN(gi.Longitude.Decimal()) {
					lat, lng := NormalizeGPS(gi.Latitude.Decimal(), gi.Longitude.Decimal())
					meta.Latitude = floatPtr(lat)
					meta.Longitude = floatPtr(lng)
				} else if gi.Altitude != 0 || !gi.Timestamp.IsZero() {
					util.Log().Warning("GPS data is invalid: %s", gi.String())
				}

				if gi.Altitude != 0 {
					meta.Altitude = floatPtr(float64(gi.Altitude))
				}

				if !gi.Timestamp.IsZero() {
					takenTimeGps = gi.Timestamp
				}
			}
		}
	}

	ExtractExifMap(meta, exifMap, takenTimeGps)
	return meta, nil
}

// ExtractExifMap fills meta from a flat tag-name-to-value map. Exported in
// this flattened form so the mapping logic stays testable without real
// image bytes.
func ExtractExifMap(meta *Meta, exifMap map[string]string, gpsTime time.Time) {
	if value, ok := exifMap["Copyright"]; ok {
		if s := SanitizeString(value); s != "" {
			meta.Copyright = strPtr(s)
		}
	}

	cameraModel := ""
	if value, ok := exifMap["CameraModel"]; ok && !IsUInt(value) {
		cameraModel = SanitizeString(value)
	} else if value, ok = exifMap["Model"]; ok && !IsUInt(value) {
		cameraModel = SanitizeString(value)
	} else if value, ok = exifMap["UniqueCameraModel"]; ok && !IsUInt(value) {
		cameraModel = SanitizeString(value)
	}
	if cameraModel != "" {
		meta.CameraModel = strPtr(cameraModel)
	}

	cameraMake := ""
	if value, ok := exifMap["CameraMake"]; ok && !IsUInt(value) {
		cameraMake = SanitizeString(value)
	} else if value, ok = exifMap["Make"]; ok && !IsUInt(value) {
		cameraMake = SanitizeString(value)
	}
	if cameraMake != "" {
		meta.CameraMake = strPtr(cameraMake)
	}

	if value, ok := exifMap["FNumber"]; ok {
		values := strings.Split(value, "/")
		if len(values) == 2 && values[1] != "0" && values[1] != "" {
			number, _ := strconv.ParseFloat(values[0], 64)
			denom, _ := strconv.ParseFloat(values[1], 64)
			meta.Aperture = floatPtr(math.Round((number/denom)*1000) / 1000)
		}
	} else if value, ok := exifMap["ApertureValue"]; ok {
		values := strings.Split(value, "/")
		if len(values) == 2 && values[1] != "0" && values[1] != "" {
			number, _ := strconv.ParseFloat(values[0], 64)
			denom, _ := strconv.ParseFloat(values[1], 64)
			meta.Aperture = floatPtr(math.Round((number/denom)*1000) / 1000)
		}
	}

	focalLength := 0
	if value, ok := exifMap["FocalLengthIn35mmFilm"]; ok {
		focalLength = Int(value)
	} else if v, ok := exifMap["FocalLength"]; ok {
		values := strings.Split(v, "/")
		if len(values) == 2 && values[1] != "0" && values[1] != "" {
			number, _ := strconv.ParseFloat(values[0], 64)
			denom, _ := strconv.ParseFloat(values[1], 64)
			focalLength = int(math.Round(number / denom))
		}
	}
	if focalLength > 0 {
		meta.FocalLength = intPtr(focalLength)
	}

	if value, ok := exifMap["PixelXDimension"]; ok {
		meta.Width = Int(value)
	} else if value, ok := exifMap["ImageWidth"]; ok {
		meta.Width = Int(value)
	}

	if value, ok := exifMap["PixelYDimension"]; ok {
		meta.Height = Int(value)
	} else if value, ok := exifMap["ImageLength"]; ok {
		meta.Height = Int(value)
	}

	takeTime := time.Time{}
	for _, name := range exifDateTimeTags {
		if dateTime := DateTime(exifMap[name], ""); !dateTime.IsZero() {
			takeTime = dateTime
			break
		}
	}
	if takeTime.IsZero() && !gpsTime.IsZero() {
		takeTime = gpsTime.UTC()
	}
	if !takeTime.IsZero() {
		meta.TakenAt = &takeTime
	}
}

func getExifParser(ext string) exifParser {
	switch ext {
	case "jpg", "jpeg":
		return jpegstructure.NewJpegMediaParser()
	case "png":
		return pngstructure.NewPngMediaParser()
	default:
		return nil
	}
}

type exifParser interface {
	Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
}

// GpsToDecimal converts a degrees/minutes/seconds reading to a decimal
// coordinate. Southern and western references yield negative values.
func GpsToDecimal(deg, min, sec float64, ref string) float64 {
	value := deg + min/60 + sec/3600
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		return -value
	default:
		return value
	}
}

// NormalizeGPS normalizes the longitude and latitude of the GPS position to a generally valid range.
func NormalizeGPS(lat, lng float64) (float64, float64) {
	if lat < -LatMax || lat > LatMax || lng < -LngMax || lng > LngMax {
		// Clip the latitude. Normalise the longitude.
		lat, lng = clipLat(lat), normalizeLng(lng)
	}

	return lat, lng
}

func clipLat(lat float64) float64 {
	if lat > LatMax*2 {
		return math.Mod(lat, LatMax)
	} else if lat > LatMax {
		return lat - LatMax
	}

	if lat < -LatMax*2 {
		return math.Mod(lat, LatMax)
	} else if lat < -LatMax {
		return lat + LatMax
	}

	return lat
}

func normalizeLng(value float64) float64 {
	return normalizeCoord(value, LngMax)
}

func normalizeCoord(value, max float64) float64 {
	for value < -max {
		value += 2 * max
	}
	for value >= max {
		value -= 2 * max
	}
	return value
}

// SanitizeString removes unwanted character from an exif value string.
func SanitizeString(s string) string {
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "string with binary data") {
		return ""
	} else if strings.HasPrefix(s, "(Binary data") {
		return ""
	}

	return SanitizeUnicode(strings.Replace(s, "\"", "", -1))
}

// SanitizeUnicode returns the string as valid Unicode with whitespace trimmed.
func SanitizeUnicode(s string) string {
	if s == "" {
		return ""
	}

	return unicode(strings.TrimSpace(s))
}

func unicode(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder

	for _, c := range s {
		if c == '�' {
			continue
		}
		b.WriteRune(c)
	}

	return b.String()
}

func IsUInt(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < 48 || r > 57 {
			return false
		}
	}

	return true
}

// DateTime parses a time string and returns a valid time.Time if possible.
func DateTime(s, timeZone string) (t time.Time) {
	defer func() {
		if r := recover(); r != nil {
			// Panic? Return unknown time.
			t = time.Time{}
		}
	}()

	// Ignore defaults.
	if DateTimeDefault(s) {
		return time.Time{}
	}

	s = strings.TrimLeft(s, " ")

	// Timestamp too short?
	if len(s) < 4 {
		return time.Time{}
	} else if len(s) > 50 {
		// Clip to max length.
		s = s[:50]
	}

	// Pad short timestamp with whitespace at the end.
	s = fmt.Sprintf("%-19s", s)

	v := ExifDateTimeMatch
	m := ExifDateTimeRegexp.FindStringSubmatch(s)

	// Pattern doesn't match? Return unknown time.
	if len(m) == 0 {
		return time.Time{}
	}

	// Default to UTC.
	tz := time.UTC

	// Local time zone currently not supported (undefined).
	if timeZone == time.Local.String() {
		timeZone = ""
	}

	// Set time zone.
	loc := TimeZone(timeZone)

	// Location found?
	if loc != nil && timeZone != "" && tz != time.Local {
		tz = loc
		timeZone = tz.String()
	} else {
		timeZone = ""
	}

	// Does the timestamp contain a time zone offset?
	z := m[v["z"]]                     // Supported values, if not empty: Z, +, -
	zh := IntVal(m[v["zh"]], 0, 23, 0) // Hours.
	zm := IntVal(m[v["zm"]], 0, 59, 0) // Minutes.

	// Valid time zone offset found?
	if offset := (zh*60 + zm) * 60; offset > 0 && offset <= 86400 {
		// Offset timezone name example: UTC+03:30
		if z == "+" {
			// Positive offset relative to UTC.
			tz = time.FixedZone(fmt.Sprintf("UTC+%02d:%02d", zh, zm), offset)
		} else if z == "-" {
			// Negative offset relative to UTC.
			tz = time.FixedZone(fmt.Sprintf("UTC-%02d:%02d", zh, zm), -1*offset)
		}
	}

	var nsec int

	if subsec := m[v["subsec"]]; subsec != "" {
		nsec = Int(subsec + strings.Repeat("0", 9-len(subsec)))
	} else {
		nsec = 0
	}

	// Create rounded timestamp from parsed input values.
	// Year 0 is treated separately as it has a special meaning in exiftool. Golang
	// does not seem to accept value 0 for the year, but considers a date to be
	// "zero" when year is 1.
	year := IntVal(m[v["year"]], 0, YearMax, time.Now().Year())
	if year == 0 {
		year = 1
	}
	t = time.Date(
		year,
		time.Month(IntVal(m[v["month"]], 1, 12, 1)),
		IntVal(m[v["day"]], 1, 31, 1),
		IntVal(m[v["h"]], 0, 23, 0),
		IntVal(m[v["m"]], 0, 59, 0),
		IntVal(m[v["s"]], 0, 59, 0),
		nsec,
		tz)

	if timeZone != "" && loc != nil && loc != tz {
		return t.In(loc)
	}

	return t
}

// Int converts a string to a signed integer or 0 if invalid.
func Int(s string) int {
	if s == "" {
		return 0
	}

	result, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)

	if err != nil {
		return 0
	}

	return int(result)
}

// IntVal converts a string to a validated integer or a default if invalid.
func IntVal(s string, min, max, def int) (i int) {
	if s == "" {
		return def
	} else if s[0] == ' ' {
		s = strings.TrimSpace(s)
	}

	result, err := strconv.ParseInt(s, 10, 32)

	if err != nil {
		return def
	}

	i = int(result)

	if i < min {
		return def
	} else if max != 0 && i > max {
		return def
	}

	return i
}

// DateTimeDefault tests if the datetime string is not empty and not a default value.
func DateTimeDefault(s string) bool {
	switch s {
	case "1970-01-01", "1970-01-01 00:00:00", "1970:01:01 00:00:00":
		// Unix epoch.
		return true
	case "1980-01-01", "1980-01-01 00:00:00", "1980:01:01 00:00:00":
		// Windows default.
		return true
	case "2002-12-08 12:00:00", "2002:12:08 12:00:00":
		// Android Bug: https://issuetracker.google.com/issues/36967504
		return true
	default:
		return EmptyDateTime(s)
	}
}

// EmptyDateTime tests if the string is empty or matches an unknown time pattern.
func EmptyDateTime(s string) bool {
	switch s {
	case "", "-", ":", "z", "Z", "nil", "null", "none", "nan", "NaN":
		return true
	case "0", "00", "0000", "0000:00:00", "00:00:00", "0000-00-00", "00-00-00":
		return true
	case "    :  :     :  :  ", "    -  -     -  -  ", "    -  -     :  :  ":
		// Exif default.
		return true
	case "0000:00:00 00:00:00", "0000-00-00 00-00-00", "0000-00-00 00:00:00":
		return true
	case "0001:01:01 00:00:00", "0001-01-01 00-00-00", "0001-01-01 00:00:00":
		// Go default.
		return true
	case "0001:01:01 00:00:00 +0000 UTC", "0001-01-01 00-00-00 +0000 UTC", "0001-01-01 00:00:00 +0000 UTC":
		// Go default with time zone.
		return true
	default:
		return false
	}
}

// TimeZone returns a time zone for the given UTC offset string.
func TimeZone(offset string) *time.Location {
	if offset == "" {
		// Local time.
	} else if offset == "UTC" || offset == "Z" {
		return time.UTC
	} else if seconds, err := TimeOffset(offset); err == nil {
		if h := seconds / 3600; h > 0 || h < 0 {
			return time.FixedZone(fmt.Sprintf("UTC%+d", h), seconds)
		}
	} else if zone, zoneErr := time.LoadLocation(offset); zoneErr == nil {
		return zone
	}

	return time.FixedZone("", 0)
}

// TimeOffset returns the UTC time offset in seconds or an error if it is invalid.
func TimeOffset(utcOffset string) (seconds int, err error) {
	switch utcOffset {
	case "-12", "-12:00", "UTC-12", "UTC-12:00":
		seconds = -12 * 3600
	case "-11", "-11:00", "UTC-11", "UTC-11:00":
		seconds = -11 * 3600
	case "-10", "-10:00", "UTC-10", "UTC-10:00":
		seconds = -10 * 3600
	case "-9", "-09", "-09:00", "UTC-9", "UTC-09:00":
		seconds = -9 * 3600
	case "-8", "-08", "-08:00", "UTC-8", "UTC-08:00":
		seconds = -8 * 3600
	case "-7", "-07", "-07:00", "UTC-7", "UTC-07:00":
		seconds = -7 * 3600
	case "-6", "-06", "-06:00", "UTC-6", "UTC-06:00":
		seconds = -6 * 3600
	case "-5", "-05", "-05:00", "UTC-5", "UTC-05:00":
		seconds = -5 * 3600
	case "-4", "-04", "-04:00", "UTC-4", "UTC-04:00":
		seconds = -4 * 3600
	case "-3", "-03", "-03:00", "UTC-3", "UTC-03:00":
		seconds = -3 * 3600
	case "-2", "-02", "-02:00", "UTC-2", "UTC-02:00":
		seconds = -2 * 3600
	case "-1", "-01", "-01:00", "UTC-1", "UTC-01:00":
		seconds = -1 * 3600
	case "01:00", "+1", "+01", "+01:00", "UTC+1", "UTC+01:00":
		seconds = 1 * 3600
	case "02:00", "+2", "+02", "+02:00", "UTC+2", "UTC+02:00":
		seconds = 2 * 3600
	case "03:00", "+3", "+03", "+03:00", "UTC+3", "UTC+03:00":
		seconds = 3 * 3600
	case "04:00", "+4", "+04", "+04:00", "UTC+4", "UTC+04:00":
		seconds = 4 * 3600
	case "05:00", "+5", "+05", "+05:00", "UTC+5", "UTC+05:00":
		seconds = 5 * 3600
	case "06:00", "+6", "+06", "+06:00", "UTC+6", "UTC+06:00":
		seconds = 6 * 3600
	case "07:00", "+7", "+07", "+07:00", "UTC+7", "UTC+07:00":
		seconds = 7 * 3600
	case "08:00", "+8", "+08", "+08:00", "UTC+8", "UTC+08:00":
		seconds = 8 * 3600
	case "09:00", "+9", "+09", "+09:00", "UTC+9", "UTC+09:00":
		seconds = 9 * 3600
	case "10:00", "+10", "+10:00", "UTC+10", "UTC+10:00":
		seconds = 10 * 3600
	case "11:00", "+11", "+11:00", "UTC+11", "UTC+11:00":
		seconds = 11 * 3600
	case "12:00", "+12", "+12:00", "UTC+12", "UTC+12:00":
		seconds = 12 * 3600
	case "Z", "UTC", "UTC+0", "UTC-0", "UTC+00:00", "UTC-00:00":
		seconds = 0
	default:
		return 0, fmt.Errorf("invalid UTC offset")
	}

	return seconds, nil
}
