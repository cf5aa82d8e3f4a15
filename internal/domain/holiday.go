package domain

import (
	"fmt"
	"time"
)

// HolidayCategory represents the category assigned to a holiday by the holiday provider
type HolidayCategory string

const (
	CategoryMajorHoliday             HolidayCategory = "MAJOR_HOLIDAY"
	CategoryPublicHoliday            HolidayCategory = "PUBLIC_HOLIDAY"
	CategoryObservance               HolidayCategory = "OBSERVANCE"
	CategoryNationalHoliday          HolidayCategory = "NATIONAL_HOLIDAY"
	CategoryFederalHoliday           HolidayCategory = "FEDERAL_HOLIDAY"
	CategorySeason                   HolidayCategory = "SEASON"
	CategoryStateHoliday             HolidayCategory = "STATE_HOLIDAY"
	CategoryOptionalHoliday          HolidayCategory = "OPTIONAL_HOLIDAY"
	CategoryClockChange              HolidayCategory = "CLOCK_CHANGE_DAYLIGHT_SAVING_TIME"
	CategoryLocalHoliday             HolidayCategory = "LOCAL_HOLIDAY"
	CategoryUnitedNationsObservance  HolidayCategory = "UNITED_NATIONS_OBSERVANCE"
	CategoryObservanceChristian      HolidayCategory = "OBSERVANCE_CHRISTIAN"
	CategoryBankHoliday              HolidayCategory = "BANK_HOLIDAY"
	CategoryCommonLocalHoliday       HolidayCategory = "COMMON_LOCAL_HOLIDAY"
	CategoryNationalHolidayChristian HolidayCategory = "NATIONAL_HOLIDAY_CHRISTIAN"
	CategoryChristian                HolidayCategory = "CHRISTIAN"
	CategoryObservanceHebrew         HolidayCategory = "OBSERVANCE_HEBREW"
	CategoryJewishHoliday            HolidayCategory = "JEWISH_HOLIDAY"
	CategoryMuslim                   HolidayCategory = "MUSLIM"
	CategoryHinduHoliday             HolidayCategory = "HINDU_HOLIDAY"
	CategoryRestrictedHoliday        HolidayCategory = "RESTRICTED_HOLIDAY"
	CategoryOfficialHoliday          HolidayCategory = "OFFICIAL_HOLIDAY"
	CategoryNationalHolidayOrthodox  HolidayCategory = "NATIONAL_HOLIDAY_ORTHODOX"
	CategoryLocalObservance          HolidayCategory = "LOCAL_OBSERVANCE"
)

// HolidayCategories is the closed set of categories known to the provider
var HolidayCategories = []HolidayCategory{
	CategoryMajorHoliday,
	CategoryPublicHoliday,
	CategoryObservance,
	CategoryNationalHoliday,
	CategoryFederalHoliday,
	CategorySeason,
	CategoryStateHoliday,
	CategoryOptionalHoliday,
	CategoryClockChange,
	CategoryLocalHoliday,
	CategoryUnitedNationsObservance,
	CategoryObservanceChristian,
	CategoryBankHoliday,
	CategoryCommonLocalHoliday,
	CategoryNationalHolidayChristian,
	CategoryChristian,
	CategoryObservanceHebrew,
	CategoryJewishHoliday,
	CategoryMuslim,
	CategoryHinduHoliday,
	CategoryRestrictedHoliday,
	CategoryOfficialHoliday,
	CategoryNationalHolidayOrthodox,
	CategoryLocalObservance,
}

// ParseHolidayCategory converts a provider category string into a HolidayCategory
func ParseHolidayCategory(s string) (HolidayCategory, error) {
	for _, c := range HolidayCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown holiday category %q", s)
}

// Holiday represents a single entry of the public holiday calendar
type Holiday struct {
	Date     time.Time // Calendar day, time-of-day is ignored
	Name     string
	Category HolidayCategory
}

// DateKey returns the calendar-day key of the holiday
func (h Holiday) DateKey() string {
	return DateKey(h.Date)
}

// DateKey formats the calendar day of t as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay compares two instants by calendar day (year/month/day)
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
