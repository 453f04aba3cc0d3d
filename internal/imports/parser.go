package imports

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KoIa247/SeatingApp/internal/seatmap"
)

// DefaultTimeSlot is assumed when a product description names no show time.
const DefaultTimeSlot = "11:00 AM"

// ProductInfo is the structured seating request parsed out of one
// free-text product description. Built once per spreadsheet row and
// never mutated.
type ProductInfo struct {
	Date    string           `json:"date"` // ISO calendar date, e.g. "2024-02-14"
	Time    string           `json:"time"` // display slot label, e.g. "1:00 PM"
	Type    seatmap.SeatType `json:"type"`
	Side    string           `json:"side"`
	Section int              `json:"section"` // meaningful for row types only
}

// Calendar pins the show's fixed year and month. Product descriptions
// spell out only the month name and day ("FEBRUARY 14TH"); the rest of
// the date is rebuilt from here.
type Calendar struct {
	Year  int
	Month time.Month
}

// DefaultCalendar matches the current show run.
var DefaultCalendar = Calendar{Year: 2024, Month: time.February}

var (
	timePattern    = regexp.MustCompile(`(\d+)(AM|PM)`)
	sectionPattern = regexp.MustCompile(`ROW\s+(\d+)`)
)

// Parser extracts structured seating requests from the free-text product
// descriptions found in ticket sale exports.
type Parser struct {
	cal         Calendar
	datePattern *regexp.Regexp
}

// NewParser creates a parser for the given show calendar.
func NewParser(cal Calendar) *Parser {
	monthName := strings.ToUpper(cal.Month.String())
	return &Parser{
		cal:         cal,
		datePattern: regexp.MustCompile(monthName + `\s+(\d+)(ST|ND|RD|TH)?`),
	}
}

// ParseProduct turns one product description into a ProductInfo. It never
// fails: every field that cannot be matched falls back to a default
// (fallbackDate, the default time slot, general admission). Matching is
// case-insensitive.
func (p *Parser) ParseProduct(product, fallbackDate string) ProductInfo {
	text := strings.ToUpper(product)

	info := ProductInfo{
		Date: fallbackDate,
		Time: DefaultTimeSlot,
		Type: seatmap.TypeGeneral,
		Side: seatmap.SideGeneral,
	}

	if m := p.datePattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		info.Date = fmt.Sprintf("%04d-%02d-%02d", p.cal.Year, int(p.cal.Month), day)
	}

	if m := timePattern.FindStringSubmatch(text); m != nil {
		info.Time = fmt.Sprintf("%s:00 %s", m[1], m[2])
	}

	// Seat domain, first match wins: explicit GA beats VIP beats rows.
	switch {
	case strings.Contains(text, "GENERAL ADMISSION"):
		// defaults already set

	case strings.Contains(text, "VIP"):
		info.Type = seatmap.TypeVIP
		if strings.Contains(text, "LEFT") {
			info.Side = seatmap.SideVIPLeft
		} else {
			info.Side = seatmap.SideVIPRight
		}

	default:
		if strings.Contains(text, "RIGHT") {
			info.Type = seatmap.TypeRightRow
			info.Side = seatmap.SideRight
		} else if strings.Contains(text, "LEFT") {
			info.Type = seatmap.TypeLeftRow
			info.Side = seatmap.SideLeft
		}
		// No direction at all leaves the GA fallback in place. A row
		// type without "ROW <n>" keeps section 0, which enumerates no
		// seats and fails at allocation time rather than here.
		if info.Type.IsRow() {
			if m := sectionPattern.FindStringSubmatch(text); m != nil {
				info.Section, _ = strconv.Atoi(m[1])
			}
		}
	}

	return info
}

// Instance key of the show this request belongs to, used to group
// requests before allocation.
func (i ProductInfo) InstanceKey() string {
	return i.Date + "|" + i.Time
}
