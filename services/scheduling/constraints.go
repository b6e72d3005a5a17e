package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"meetsync/models"
)

const (
	defaultRequestedCount = 3
	defaultHorizonDays    = 30

	minutesPerDay = 24 * 60
)

// clockWindow is a local time-of-day range in minutes from midnight.
// Wrapping windows (end before start, e.g. 22:00-07:00) span midnight.
type clockWindow struct {
	Start int
	End   int
}

// Wraps reports whether the window spans midnight.
func (w clockWindow) Wraps() bool {
	return w.End < w.Start
}

// Length returns the window length in minutes.
func (w clockWindow) Length() int {
	if w.Wraps() {
		return minutesPerDay - w.Start + w.End
	}
	return w.End - w.Start
}

// contains reports whether a slot of durMinutes starting at startMinute lies
// entirely inside a non-wrapping window of the same local day.
func (w clockWindow) contains(startMinute, durMinutes int) bool {
	return startMinute >= w.Start && startMinute+durMinutes <= w.End
}

// constraintModel is the validated, canonical form of a scheduling request.
type constraintModel struct {
	duration  time.Duration
	grid      time.Duration
	loc       *time.Location
	quiet     []clockWindow
	social    clockWindow
	anchorDay *time.Time // local midnight of the anchor date
	anchorWin *clockWindow
	requested int
	horizon   time.Duration
	flex      models.FlexibilityHints
	previous  []time.Time
}

// resolveConstraints validates a raw request and fills documented defaults.
// It returns a ValidationError naming the offending field and never guesses
// a fix.
func resolveConstraints(req models.SchedulingRequest) (*constraintModel, error) {
	horizonDays := req.HorizonDays
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}

	if req.DurationMinutes <= 0 {
		return nil, newValidationError("durationMinutes", "must be a positive number of minutes")
	}
	if req.DurationMinutes > horizonDays*minutesPerDay {
		return nil, newValidationError("durationMinutes",
			fmt.Sprintf("exceeds the %d-day search horizon", horizonDays))
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, newValidationError("timezone", fmt.Sprintf("unknown timezone %q", tz))
	}

	quiet := make([]clockWindow, 0, len(req.QuietHours))
	for _, raw := range req.QuietHours {
		w, err := parseClockWindow(raw)
		if err != nil {
			return nil, newValidationError("quietHours", err.Error())
		}
		quiet = append(quiet, w)
	}

	cm := &constraintModel{
		duration:  time.Duration(req.DurationMinutes) * time.Minute,
		loc:       loc,
		quiet:     quiet,
		social:    socialWindowFor(req.SocialCategory),
		requested: req.RequestedCount,
		horizon:   time.Duration(horizonDays) * 24 * time.Hour,
		flex:      req.Flexibility,
		previous:  req.PreviousSlots,
	}
	if cm.requested <= 0 {
		cm.requested = defaultRequestedCount
	}

	// 15-minute grid by default, 30-minute for meetings of an hour or more.
	cm.grid = 15 * time.Minute
	if req.DurationMinutes >= 60 {
		cm.grid = 30 * time.Minute
	}

	if req.Anchor != nil {
		day, err := time.ParseInLocation("2006-01-02", req.Anchor.Date, loc)
		if err != nil {
			return nil, newValidationError("anchor.date",
				fmt.Sprintf("%q is not a concrete YYYY-MM-DD date", req.Anchor.Date))
		}
		cm.anchorDay = &day

		if req.Anchor.Window != "" {
			w, err := parseClockWindow(req.Anchor.Window)
			if err != nil {
				return nil, newValidationError("anchor.window", err.Error())
			}
			if w.Wraps() {
				return nil, newValidationError("anchor.window", "must not wrap past midnight")
			}
			cm.anchorWin = &w
		}
	}

	return cm, nil
}

// durationMinutes returns the meeting length in whole minutes.
func (cm *constraintModel) durationMinutes() int {
	return int(cm.duration / time.Minute)
}

// socialWindowFor returns the default local-time range for a category.
// Unknown categories fall back to the unspecified default, since the intent
// parser only supplies best-effort values.
func socialWindowFor(category string) clockWindow {
	switch category {
	case models.SocialProfessional:
		return clockWindow{Start: 9 * 60, End: 17 * 60}
	default:
		return clockWindow{Start: 9 * 60, End: 18 * 60}
	}
}

// parseClockWindow parses an "HH:MM-HH:MM" local time-of-day range. The end
// may precede the start for overnight spans such as 22:00-07:00.
func parseClockWindow(raw string) (clockWindow, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return clockWindow{}, fmt.Errorf("%q is not in HH:MM-HH:MM form", raw)
	}
	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return clockWindow{}, fmt.Errorf("%q: %v", raw, err)
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return clockWindow{}, fmt.Errorf("%q: %v", raw, err)
	}
	if start == end {
		return clockWindow{}, fmt.Errorf("%q has zero length", raw)
	}
	return clockWindow{Start: start, End: end}, nil
}

// parseClock parses "HH:MM" into minutes from midnight.
func parseClock(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not an HH:MM clock time", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", raw)
	}
	return hour*60 + minute, nil
}
