package resource

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/artel-platform/AOM-AvailabilityService/internal/domain"
	"github.com/artel-platform/AOM-AvailabilityService/pkg/types"
)

// rulesDocument JSON-представление конфигурации доступности в колонке
// resources.availability_rules. Дни недели хранятся строками ("mon".."sun"),
// IncludeWeekends — указатель, чтобы отличить "не задано" от false и
// подставить дефолт по типу ресурса
type rulesDocument struct {
	Timezone            string           `json:"timezone"`
	SlotMinutes         int              `json:"slotMinutes"`
	BufferBeforeMinutes int              `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int              `json:"bufferAfterMinutes"`
	MinBookingHours     int              `json:"minBookingHours"`
	MaxBookingHours     int              `json:"maxBookingHours"`
	MaxAdvanceDays      int              `json:"maxAdvanceDays"`
	MaxPerDayPerHost    int              `json:"maxPerDayPerHost"`
	IncludeWeekends     *bool            `json:"includeWeekends,omitempty"`
	Windows             []windowDocument `json:"windows"`
}

type windowDocument struct {
	By    string   `json:"by"`
	Host  string   `json:"host,omitempty"`
	Days  []string `json:"days"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// decodeRules разбирает JSON конфигурации и приводит его к доменному типу.
// Пустые timezone и slotMinutes легаси-строк заменяются дефолтами,
// отсутствующий includeWeekends — политикой типа ресурса
func decodeRules(raw []byte, resourceType domain.ResourceType) (domain.AvailabilityRules, error) {
	var doc rulesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.AvailabilityRules{}, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	rules := domain.AvailabilityRules{
		Timezone:            doc.Timezone,
		SlotMinutes:         doc.SlotMinutes,
		BufferBeforeMinutes: doc.BufferBeforeMinutes,
		BufferAfterMinutes:  doc.BufferAfterMinutes,
		MinBookingHours:     doc.MinBookingHours,
		MaxBookingHours:     doc.MaxBookingHours,
		MaxAdvanceDays:      doc.MaxAdvanceDays,
		MaxPerDayPerHost:    doc.MaxPerDayPerHost,
	}

	if rules.Timezone == "" {
		rules.Timezone = domain.DefaultTimezone
	}
	if rules.SlotMinutes == 0 {
		rules.SlotMinutes = domain.DefaultSlotMinutes
	}

	if doc.IncludeWeekends != nil {
		rules.IncludeWeekends = *doc.IncludeWeekends
	} else {
		rules.IncludeWeekends = resourceType.WeekendsByDefault()
	}

	rules.Windows = make([]domain.Window, 0, len(doc.Windows))
	for i, w := range doc.Windows {
		window, err := decodeWindow(w)
		if err != nil {
			return domain.AvailabilityRules{}, fmt.Errorf("%w: window %d: %v", ErrInvalidRules, i, err)
		}
		rules.Windows = append(rules.Windows, window)
	}

	if err := rules.Validate(); err != nil {
		return domain.AvailabilityRules{}, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	return rules, nil
}

func decodeWindow(doc windowDocument) (domain.Window, error) {
	window := domain.Window{
		By:    domain.WindowScope(doc.By),
		Host:  doc.Host,
		Start: types.TimeString(doc.Start),
		End:   types.TimeString(doc.End),
	}
	if window.By == "" {
		window.By = domain.WindowByResource
	}

	window.Days = make([]time.Weekday, 0, len(doc.Days))
	for _, name := range doc.Days {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return domain.Window{}, fmt.Errorf("unknown weekday %q", name)
		}
		window.Days = append(window.Days, day)
	}

	return window, nil
}

// encodeRules сериализует конфигурацию для записи в JSONB.
// Конфигурация должна быть уже провалидирована
func encodeRules(rules domain.AvailabilityRules) ([]byte, error) {
	doc := rulesDocument{
		Timezone:            rules.Timezone,
		SlotMinutes:         rules.SlotMinutes,
		BufferBeforeMinutes: rules.BufferBeforeMinutes,
		BufferAfterMinutes:  rules.BufferAfterMinutes,
		MinBookingHours:     rules.MinBookingHours,
		MaxBookingHours:     rules.MaxBookingHours,
		MaxAdvanceDays:      rules.MaxAdvanceDays,
		MaxPerDayPerHost:    rules.MaxPerDayPerHost,
		IncludeWeekends:     &rules.IncludeWeekends,
	}

	doc.Windows = make([]windowDocument, 0, len(rules.Windows))
	for _, w := range rules.Windows {
		days := make([]string, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, weekdayLabels[d])
		}
		doc.Windows = append(doc.Windows, windowDocument{
			By:    string(w.By),
			Host:  w.Host,
			Days:  days,
			Start: w.Start.String(),
			End:   w.End.String(),
		})
	}

	return json.Marshal(doc)
}
