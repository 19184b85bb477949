package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// DefaultSeedSchedule produces a Saturday-morning weekly event series.
const DefaultSeedSchedule = "FREQ=WEEKLY;BYDAY=SA"

// SeedStore defines the record operations needed to seed demo data.
type SeedStore interface {
	SaveEvents(ctx context.Context, events []model.Event) error
	SaveVolunteers(ctx context.Context, volunteers []model.Volunteer) error
}

// SeedResult reports what SeedDemoData wrote.
type SeedResult struct {
	Events     []model.Event
	Volunteers []model.Volunteer
}

var demoEvents = []struct {
	title      string
	location   string
	tags       []string
	categories []string
	max        int
}{
	{"Beach Cleanup Day", "Sunrise Beach", []string{"Environmental"}, []string{"Setup Crew", "Collection Crew", "First Aid"}, 10},
	{"Animal Shelter Open Day", "Paws Haven Shelter", []string{"Animal"}, []string{"Registration Desk", "Dog Walker", "Cleanup Crew"}, 8},
	{"Community Blood Drive", "Town Hall", []string{"Healthcare", "Blood Donation"}, []string{"Registration Desk", "Refreshments", "Donor Support"}, 2},
	{"Charity Fun Run", "Riverside Park", []string{"Sports"}, []string{"Marshal", "Water Station", "First Aid"}, 15},
	{"Food Bank Sorting", "Community Centre", []string{"Social Work"}, []string{"Sorting Crew", "Driver"}, 6},
	{"River Cleanup", "Old Mill Bridge", []string{"Environmental"}, []string{"Setup Crew", "Collection Crew"}, 10},
}

// SeedDemoData writes a demo events and volunteers collection: event
// dates expanded from the schedule rrule, volunteer ids freshly
// generated. A development aid; the real collections are written by the
// admin application.
func SeedDemoData(ctx context.Context, db SeedStore, logger *zap.Logger, schedule string, count int) (*SeedResult, error) {
	if count <= 0 || count > len(demoEvents) {
		count = len(demoEvents)
	}
	if schedule == "" {
		schedule = DefaultSeedSchedule
	}

	rule, err := rrule.StrToRRule(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid seed schedule: %w", err)
	}
	rule.DTStart(time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour))

	next := rule.Iterator()
	base := time.Now().UnixMilli()

	events := make([]model.Event, 0, count)
	for i := 0; i < count; i++ {
		date, ok := next()
		if !ok {
			return nil, fmt.Errorf("seed schedule %q yields only %d dates, need %d", schedule, i, count)
		}
		tmpl := demoEvents[i]
		events = append(events, model.Event{
			// Millisecond-epoch ids, spaced so creation order is stable
			ID:                  strconv.FormatInt(base+int64(i), 10),
			Title:               tmpl.title,
			Date:                date.Format("2006-01-02"),
			Time:                "10:00",
			Description:         fmt.Sprintf("Join us for %s at %s.", tmpl.title, tmpl.location),
			Location:            tmpl.location,
			VolunteerCategories: tmpl.categories,
			Tags:                tmpl.tags,
			MaxVolunteers:       tmpl.max,
		})
	}

	// A few approved volunteers so derived counts are non-zero; the
	// blood drive starts full to exercise the capacity gate.
	volunteers := []model.Volunteer{
		{ID: uuid.New().String(), Name: "Asha Patel", Email: "asha@example.org", Phone: "07700 900001", Status: "active",
			AssignedEvents: []string{events[0].ID}},
		{ID: uuid.New().String(), Name: "Marcus Webb", Email: "marcus@example.org", Phone: "07700 900002", Status: "active",
			AssignedEvents: []string{events[0].ID}},
	}
	if count > 2 {
		volunteers = append(volunteers,
			model.Volunteer{ID: uuid.New().String(), Name: "Lena Fischer", Email: "lena@example.org", Phone: "07700 900003", Status: "active",
				AssignedEvents: []string{events[2].ID}},
			model.Volunteer{ID: uuid.New().String(), Name: "Tom Okafor", Email: "tom@example.org", Phone: "07700 900004", Status: "inactive",
				AssignedEvents: []string{events[2].ID}},
		)
	}

	derived := DeriveCounts(events, volunteers)
	if err := db.SaveEvents(ctx, derived); err != nil {
		return nil, fmt.Errorf("failed to write seeded events: %w", err)
	}
	if err := db.SaveVolunteers(ctx, volunteers); err != nil {
		return nil, fmt.Errorf("failed to write seeded volunteers: %w", err)
	}

	logger.Info("Seeded demo data",
		zap.Int("events", len(derived)),
		zap.Int("volunteers", len(volunteers)),
		zap.String("schedule", schedule))

	return &SeedResult{Events: derived, Volunteers: volunteers}, nil
}
