package services

import (
	"context"
	"sort"
	"time"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
	"tableflip.dev/vita/pkg/timeutil"
)

// MoodPoint is one day's average mood.
type MoodPoint struct {
	Day     time.Time
	Average float64
	Count   int
}

// SymptomStat aggregates one symptom over the window.
type SymptomStat struct {
	ItemID          string
	Name            string
	Count           int
	AverageSeverity float64
}

// Analytics is everything the home screen renders: trends computed over the
// user's configured windows.
type Analytics struct {
	MoodWindow     string
	SymptomWindow  string
	MoodTrend      []MoodPoint
	MoodAverage    float64
	Symptoms       []SymptomStat
	CategoryCounts map[health.Category]int
}

// AnalyticsService computes Analytics from stored logs.
type AnalyticsService interface {
	GetAll(ctx context.Context, user *health.User) (*Analytics, error)
}

// NewAnalyticsService builds an AnalyticsService over the persistence layer.
// The clock is injectable for tests; nil means time.Now.
func NewAnalyticsService(p store.Persistence, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{p: p, now: now}
}

type analyticsService struct {
	p   store.Persistence
	now func() time.Time
}

func (s *analyticsService) GetAll(ctx context.Context, user *health.User) (*Analytics, error) {
	if user == nil {
		return nil, invalid("get analytics", errUserRequired)
	}
	now := s.now()
	moodStart := timeutil.WindowStart(user.Settings.MoodWindow, now)
	symptomStart := timeutil.WindowStart(user.Settings.SymptomWindow, now)
	overallStart := moodStart
	if symptomStart.Before(overallStart) {
		overallStart = symptomStart
	}

	out := &Analytics{
		MoodWindow:     user.Settings.MoodWindow,
		SymptomWindow:  user.Settings.SymptomWindow,
		CategoryCounts: make(map[health.Category]int),
	}

	moodByDay := make(map[time.Time]*MoodPoint)
	symptomByItem := make(map[string]*SymptomStat)
	moodSum, moodCount := 0, 0
	items := make(map[string]*health.CatalogItem)
	for _, item := range s.p.CatalogItems(ctx, user.ID) {
		items[item.ID] = item
	}

	for _, l := range s.p.Logs(ctx, user.ID) {
		created := l.Created.Time
		if created.Before(overallStart) {
			continue
		}
		out.CategoryCounts[l.Category]++

		switch l.Category {
		case health.CategoryMood:
			if l.Mood == nil || created.Before(moodStart) {
				continue
			}
			day := l.Created.DayKey()
			point, ok := moodByDay[day]
			if !ok {
				point = &MoodPoint{Day: day}
				moodByDay[day] = point
			}
			point.Average += float64(l.Mood.Rank)
			point.Count++
			moodSum += int(l.Mood.Rank)
			moodCount++
		case health.CategorySymptom:
			if l.Symptom == nil || created.Before(symptomStart) {
				continue
			}
			stat, ok := symptomByItem[l.Symptom.ItemID]
			if !ok {
				stat = &SymptomStat{ItemID: l.Symptom.ItemID}
				if item, found := items[l.Symptom.ItemID]; found {
					stat.Name = item.Name
				}
				symptomByItem[l.Symptom.ItemID] = stat
			}
			stat.AverageSeverity += float64(l.Symptom.Severity)
			stat.Count++
		}
	}

	for day := moodStart; !day.After(now); day = day.Add(24 * time.Hour) {
		key := health.Timestamp{Time: day}.DayKey()
		if point, ok := moodByDay[key]; ok {
			point.Average /= float64(point.Count)
			out.MoodTrend = append(out.MoodTrend, *point)
		}
	}
	if moodCount > 0 {
		out.MoodAverage = float64(moodSum) / float64(moodCount)
	}

	for _, stat := range symptomByItem {
		if stat.Count > 0 {
			stat.AverageSeverity /= float64(stat.Count)
		}
		out.Symptoms = append(out.Symptoms, *stat)
	}
	sortSymptomStats(out.Symptoms)

	return out, nil
}

// sortSymptomStats orders most frequent first, ties by name.
func sortSymptomStats(stats []SymptomStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
}
