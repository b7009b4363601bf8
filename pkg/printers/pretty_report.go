package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/services"
)

// Report prints the analytics dashboard: mood trend, symptom frequency, and
// category totals.
func (pp *PrettyPrint) Report(a *services.Analytics) {
	if a == nil {
		pp.none()
		return
	}

	pp.Title(fmt.Sprintf("mood (last %s)", a.MoodWindow))
	pp.MoodTrend(a.MoodTrend, a.MoodAverage)

	pp.Title(fmt.Sprintf("symptoms (last %s)", a.SymptomWindow))
	pp.SymptomStats(a.Symptoms)

	pp.Title("entries")
	pp.CategoryCounts(a.CategoryCounts)
}

const moodBarWidth = 20

// MoodTrend draws one bar per day, colored red to green across the rank
// scale.
func (pp *PrettyPrint) MoodTrend(trend []services.MoodPoint, average float64) {
	if len(trend) == 0 {
		pp.none()
		return
	}

	f := color.New(color.Faint)
	for _, point := range trend {
		filled := int(point.Average / float64(health.MoodGreat) * moodBarWidth)
		if filled < 1 {
			filled = 1
		}
		bar := moodColor(point.Average).Sprint(strings.Repeat("█", filled))
		fmt.Printf("%s  %s%s %.1f\n",
			point.Day.Format("Jan 02"),
			bar,
			strings.Repeat(" ", moodBarWidth-filled),
			point.Average)
	}
	_, _ = f.Printf("average %.1f (%s)\n\n", average, health.MoodRank(average+0.5).String())
}

// SymptomStats prints most frequent first.
func (pp *PrettyPrint) SymptomStats(stats []services.SymptomStat) {
	if len(stats) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, stat := range stats {
		name := stat.Name
		if name == "" {
			name = shortID(stat.ItemID)
		}
		tbl.AddRow(name, fmt.Sprintf("%dx", stat.Count), fmt.Sprintf("avg %.1f", stat.AverageSeverity))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) CategoryCounts(counts map[health.Category]int) {
	if len(counts) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range health.AllCategories() {
		if n, ok := counts[c]; ok {
			tbl.AddRow(c.String(), n)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Tracking prints a month grid with logged days highlighted.
func (pp *PrettyPrint) Tracking(logs ...*health.Log) {
	pp.PrintMonth(nowFn(), logs...)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonth(then time.Time, logs ...*health.Log) {
	days := DaysIn(then)

	count := make([]int, days)
	for _, l := range logs {
		created := l.Created.Local()
		if created.Year() == then.Year() && created.Month() == then.Month() {
			count[created.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

var (
	moodLow, _  = colorful.Hex("#d64541")
	moodHigh, _ = colorful.Hex("#2ecc71")
)

// moodColor blends between the low and high ends of the rank scale.
func moodColor(rank float64) *color.Color {
	t := (rank - float64(health.MoodTerrible)) / float64(health.MoodGreat-health.MoodTerrible)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	blended := moodLow.BlendLab(moodHigh, t).Clamped()
	r, g, b := blended.RGB255()
	return color.RGB(int(r), int(g), int(b))
}
