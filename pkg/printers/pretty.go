package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/vita/pkg/health"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
	nowFn   = time.Now
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Logs prints one day's (or one query's) entries as a table.
func (pp *PrettyPrint) Logs(logs ...*health.Log) {
	if len(logs) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, l := range logs {
		at, category, title, detail := l.Row()
		if pp.ShowID {
			tbl.AddRow(y.Sprint(shortID(l.ID)), at, category, title, detail)
			continue
		}
		tbl.AddRow(at, category, title, detail)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Reminders prints the reminder schedule, overdue ones highlighted.
func (pp *PrettyPrint) Reminders(reminders ...*health.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	overdue := color.New(color.FgHiRed)
	for _, r := range reminders {
		desc := r.Describe()
		if r.Overdue(nowFn()) {
			desc = overdue.Sprint(desc)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(shortID(r.ID)), desc)
			continue
		}
		tbl.AddRow(desc)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Catalog prints catalog search hits.
func (pp *PrettyPrint) Catalog(items ...*health.CatalogItem) {
	if len(items) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, item := range items {
		if pp.ShowID {
			tbl.AddRow(y.Sprint(shortID(item.ID)), item.Category.String(), item.Name)
			continue
		}
		tbl.AddRow(item.Category.String(), item.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// shortID keeps tables narrow; the full uuid is still accepted everywhere an
// id is typed back in.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
