package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	iapp "ireminder/internal/app"
	"ireminder/internal/db"
	"ireminder/pkg/bus"
	"ireminder/pkg/dateutil"
	"ireminder/pkg/settings"
	"ireminder/pkg/storage"
	"ireminder/pkg/task"
	"ireminder/pkg/wellness"
)

var theme *material.Theme

// Pages
const (
	pageDashboard = iota
	pageTasks
	pageWellness
	pageSettings
)

type UI struct {
	companion *iapp.App
	ctx       context.Context

	currentPage int

	// Nav buttons
	navDashboard widget.Clickable
	navTasks     widget.Clickable
	navWellness  widget.Clickable
	navSettings  widget.Clickable

	// Dashboard
	quote      string
	refreshBtn widget.Clickable

	// Tasks
	taskList    widget.List
	newTitle    widget.Editor
	newPriority widget.Clickable
	priorityIdx int
	addTaskBtn  widget.Clickable
	toggleBtn   []widget.Clickable
	deleteBtn   []widget.Clickable

	// Wellness
	moodEditor   widget.Editor
	energyEditor widget.Editor
	stressEditor widget.Editor
	notesEditor  widget.Editor
	checkInBtn   widget.Clickable
	breakBtn     widget.Clickable
	checkInErr   string

	// Settings
	notifToggle widget.Clickable
	voiceToggle widget.Clickable
	themeToggle widget.Clickable
	breakToggle widget.Clickable
	resetBtn    widget.Clickable
}

var priorityCycle = []task.Priority{task.Low, task.Medium, task.High, task.Urgent}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataDir := os.Getenv("IREMINDER_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("home dir: %v", err)
		}
		dataDir = filepath.Join(home, ".ireminder")
	}

	database, err := db.Open(dataDir)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	records := storage.NewSQLite(database)
	if err := records.EnsureTable(ctx); err != nil {
		log.Fatalf("ensure records table: %v", err)
	}

	changes := bus.New()
	tasks := task.NewStore(records, changes)
	well := wellness.NewStore(records, changes)
	prefs := settings.NewStore(records, changes)

	if err := tasks.Load(ctx); err != nil {
		log.Fatalf("load tasks: %v", err)
	}
	if err := well.Load(ctx); err != nil {
		log.Fatalf("load wellness: %v", err)
	}
	if err := prefs.Load(ctx); err != nil {
		log.Fatalf("load settings: %v", err)
	}

	companion := iapp.New(tasks, well, prefs, changes)

	// Signal handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		log.Printf("ireminder: received %s, shutting down", sig)
		cancel()
	}()

	log.Printf("ireminder: started, data in %s", dataDir)
	go companion.Run(ctx)
	go companion.Welcome(ctx)

	ui := &UI{
		companion: companion,
		ctx:       ctx,
		quote:     companion.Advisor.MotivationalQuote(),
	}
	ui.taskList.Axis = layout.Vertical
	ui.newTitle.SingleLine = true
	ui.moodEditor.SingleLine = true
	ui.energyEditor.SingleLine = true
	ui.stressEditor.SingleLine = true
	ui.notesEditor.SingleLine = true
	ui.priorityIdx = 1 // medium

	applyTheme(prefs.Get().Theme)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("iReminder"))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(720)))
		if err := ui.run(w); err != nil {
			log.Fatal(err)
		}
		cancel()
		os.Exit(0)
	}()
	app.Main()
}

func applyTheme(name string) {
	theme = material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	if name == "dark" {
		theme.Palette.Bg = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
		theme.Palette.Fg = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
		theme.Palette.ContrastBg = color.NRGBA{R: 0x30, G: 0x60, B: 0xA0, A: 0xFF}
		theme.Palette.ContrastFg = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	} else {
		theme.Palette.ContrastBg = color.NRGBA{R: 0x40, G: 0x70, B: 0xB0, A: 0xFF}
	}
}

func (ui *UI) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.handleClicks(gtx)
			ui.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) handleClicks(gtx layout.Context) {
	if ui.navDashboard.Clicked(gtx) {
		ui.currentPage = pageDashboard
	}
	if ui.navTasks.Clicked(gtx) {
		ui.currentPage = pageTasks
	}
	if ui.navWellness.Clicked(gtx) {
		ui.currentPage = pageWellness
	}
	if ui.navSettings.Clicked(gtx) {
		ui.currentPage = pageSettings
	}
	if ui.refreshBtn.Clicked(gtx) {
		ui.quote = ui.companion.Advisor.MotivationalQuote()
	}
	if ui.newPriority.Clicked(gtx) {
		ui.priorityIdx = (ui.priorityIdx + 1) % len(priorityCycle)
	}
	if ui.addTaskBtn.Clicked(gtx) {
		title := ui.newTitle.Text()
		if strings.TrimSpace(title) != "" {
			if _, err := ui.companion.Tasks.AddTask(ui.ctx, task.Task{
				Title:    title,
				Priority: priorityCycle[ui.priorityIdx],
			}); err != nil {
				log.Printf("ui: add task: %v", err)
			}
			ui.newTitle.SetText("")
		}
	}
	tasks := ui.companion.Tasks.Tasks()
	for i := range ui.toggleBtn {
		if i < len(tasks) && ui.toggleBtn[i].Clicked(gtx) {
			ui.onToggle(tasks[i].ID)
		}
	}
	for i := range ui.deleteBtn {
		if i < len(tasks) && ui.deleteBtn[i].Clicked(gtx) {
			if err := ui.companion.Tasks.DeleteTask(ui.ctx, tasks[i].ID); err != nil {
				log.Printf("ui: delete task: %v", err)
			}
		}
	}
	if ui.checkInBtn.Clicked(gtx) {
		ui.onCheckIn()
	}
	if ui.breakBtn.Clicked(gtx) {
		if err := ui.companion.Wellness.UpdateLastBreakTime(ui.ctx); err != nil {
			log.Printf("ui: log break: %v", err)
		}
	}
	ui.handleSettingsClicks(gtx)
}

func (ui *UI) onToggle(id string) {
	toggled, err := ui.companion.Tasks.ToggleTask(ui.ctx, id)
	if err != nil {
		log.Printf("ui: toggle task: %v", err)
		return
	}
	if toggled.Completed {
		go ui.companion.AnnounceCompletion(ui.ctx, toggled)
	}
	ui.recordTodayStats()
}

// recordTodayStats refreshes today's productivity stats from the task list so
// the focus advice stays current.
func (ui *UI) recordTodayStats() {
	now := time.Now()
	completed, total := 0, 0
	for _, t := range ui.companion.Tasks.Tasks() {
		total++
		if t.Completed {
			completed++
		}
	}
	if err := ui.companion.Wellness.AddStats(ui.ctx, wellness.Stats{
		Date:           now,
		TasksCompleted: completed,
		TotalTasks:     total,
	}); err != nil {
		log.Printf("ui: record stats: %v", err)
	}
}

func (ui *UI) onCheckIn() {
	mood, err1 := strconv.Atoi(strings.TrimSpace(ui.moodEditor.Text()))
	energy, err2 := strconv.Atoi(strings.TrimSpace(ui.energyEditor.Text()))
	stress, err3 := strconv.Atoi(strings.TrimSpace(ui.stressEditor.Text()))
	if err1 != nil || err2 != nil || err3 != nil {
		ui.checkInErr = "ratings must be numbers from 1 to 5"
		return
	}
	_, err := ui.companion.Wellness.AddEntry(ui.ctx, wellness.Entry{
		Date:   time.Now(),
		Mood:   mood,
		Energy: energy,
		Stress: stress,
		Notes:  ui.notesEditor.Text(),
	})
	if err != nil {
		ui.checkInErr = err.Error()
		return
	}
	ui.checkInErr = ""
	ui.notesEditor.SetText("")
}

func (ui *UI) handleSettingsClicks(gtx layout.Context) {
	prefs := ui.companion.Settings
	if ui.notifToggle.Clicked(gtx) {
		v := !prefs.Get().Notifications
		if _, err := prefs.Update(ui.ctx, settings.Patch{Notifications: &v}); err != nil {
			log.Printf("ui: settings: %v", err)
		}
	}
	if ui.voiceToggle.Clicked(gtx) {
		v := !prefs.Get().VoiceOutput
		if _, err := prefs.Update(ui.ctx, settings.Patch{VoiceOutput: &v}); err != nil {
			log.Printf("ui: settings: %v", err)
		}
	}
	if ui.themeToggle.Clicked(gtx) {
		next := "dark"
		if prefs.Get().Theme == "dark" {
			next = "light"
		}
		if _, err := prefs.Update(ui.ctx, settings.Patch{Theme: &next}); err != nil {
			log.Printf("ui: settings: %v", err)
		} else {
			applyTheme(next)
		}
	}
	if ui.breakToggle.Clicked(gtx) {
		v := !prefs.Get().BreakReminders
		if _, err := prefs.Update(ui.ctx, settings.Patch{BreakReminders: &v}); err != nil {
			log.Printf("ui: settings: %v", err)
		}
	}
	if ui.resetBtn.Clicked(gtx) {
		if got, err := prefs.Reset(ui.ctx); err != nil {
			log.Printf("ui: reset settings: %v", err)
		} else {
			applyTheme(got.Theme)
		}
	}
}

func (ui *UI) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return ui.layoutNav(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				switch ui.currentPage {
				case pageTasks:
					return ui.layoutTasks(gtx)
				case pageWellness:
					return ui.layoutWellness(gtx)
				case pageSettings:
					return ui.layoutSettings(gtx)
				default:
					return ui.layoutDashboard(gtx)
				}
			})
		}),
	)
}

func (ui *UI) layoutNav(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(170))
	gtx.Constraints.Max.X = gtx.Dp(unit.Dp(170))
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Top: unit.Dp(16), Bottom: unit.Dp(16), Left: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return material.H6(theme, "iReminder").Layout(gtx)
			})
		}),
		layout.Rigid(navBtn(theme, &ui.navDashboard, "Dashboard", ui.currentPage == pageDashboard)),
		layout.Rigid(navBtn(theme, &ui.navTasks, "Tasks", ui.currentPage == pageTasks)),
		layout.Rigid(navBtn(theme, &ui.navWellness, "Wellness", ui.currentPage == pageWellness)),
		layout.Rigid(navBtn(theme, &ui.navSettings, "Settings", ui.currentPage == pageSettings)),
	)
}

func navBtn(th *material.Theme, btn *widget.Clickable, label string, active bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(2), Bottom: unit.Dp(2), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			b := material.Button(th, btn, label)
			if active {
				b.Background = th.Palette.ContrastBg
			} else {
				b.Background = color.NRGBA{A: 0}
				b.Color = th.Palette.Fg
			}
			return b.Layout(gtx)
		})
	}
}

func (ui *UI) layoutDashboard(gtx layout.Context) layout.Dimensions {
	suggestion := ui.companion.Suggestion()
	wellAdvice := ui.companion.WellnessAdvice()
	focusAdvice := ui.companion.FocusAdvice()
	overdue := ui.companion.Tasks.OverdueTasks()
	today := ui.companion.Tasks.TasksByDate(time.Now())
	upcoming := ui.companion.Tasks.UpcomingReminders()

	rows := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Dashboard").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(card(suggestion.Title, suggestion.Description)),
		layout.Rigid(card(wellAdvice.Title, wellAdvice.Description)),
		layout.Rigid(card(focusAdvice.Title, focusAdvice.Description)),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Body1(theme, fmt.Sprintf("Tasks today: %d   Overdue: %d", len(today), len(overdue))).Layout(gtx)
		}),
	}
	for _, r := range upcoming {
		r := r
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			line := fmt.Sprintf("Upcoming: %s at %s (%s)", r.Title,
				dateutil.FormatTime(r.ScheduledTime), dateutil.TimeUntil(r.ScheduledTime, time.Now()))
			return material.Body2(theme, line).Layout(gtx)
		}))
	}
	rows = append(rows,
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Caption(theme, ui.quote)
			label.Font.Style = font.Italic
			return label.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(theme, &ui.refreshBtn, "New Quote").Layout(gtx)
		}),
	)
	return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceEnd}.Layout(gtx, rows...)
}

func card(title, body string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := material.Body1(theme, title)
					label.Font.Weight = font.Bold
					return label.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Body2(theme, body).Layout(gtx)
				}),
			)
		})
	}
}

func (ui *UI) layoutTasks(gtx layout.Context) layout.Dimensions {
	tasks := ui.companion.Tasks.Tasks()
	for len(ui.toggleBtn) < len(tasks) {
		ui.toggleBtn = append(ui.toggleBtn, widget.Clickable{})
		ui.deleteBtn = append(ui.deleteBtn, widget.Clickable{})
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Tasks").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return material.Editor(theme, &ui.newTitle, "New task...").Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Button(theme, &ui.newPriority, string(priorityCycle[ui.priorityIdx])).Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Button(theme, &ui.addTaskBtn, "Add").Layout(gtx)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.List(theme, &ui.taskList).Layout(gtx, len(tasks), func(gtx layout.Context, i int) layout.Dimensions {
				t := tasks[i]
				return layout.Inset{Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									label := material.Body1(theme, t.Title)
									if t.Completed {
										label.Color = color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}
									} else {
										label.Font.Weight = font.Bold
									}
									return label.Layout(gtx)
								}),
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									detail := string(t.Priority)
									if t.DueDate != nil {
										detail += " · due " + dateutil.FormatDate(*t.DueDate, time.Now())
									}
									label := material.Caption(theme, detail)
									label.Color = priorityColor(t.Priority)
									return label.Layout(gtx)
								}),
							)
						}),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							lbl := "Done"
							if t.Completed {
								lbl = "Reopen"
							}
							return material.Button(theme, &ui.toggleBtn[i], lbl).Layout(gtx)
						}),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							btn := material.Button(theme, &ui.deleteBtn[i], "Delete")
							btn.Background = color.NRGBA{R: 0xC0, G: 0x30, B: 0x30, A: 0xFF}
							return btn.Layout(gtx)
						}),
					)
				})
			})
		}),
	)
}

func priorityColor(p task.Priority) color.NRGBA {
	switch p {
	case task.Urgent:
		return color.NRGBA{R: 0xE0, G: 0x30, B: 0x30, A: 0xFF}
	case task.High:
		return color.NRGBA{R: 0xE0, G: 0x90, B: 0x00, A: 0xFF}
	case task.Medium:
		return color.NRGBA{R: 0x30, G: 0x70, B: 0xC0, A: 0xFF}
	default:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	}
}

func (ui *UI) layoutWellness(gtx layout.Context) layout.Dimensions {
	well := ui.companion.Wellness
	summary := fmt.Sprintf("7-day averages — mood %.1f, energy %.1f, stress %.1f, completion %.0f%%",
		well.AverageMood(7), well.AverageEnergy(7), well.AverageStress(7), well.CompletionRate(7))

	lastBreak := "no break logged yet"
	if lb := well.LastBreakTime(); lb != nil {
		lastBreak = fmt.Sprintf("last break at %s", dateutil.FormatTime(*lb))
	}

	ratingRow := func(label string, ed *widget.Editor) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints.Min.X = gtx.Dp(unit.Dp(110))
						return material.Body1(theme, label).Layout(gtx)
					}),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return material.Editor(theme, ed, "1-5").Layout(gtx)
					}),
				)
			})
		})
	}

	rows := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Wellness").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Body2(theme, summary).Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Caption(theme, lastBreak).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		ratingRow("Mood", &ui.moodEditor),
		ratingRow("Energy", &ui.energyEditor),
		ratingRow("Stress", &ui.stressEditor),
		ratingRow("Notes", &ui.notesEditor),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Button(theme, &ui.checkInBtn, "Check In").Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Button(theme, &ui.breakBtn, "I Took a Break").Layout(gtx)
				}),
			)
		}),
	}
	if ui.checkInErr != "" {
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Caption(theme, ui.checkInErr)
			label.Color = color.NRGBA{R: 0xE0, G: 0x30, B: 0x30, A: 0xFF}
			return label.Layout(gtx)
		}))
	}
	return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceEnd}.Layout(gtx, rows...)
}

func (ui *UI) layoutSettings(gtx layout.Context) layout.Dimensions {
	prefs := ui.companion.Settings.Get()
	onOff := func(v bool) string {
		if v {
			return "On"
		}
		return "Off"
	}

	settingRow := func(label, state string, btn *widget.Clickable) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return material.Body1(theme, label).Layout(gtx)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return material.Button(theme, btn, state).Layout(gtx)
					}),
				)
			})
		})
	}

	return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceEnd}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(theme, "Settings").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		settingRow("Notifications", onOff(prefs.Notifications), &ui.notifToggle),
		settingRow("Voice output", onOff(prefs.VoiceOutput), &ui.voiceToggle),
		settingRow("Theme", prefs.Theme, &ui.themeToggle),
		settingRow("Break reminders", onOff(prefs.BreakReminders), &ui.breakToggle),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Body2(theme, fmt.Sprintf("Working hours %s–%s, break every %d minutes",
				prefs.WorkingHours.Start, prefs.WorkingHours.End, prefs.BreakInterval)).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(theme, &ui.resetBtn, "Reset to defaults").Layout(gtx)
		}),
	)
}
