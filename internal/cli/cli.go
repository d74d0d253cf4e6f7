package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"balance-planner/internal/model"
	"balance-planner/internal/repository"
	"balance-planner/internal/service"
	"balance-planner/internal/store"
)

const usage = `balanceplanner <command> [flags]

Commands:
  add       -title T [-desc D] [-category private|work|home] [-priority low|medium|high] [-due YYYY-MM-DD] [-assignees "A,B"]
  list      [-category all|private|work|home]
  show      <id>
  edit      <id> [-title T] [-desc D] [-category C] [-priority P] [-due YYYY-MM-DD] [-done true|false]
  done      <id>
  rm        <id>
  assign    <id> <name>
  unassign  <id> <name>
  today     print the daily overview
  week      print the weekly schedule
  stats     print per-category progress
  settings  [-block true|false] [-end HH:MM] [-notifications true|false]
  watch     keep running and re-print the overview at the work-hours boundary`

// App is the command-line front end. Every decision is delegated to the store
// and the derivation services; this layer parses arguments, persists snapshots
// after mutations, and formats output.
type App struct {
	store        *store.Store
	taskRepo     *repository.TaskRepository
	settingsRepo *repository.SettingsRepository
	stateRepo    *repository.StateRepository
	out          io.Writer
	now          func() time.Time
}

func New(st *store.Store, taskRepo *repository.TaskRepository, settingsRepo *repository.SettingsRepository, stateRepo *repository.StateRepository, out io.Writer, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	return &App{
		store:        st,
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		stateRepo:    stateRepo,
		out:          out,
		now:          now,
	}
}

// Run dispatches a single invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	if err := a.maybeWelcome(ctx); err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		return a.runAdd(ctx, rest)
	case "list":
		return a.runList(rest)
	case "show":
		return a.runShow(rest)
	case "edit":
		return a.runEdit(ctx, rest)
	case "done":
		return a.runDone(ctx, rest)
	case "rm":
		return a.runRemove(ctx, rest)
	case "assign":
		return a.runAssign(ctx, rest, true)
	case "unassign":
		return a.runAssign(ctx, rest, false)
	case "today":
		fmt.Fprintln(a.out, service.DailyOverview(a.store.Tasks(), a.store.Settings(), a.now()))
		return nil
	case "week":
		fmt.Fprintln(a.out, service.WeeklyOverview(a.store.Tasks(), a.store.Settings(), a.now()))
		return nil
	case "stats":
		return a.runStats()
	case "settings":
		return a.runSettings(ctx, rest)
	case "watch":
		return a.runWatch(ctx)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// maybeWelcome prints the first-run hint once and remembers that it was shown.
func (a *App) maybeWelcome(ctx context.Context) error {
	done, err := a.stateRepo.OnboardingCompleted(ctx)
	if err != nil {
		return err
	}
	if done {
		return nil
	}
	fmt.Fprintln(a.out, "Welcome to balanceplanner. Tasks live in private, work and home categories;")
	fmt.Fprintln(a.out, "work tasks disappear from views after your configured work hours.")
	fmt.Fprintln(a.out, "Start with: balanceplanner add -title \"My first task\"")
	fmt.Fprintln(a.out, "")
	return a.stateRepo.MarkOnboardingCompleted(ctx)
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "task title")
	desc := fs.String("desc", "", "task description")
	category := fs.String("category", string(model.CategoryPrivate), "task category")
	priority := fs.String("priority", string(model.PriorityMedium), "task priority")
	due := fs.String("due", "", "due date, YYYY-MM-DD (default today)")
	assignees := fs.String("assignees", "", "comma-separated assignee names")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dueDate := model.DateOnly(a.now())
	if *due != "" {
		parsed, err := parseDate(*due)
		if err != nil {
			return err
		}
		dueDate = parsed
	}

	task, err := a.store.Create(store.TaskInput{
		Title:         *title,
		Description:   *desc,
		Category:      model.Category(*category),
		Priority:      model.Priority(*priority),
		DueDate:       dueDate,
		AssignedUsers: splitNames(*assignees),
	})
	if err != nil {
		return err
	}
	if err := a.saveTasks(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added %s (%s)\n", task.Title, task.ID)
	return nil
}

func (a *App) runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	category := fs.String("category", "all", "category filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := model.Category("")
	if *category != "" && *category != "all" {
		filter = model.Category(*category)
		if !filter.Valid() {
			return fmt.Errorf("unknown category %q", *category)
		}
	}

	now := a.now()
	tasks := service.FilteredAndSorted(a.store.Tasks(), a.store.Settings(), now, filter)
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "no tasks")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %-8s %-6s %s  %s", mark, t.Category, t.Priority, t.DueDate.Format("2006-01-02"), t.Title)
		if service.IsOverdue(t, now) {
			line += "  (overdue)"
		}
		fmt.Fprintf(a.out, "%s\n    id: %s\n", line, t.ID)
	}
	return nil
}

func (a *App) runShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <id>")
	}
	task, err := a.store.Get(args[0])
	if err != nil {
		return err
	}

	now := a.now()
	fmt.Fprintf(a.out, "%s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", task.Description)
	}
	fmt.Fprintf(a.out, "  category: %s  priority: %s\n", task.Category, task.Priority)
	fmt.Fprintf(a.out, "  due: %s", task.DueDate.Format("2006-01-02"))
	switch {
	case service.IsOverdue(task, now):
		fmt.Fprintln(a.out, " (overdue)")
	case service.IsDueToday(task, now):
		fmt.Fprintln(a.out, " (today)")
	default:
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "  completed: %v\n", task.Completed)
	if len(task.AssignedUsers) > 0 {
		fmt.Fprintf(a.out, "  assigned: %s\n", strings.Join(task.AssignedUsers, ", "))
	}
	fmt.Fprintf(a.out, "  created: %s\n", task.CreatedAt.Format("2006-01-02"))
	return nil
}

func (a *App) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: edit <id> [flags]")
	}
	id, rest := args[0], args[1:]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "task title")
	desc := fs.String("desc", "", "task description")
	category := fs.String("category", "", "task category")
	priority := fs.String("priority", "", "task priority")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	done := fs.Bool("done", false, "completed flag")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	var patch store.TaskPatch
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "desc":
			patch.Description = desc
		case "category":
			c := model.Category(*category)
			patch.Category = &c
		case "priority":
			p := model.Priority(*priority)
			patch.Priority = &p
		case "due":
			parsed, err := parseDate(*due)
			if err != nil {
				parseErr = err
				return
			}
			patch.DueDate = &parsed
		case "done":
			patch.Completed = done
		}
	})
	if parseErr != nil {
		return parseErr
	}

	task, err := a.store.Update(id, patch)
	if err != nil {
		return err
	}
	if err := a.saveTasks(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated %s\n", task.Title)
	return nil
}

func (a *App) runDone(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: done <id>")
	}
	task, err := a.store.ToggleComplete(args[0])
	if err != nil {
		return err
	}
	if err := a.saveTasks(ctx); err != nil {
		return err
	}
	state := "reopened"
	if task.Completed {
		state = "completed"
	}
	fmt.Fprintf(a.out, "%s %s\n", state, task.Title)
	return nil
}

func (a *App) runRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rm <id>")
	}
	if err := a.store.Delete(args[0]); err != nil {
		return err
	}
	if err := a.saveTasks(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed %s\n", args[0])
	return nil
}

func (a *App) runAssign(ctx context.Context, args []string, add bool) error {
	if len(args) != 2 {
		verb := "assign"
		if !add {
			verb = "unassign"
		}
		return fmt.Errorf("usage: %s <id> <name>", verb)
	}

	var task model.Task
	var err error
	if add {
		task, err = a.store.AddAssignee(args[0], args[1])
	} else {
		task, err = a.store.RemoveAssignee(args[0], args[1])
	}
	if err != nil {
		return err
	}
	if err := a.saveTasks(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s\n", task.Title, strings.Join(task.AssignedUsers, ", "))
	return nil
}

func (a *App) runStats() error {
	tasks := a.store.Tasks()
	for _, category := range []model.Category{model.CategoryPrivate, model.CategoryWork, model.CategoryHome} {
		stats := service.StatsByCategory(tasks, category)
		fmt.Fprintf(a.out, "%-8s %d/%d done (%.0f%%), %d pending\n",
			category, stats.Completed, stats.Total, stats.Progress()*100, stats.Pending)
	}
	return nil
}

func (a *App) runSettings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	fs.SetOutput(a.out)
	block := fs.Bool("block", false, "hide work tasks after hours")
	end := fs.String("end", "", "end of work hours, HH:MM")
	notifications := fs.Bool("notifications", false, "notifications enabled")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var patch store.SettingsPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "block":
			patch.BlockWorkTasksAfterHours = block
		case "end":
			patch.WorkHoursEnd = end
		case "notifications":
			patch.Notifications = notifications
		}
	})

	settings := a.store.UpdateSettings(patch)
	if err := a.settingsRepo.Save(ctx, settings); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "block work after hours: %v\n", settings.BlockWorkTasksAfterHours)
	fmt.Fprintf(a.out, "work hours end:         %s\n", settings.WorkHoursEnd)
	fmt.Fprintf(a.out, "notifications:          %v\n", settings.Notifications)
	return nil
}

// runWatch prints the overview now and again every day at the work-hours
// boundary, so the list on screen reflects the gate flipping.
func (a *App) runWatch(ctx context.Context) error {
	fmt.Fprintln(a.out, service.DailyOverview(a.store.Tasks(), a.store.Settings(), a.now()))

	scheduler := service.NewScheduler(a.now().Location())
	_, err := scheduler.ScheduleDaily(a.store.Settings().WorkHoursEnd, func() {
		fmt.Fprintln(a.out, "")
		fmt.Fprintln(a.out, service.DailyOverview(a.store.Tasks(), a.store.Settings(), a.now()))
	})
	if err != nil {
		return fmt.Errorf("schedule boundary refresh: %w", err)
	}

	scheduler.Start()
	defer scheduler.Stop()
	<-ctx.Done()
	return nil
}

func (a *App) saveTasks(ctx context.Context) error {
	return a.taskRepo.ReplaceAll(ctx, a.store.Tasks())
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}
