package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yigit/hochschule/internal/app/services"
	"github.com/yigit/hochschule/internal/config"
	"github.com/yigit/hochschule/internal/pkg/logger"
)

// Menu numbering shared by all screens
const (
	firstMenuPoint = 1
	backMenuPoint  = 8
	quitMenuPoint  = 8
)

// App is the interactive console front end
type App struct {
	in       *Input
	out      io.Writer
	theme    theme
	services *services.Services
}

// NewApp creates a console application driven by in
func NewApp(svc *services.Services, in *Input) *App {
	return &App{
		in:       in,
		out:      in.out,
		theme:    newTheme(in.out),
		services: svc,
	}
}

// menuEntry is one numbered operation of an entity screen
type menuEntry struct {
	choice int
	label  string
	action func(ctx context.Context) error
}

// screen is an entity management menu
type screen struct {
	title   string
	entries []menuEntry
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) heading(title string) {
	a.println(a.theme.header.Render(fmt.Sprintf("--- %s ---", title)))
}

func (a *App) done(msg string) {
	a.println(a.theme.success.Render(msg))
}

// Run shows the main menu until the operator quits or input ends
func (a *App) Run(ctx context.Context) error {
	for {
		a.println(a.theme.banner.Render("***************************************"))
		a.println(a.theme.banner.Render("Main Menu"))
		a.println(a.theme.banner.Render("***************************************"))
		a.println(a.theme.item.Render("1 Course Management"))
		a.println(a.theme.item.Render("2 Semester Management"))
		a.println(a.theme.item.Render("3 Lecturer Management"))
		a.println(a.theme.item.Render("4 Student Management"))
		a.println(a.theme.item.Render("8 Quit Program"))
		a.println(a.theme.banner.Render("***************************************"))

		choice, err := a.in.Int("Please select menu item and hit enter")
		if err != nil {
			return a.finish(err)
		}

		switch choice {
		case 1:
			err = a.runScreen(ctx, a.courseScreen())
		case 2:
			err = a.runScreen(ctx, a.semesterScreen())
		case 3:
			err = a.runScreen(ctx, a.lecturerScreen())
		case 4:
			err = a.runScreen(ctx, a.studentScreen())
		case quitMenuPoint:
			a.println("Goodbye.")
			return nil
		default:
			a.println(a.theme.failure.Render("Unfortunately your input cant be read."))
		}
		if err != nil {
			return a.finish(err)
		}
	}
}

// finish turns end of input into a clean exit
func (a *App) finish(err error) error {
	if errors.Is(err, ErrInputClosed) {
		a.println()
		logger.Debug().Msg("Console input closed")
		return nil
	}
	return err
}

func (a *App) runScreen(ctx context.Context, s screen) error {
	for {
		a.println()
		a.heading(s.title)
		for _, e := range s.entries {
			a.println(a.theme.item.Render(fmt.Sprintf("%d. %s", e.choice, e.label)))
		}
		a.println(a.theme.item.Render(fmt.Sprintf("%d. Back to Main Menu", backMenuPoint)))
		a.println(a.theme.muted.Render("----------------------------"))

		choice, err := a.in.IntBetween("Enter your choice", firstMenuPoint, backMenuPoint)
		if err != nil {
			return err
		}
		if choice == backMenuPoint {
			return nil
		}

		entry, ok := findEntry(s.entries, choice)
		if !ok {
			a.println(a.theme.failure.Render("Unfortunately, your input cannot be read!"))
			continue
		}
		if err := a.guard(ctx, entry); err != nil {
			return err
		}
	}
}

func findEntry(entries []menuEntry, choice int) (menuEntry, bool) {
	for _, e := range entries {
		if e.choice == choice {
			return e, true
		}
	}
	return menuEntry{}, false
}

// guard runs an operation and reports its failure without leaving the menu.
// Only errors of the input stream itself are passed on.
func (a *App) guard(ctx context.Context, entry menuEntry) error {
	err := entry.action(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInputClosed) || errors.Is(err, ErrLineTooLong) {
		return err
	}
	logger.Debug().Err(err).Str("operation", entry.label).Msg("Console operation failed")
	a.println(a.theme.failure.Render("Error: " + err.Error()))
	return nil
}

// ChooseProvider asks which storage backend to use
func ChooseProvider(in *Input) (string, error) {
	t := newTheme(in.out)
	in.println(t.header.Render("Choose your database:"))
	in.println(t.item.Render("1. In-Memory Database"))
	in.println(t.item.Render("2. PostgreSQL"))

	choice, err := in.IntBetween("Please enter the value", 1, 2)
	if err != nil {
		return "", err
	}
	if choice == 1 {
		return config.ProviderMemory, nil
	}
	return config.ProviderPostgres, nil
}

// displayList prints every item or the empty message
func displayList[T any](a *App, items []T, empty string, show func(T)) {
	if len(items) == 0 {
		a.println(a.theme.muted.Render(empty))
		return
	}
	for _, item := range items {
		show(item)
	}
}
