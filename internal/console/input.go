package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/yigit/hochschule/internal/app/models"
	"github.com/yigit/hochschule/internal/pkg/helpers"
)

// ErrInputClosed is returned once the input stream is exhausted
var ErrInputClosed = errors.New("input closed")

// clearSelection entered at a selection prompt removes every entry
const clearSelection = "-"

// maxLineLength bounds a single answer
const maxLineLength = 1 << 20

// ErrLineTooLong is returned when an answer exceeds maxLineLength bytes
var ErrLineTooLong = fmt.Errorf("input line longer than %d bytes", maxLineLength)

// Input reads operator answers line by line and writes prompts to out
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInput creates an Input reading from r and prompting on w
func NewInput(r io.Reader, w io.Writer) *Input {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	return &Input{scanner: scanner, out: w}
}

func (in *Input) readLine(prompt string) (string, error) {
	fmt.Fprintf(in.out, "%s: ", prompt)
	if !in.scanner.Scan() {
		err := in.scanner.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return "", ErrLineTooLong
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(in.scanner.Text(), "\r"), nil
}

func (in *Input) println(a ...any) {
	fmt.Fprintln(in.out, a...)
}

// String reads one line as typed
func (in *Input) String(prompt string) (string, error) {
	return in.readLine(prompt)
}

// TrimmedString reads one line without surrounding whitespace
func (in *Input) TrimmedString(prompt string) (string, error) {
	line, err := in.readLine(prompt)
	return strings.TrimSpace(line), err
}

// StringWithDefault shows the current value and keeps it on empty input
func (in *Input) StringWithDefault(prompt, current string) (string, error) {
	line, err := in.readLine(fmt.Sprintf("%s (or press Enter to keep current) (%s)", prompt, current))
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

// Int reads an integer, asking again until one is entered
func (in *Input) Int(prompt string) (int64, error) {
	for {
		line, err := in.TrimmedString(prompt)
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.ParseInt(line, 10, 64); perr == nil {
			return v, nil
		}
		in.println("Invalid input. Please enter a valid integer.")
	}
}

// IntOrNil reads an optional integer; empty input yields nil
func (in *Input) IntOrNil(prompt string) (*int64, error) {
	for {
		line, err := in.TrimmedString(prompt)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}
		if v, perr := strconv.ParseInt(line, 10, 64); perr == nil {
			return &v, nil
		}
		in.println("Invalid input. Please enter a valid integer.")
	}
}

// IntWithDefault reads an optional reference ID. Empty input keeps current,
// 0 clears the reference.
func (in *Input) IntWithDefault(prompt string, current *int64) (*int64, error) {
	shown := "none"
	if current != nil {
		shown = strconv.FormatInt(*current, 10)
	}
	for {
		line, err := in.TrimmedString(fmt.Sprintf("%s (or press Enter to keep current, 0 to clear) (%s)", prompt, shown))
		if err != nil {
			return nil, err
		}
		if line == "" {
			return current, nil
		}
		if v, perr := strconv.ParseInt(line, 10, 64); perr == nil {
			return helpers.Int64Ptr(v), nil
		}
		in.println("Invalid input. Please enter a valid integer.")
	}
}

// IntBetween reads an integer within [low, high]
func (in *Input) IntBetween(prompt string, low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("minimum value %d cannot be greater than maximum value %d", low, high)
	}
	for {
		line, err := in.TrimmedString(prompt)
		if err != nil {
			return 0, err
		}
		if v, perr := strconv.Atoi(line); perr == nil && v >= low && v <= high {
			return v, nil
		}
		in.println(fmt.Sprintf("Invalid input. Please enter an integer between %d and %d.", low, high))
	}
}

// IntBetweenWithDefault reads an integer within [low, high], returning def on empty input
func (in *Input) IntBetweenWithDefault(prompt string, low, high, def int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("minimum value %d cannot be greater than maximum value %d", low, high)
	}
	for {
		line, err := in.TrimmedString(fmt.Sprintf("%s (%d)", prompt, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		if v, perr := strconv.Atoi(line); perr == nil && v >= low && v <= high {
			return v, nil
		}
		in.println(fmt.Sprintf("Invalid input. Please enter an integer between %d and %d.", low, high))
	}
}

// Date reads an optional date; empty input yields nil
func (in *Input) Date(prompt string) (*time.Time, error) {
	for {
		line, err := in.TrimmedString(fmt.Sprintf("%s (%s) (or press Enter to skip)", prompt, helpers.DateLayout))
		if err != nil {
			return nil, err
		}
		d, perr := helpers.ParseDate(line)
		if perr == nil {
			return d, nil
		}
		in.println(fmt.Sprintf("Invalid date format. Please enter in %s format.", helpers.DateLayout))
	}
}

// DateWithDefault reads a date, keeping current on empty input
func (in *Input) DateWithDefault(prompt string, current *time.Time) (*time.Time, error) {
	for {
		line, err := in.TrimmedString(fmt.Sprintf("%s (%s) (or press Enter to keep current) (%s)",
			prompt, helpers.DateLayout, helpers.FormatDate(current)))
		if err != nil {
			return nil, err
		}
		if line == "" {
			return current, nil
		}
		d, perr := helpers.ParseDate(line)
		if perr == nil {
			return d, nil
		}
		in.println(fmt.Sprintf("Invalid date format. Please enter in %s format.", helpers.DateLayout))
	}
}

// parseIDList splits a comma separated list, ignoring entries that are not integers
func parseIDList(line string) []int64 {
	var ids []int64
	for _, part := range strings.Split(line, ",") {
		if v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			ids = append(ids, v)
		}
	}
	return lo.Uniq(ids)
}

// pick returns the available entities whose ID appears in ids, in ids order
func pick[T models.Identifiable](available []T, ids []int64) []T {
	byID := make(map[int64]T, len(available))
	for _, item := range available {
		byID[item.GetID()] = item
	}
	selected := make([]T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			selected = append(selected, item)
		}
	}
	return selected
}

// SelectEntities reads comma separated IDs and returns the matching available
// entities. Unknown IDs and duplicates are dropped, empty input selects nothing.
func SelectEntities[T models.Identifiable](in *Input, available []T, prompt string) ([]T, error) {
	line, err := in.TrimmedString(fmt.Sprintf("\n%s (enter IDs separated by commas, or press Enter to skip)", prompt))
	if err != nil {
		return nil, err
	}
	return pick(available, parseIDList(line)), nil
}

// SelectEntitiesWithDefault behaves like SelectEntities but keeps current on
// empty input and clears the selection on "-"
func SelectEntitiesWithDefault[T models.Identifiable](in *Input, available []T, prompt string, current []T) ([]T, error) {
	line, err := in.TrimmedString(fmt.Sprintf("\n%s (enter IDs separated by commas, Enter to keep current %v, %s to clear)",
		prompt, models.IDs(current), clearSelection))
	if err != nil {
		return nil, err
	}
	switch line {
	case "":
		return current, nil
	case clearSelection:
		return []T{}, nil
	}
	return pick(available, parseIDList(line)), nil
}
