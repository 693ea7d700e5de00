// Package pager implements the interactive pagination loop shared by every
// listing in the application: home feed, tweet search, user search, and
// follower lists. The controller is generic over the row type; data access
// and rendering are passed in as function values.
package pager

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the page length used when Options leaves PageSize unset.
const DefaultPageSize = 5

// Console is the minimal prompt surface the controller needs. The ui
// prompter satisfies it; tests use a scripted fake.
type Console interface {
	Input(prompt string) (string, error)
	Notify(message string)
	Acknowledge() error
}

// FetchFunc returns one page of rows starting at offset. Pages are
// recomputed from the store on every navigation step; callers bind extra
// query parameters (user id, keywords) by closure.
type FetchFunc[T any] func(offset, limit int) ([]T, error)

// DisplayFunc renders a page and reports whether it had content.
type DisplayFunc[T any] func(rows []T) bool

// Action tags how a pagination session ended.
type Action int

const (
	Quit Action = iota
	Select
)

// Result carries the terminal action and, for Select, the chosen row.
type Result[T any] struct {
	Action   Action
	Selected T
}

// Options configure one pagination session.
type Options struct {
	EmptyMessage  string // shown when the very first page is empty
	NoMoreMessage string // shown when a later page is empty
	Prompt        string
	PageSize      int
}

// Run drives fetch and display through the navigation protocol:
//
//	n           advance one page (no upper bound; the next empty fetch ends the loop)
//	p           retreat one page, floored at the first
//	q           quit with no selection
//	1..len      select that row of the currently displayed page
//
// An empty page ends the session after an acknowledgment: the empty message
// at offset 0, the no-more message anywhere later. Invalid selections are
// reported and the prompt reissued at the same offset without refetching.
// Errors from fetch or the console (including the exit-keyword signal) are
// returned to the caller unchanged.
func Run[T any](console Console, fetch FetchFunc[T], display DisplayFunc[T], opts Options) (Result[T], error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	var zero Result[T]
	offset := 0
	for {
		rows, err := fetch(offset, pageSize)
		if err != nil {
			return zero, err
		}
		if !display(rows) {
			if offset == 0 {
				console.Notify("\n" + opts.EmptyMessage)
			} else {
				console.Notify("\n" + opts.NoMoreMessage)
			}
			if err := console.Acknowledge(); err != nil {
				return zero, err
			}
			return Result[T]{Action: Quit}, nil
		}
	input:
		for {
			raw, err := console.Input("\n" + opts.Prompt)
			if err != nil {
				return zero, err
			}
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "n":
				offset += pageSize
				break input
			case "p":
				offset = max(0, offset-pageSize)
				if offset == 0 {
					console.Notify("\nYou are at the first page.")
				}
				break input
			case "q":
				return Result[T]{Action: Quit}, nil
			default:
				index, convErr := strconv.Atoi(strings.TrimSpace(raw))
				if convErr != nil {
					console.Notify("Invalid input. Please try again.")
					continue
				}
				if index < 1 || index > len(rows) {
					console.Notify("Invalid item number.")
					continue
				}
				return Result[T]{Action: Select, Selected: rows[index-1]}, nil
			}
		}
	}
}
