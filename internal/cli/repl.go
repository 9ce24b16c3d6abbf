package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies it;
// tests provide a stub.
type execIface interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Delete(ctx context.Context) error
	List(ctx context.Context) error
}

const menu = `
=== USER AUTH SYSTEM ===
1. Register
2. Login
3. Delete User
4. List Users
5. Exit`

// runREPL prints the menu, reads a choice per line and dispatches it, once
// per iteration. Errors from handlers are ignored here: handlers already told
// the user. The loop ends on "5"/"exit"/"quit" or when the reader is
// exhausted.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintln(w, menu)

		choice, err := GetSimpleText(reader, "Choose an option: ", w)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(w, "Error reading input: %v\n", err)
			}
			fmt.Fprintln(w)
			return
		}

		fields := strings.Fields(choice)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "1", "register":
			_ = a.Register(ctx)
		case "2", "login":
			_ = a.Login(ctx)
		case "3", "delete":
			_ = a.Delete(ctx)
		case "4", "list":
			_ = a.List(ctx)
		case "5", "exit", "quit":
			fmt.Fprintln(w, "Goodbye!")
			return
		case "help", "menu":
			// shown again at the top of the loop
		default:
			fmt.Fprintln(w, "Invalid choice. Try again.")
		}
	}
}
