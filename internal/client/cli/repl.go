package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddAudit(ctx context.Context) error
	List(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help           show available commands
//	  - list [s] [l]   list audits, optionally skipping s and showing l
//	  - exit | quit    leave the program
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//
//	Logged in:
//	  - add            add an audit record
//	  - logout         forget the access token
//
// Handler errors have already been reported to the user by the handler, so
// they are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "ak %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: add, (l)ist [skip] [limit], logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, (l)ist [skip] [limit], exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "add":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please log in first")
				continue
			}
			_ = a.AddAudit(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
