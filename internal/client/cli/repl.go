package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing REPL output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Generate(ctx context.Context) error
	History(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: signup, login, exit"
	helpLoggedIn  = "Available commands: generate, history, show <id>, export <id> <txt|pdf|docx>, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
//
//	Not logged in:
//	  - help           show available commands
//	  - signup         create an account
//	  - login          start a session
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - generate       generate a new package
//	  - history        list the newest packages
//	  - show <id>      render one package
//	  - export <id> <format>
//	  - logout         end the session
//	  - exit | quit    leave the program
//
// Command errors are printed and the loop continues. It returns on EOF or
// exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("scriptoria%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		var cmdErr error
		switch {
		case cmd == "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case cmd == "signup" || cmd == "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; log out first.")
				continue
			}
			if cmd == "signup" {
				cmdErr = a.SignUp(ctx)
			} else {
				cmdErr = a.Login(ctx)
			}

		case isSessionCommand(cmd):
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			cmdErr = dispatch(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(errorStyle.Render("Error: " + cmdErr.Error()))
		}
	}
}

func isSessionCommand(cmd string) bool {
	switch cmd {
	case "generate", "history", "show", "export", "logout":
		return true
	}
	return false
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "generate":
		return a.Generate(ctx)
	case "history":
		return a.History(ctx)
	case "show":
		return a.Show(ctx, args)
	case "export":
		return a.Export(ctx, args)
	default:
		return a.Logout(ctx)
	}
}
