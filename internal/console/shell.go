// Package console is the menu-driven front end. It reads choices and raw
// field values and hands them to the service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/geocoder89/eventdesk/internal/actorctx"
	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/geocoder89/eventdesk/internal/service"
	"github.com/geocoder89/eventdesk/internal/utils"
	"golang.org/x/term"
)

// errQuit ends the shell when input runs out.
var errQuit = errors.New("input closed")

type Shell struct {
	svc     *service.Service
	session *auth.Session
	metrics *observability.SessionMetrics

	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
	log          *slog.Logger
}

type Option func(*Shell)

// WithTerminal masks password input when f is an interactive terminal.
func WithTerminal(f *os.File) Option {
	return func(sh *Shell) {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return
		}
		sh.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(sh.out)
			return string(b), err
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(sh *Shell) { sh.log = log }
}

// WithSessionMetrics logs a summary of the session's operations on exit.
func WithSessionMetrics(m *observability.SessionMetrics) Option {
	return func(sh *Shell) { sh.metrics = m }
}

func New(svc *service.Service, session *auth.Session, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		svc:     svc,
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
		log:     slog.New(slog.DiscardHandler),
	}
	sh.readPassword = sh.readLine
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Run logs a user in and drives their menu until logout or end of input.
// It returns auth.ErrAccessDenied when the login attempts run out.
func (sh *Shell) Run(ctx context.Context) error {
	sh.banner()

	id, err := sh.login(ctx)
	if err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}
		return err
	}
	defer sh.finish(ctx)

	ctx = actorctx.WithIdentity(ctx, id)

	sh.printf("\n*** LOGIN SUCCESSFUL ***\nWelcome, %s!\n", id.FullName)

	if id.IsAdmin() {
		err = sh.adminMenu(ctx)
	} else {
		err = sh.studentMenu(ctx)
	}
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (sh *Shell) finish(ctx context.Context) {
	sh.session.Logout(ctx)
	sh.printf("Logged out successfully. Goodbye!\n")

	if sh.metrics != nil {
		snap := sh.metrics.Snapshot()
		sh.log.InfoContext(ctx, "session summary",
			"operations", snap.Operations,
			"succeeded", snap.Succeeded,
			"failed", snap.Failed,
			"denied", snap.Denied,
			"avg_ms", snap.AverageDuration.Milliseconds(),
			"max_ms", snap.MaxDuration.Milliseconds(),
		)
	}
}

func (sh *Shell) banner() {
	sh.printf("\n=================================================\n")
	sh.printf("   COLLEGE EVENT MANAGEMENT SYSTEM\n")
	sh.printf("=================================================\n")
}

func (sh *Shell) login(ctx context.Context) (auth.Identity, error) {
	for {
		sh.printf("\n=== LOGIN SYSTEM ===\n")
		username, err := sh.prompt("Username: ")
		if err != nil {
			return auth.Identity{}, err
		}

		sh.printf("Password: ")
		password, err := sh.readPassword()
		if err != nil {
			return auth.Identity{}, errQuit
		}

		id, err := sh.session.Login(ctx, username, utils.Trim(password))
		if err == nil {
			return id, nil
		}

		switch {
		case errors.Is(err, auth.ErrAccessDenied):
			sh.printf("Maximum login attempts exceeded. Access denied!\n")
			return auth.Identity{}, auth.ErrAccessDenied
		case auth.IsIO(err):
			sh.printf("Error: could not read the user file: %v\n", err)
		default:
			sh.printf("Invalid username or password!\n")
		}
		sh.printf("Attempts remaining: %d\n", sh.session.Remaining())
	}
}

func (sh *Shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return utils.Trim(line), nil
		}
		return "", errQuit
	}
	return utils.Trim(line), nil
}

func (sh *Shell) prompt(label string) (string, error) {
	sh.printf("%s", label)
	return sh.readLine()
}

// promptInt reads a whole number; ok is false when the input is not one.
func (sh *Shell) promptInt(label string) (n int, ok bool, err error) {
	s, err := sh.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(s)
	return n, convErr == nil, nil
}

// choose reads a 1-based selection among n items and returns it 0-based.
// ok is false for 0, out-of-range or non-numeric input.
func (sh *Shell) choose(label string, n int) (index int, ok bool, err error) {
	choice, valid, err := sh.promptInt(label)
	if err != nil || !valid || choice < 1 || choice > n {
		return 0, false, err
	}
	return choice - 1, true, nil
}

func (sh *Shell) fail(err error) {
	sh.printf("Error: %v\n", err)
}
