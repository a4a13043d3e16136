package nogo

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

const (
	engineName    = "GuaGua"
	engineVersion = "1.0"
)

// response is a single GTP reply: ok distinguishes "=" from "?", and text
// is the payload before the blank line that terminates every reply.
type response struct {
	ok   bool
	text string
}

func (r response) String() string {
	prefix := "? "
	if r.ok {
		prefix = "= "
	}
	return prefix + r.text + "\n\n"
}

func ok(text string) response  { return response{ok: true, text: text} }
func fail(err error) response  { return response{ok: false, text: err.Error()} }

// Engine drives a GTP session over an io.Reader/io.Writer pair, the way a
// GTP-speaking bot is always wired up: one line in, one reply out.
type Engine struct {
	session  *Session
	handlers map[string]func(args []string) response
	logger   *log.Logger
}

// NewEngine wires a fresh Session to the standard command set.
func NewEngine(session *Session, logger *log.Logger) *Engine {
	e := &Engine{session: session, logger: logger}
	e.handlers = map[string]func(args []string) response{
		"protocol_version": e.handleProtocolVersion,
		"name":             e.handleName,
		"version":          e.handleVersion,
		"known_command":    e.handleKnownCommand,
		"list_commands":    e.handleListCommands,
		"boardsize":        e.handleBoardSize,
		"clear_board":      e.handleClearBoard,
		"komi":             e.handleKomi,
		"play":             e.handlePlay,
		"genmove":          e.handleGenMove,
		"undo":             e.handleUndo,
		"final_score":      e.handleFinalScore,
		"showboard":        e.handleShowBoard,
		"quit":             e.handleQuit,
	}
	return e
}

// Run reads commands from in and writes responses to out until "quit" or
// EOF. Each command is dispatched on its own goroutine-free pass: the
// model is cooperative, one command completes fully before the next line
// is read. quit is looked up in handlers like any other verb, so
// known_command and list_commands both see it; Run just also treats it as
// the signal to stop reading further lines.
func (e *Engine) Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]
		fmt.Fprint(out, e.dispatch(cmd, args).String())
		if cmd == "quit" {
			return
		}
	}
}

func (e *Engine) dispatch(cmd string, args []string) (resp response) {
	handler, found := e.handlers[cmd]
	if !found {
		return fail(errUnknownCommand)
	}
	defer func() {
		if r := recover(); r != nil {
			err := newEngineError(fmt.Sprint(r))
			if e.logger != nil {
				e.logger.Printf("internal error handling %q: %v", cmd, err)
			}
			resp = fail(newProtocolError("internal error"))
		}
	}()
	return handler(args)
}

func (e *Engine) handleProtocolVersion(args []string) response { return ok("2") }
func (e *Engine) handleName(args []string) response             { return ok(engineName) }
func (e *Engine) handleVersion(args []string) response          { return ok(engineVersion) }

func (e *Engine) handleKnownCommand(args []string) response {
	if len(args) != 1 {
		return fail(newProtocolError("known_command requires one argument"))
	}
	_, found := e.handlers[args[0]]
	return ok(strconv.FormatBool(found))
}

func (e *Engine) handleListCommands(args []string) response {
	names := make([]string, 0, len(e.handlers))
	for name := range e.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return ok(strings.Join(names, "\n"))
}

func (e *Engine) handleBoardSize(args []string) response {
	if len(args) != 1 {
		return fail(newProtocolError("boardsize requires one argument"))
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fail(errUnacceptableSize)
	}
	if err := e.session.SetBoardSize(size); err != nil {
		return fail(err)
	}
	return ok("")
}

func (e *Engine) handleClearBoard(args []string) response {
	e.session.ClearBoard()
	return ok("")
}

func (e *Engine) handleKomi(args []string) response {
	if len(args) != 1 {
		return fail(newProtocolError("komi requires one argument"))
	}
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fail(newProtocolError("invalid komi"))
	}
	e.session.SetKomi(k)
	return ok("")
}

func (e *Engine) handlePlay(args []string) response {
	if len(args) != 2 {
		return fail(newProtocolError("play requires color and vertex"))
	}
	color, err := ParseColor(args[0])
	if err != nil {
		return fail(newProtocolError(err.Error()))
	}
	p, err := ParseVertex(args[1])
	if err != nil {
		return fail(newProtocolError(err.Error()))
	}
	if p == Resign {
		return ok("")
	}
	if err := e.session.Play(color, p); err != nil {
		return fail(err)
	}
	return ok("")
}

func (e *Engine) handleGenMove(args []string) response {
	if len(args) != 1 {
		return fail(newProtocolError("genmove requires a color"))
	}
	color, err := ParseColor(args[0])
	if err != nil {
		return fail(newProtocolError(err.Error()))
	}
	p := e.session.GenMove(color)
	return ok(p.String())
}

func (e *Engine) handleUndo(args []string) response {
	if err := e.session.Undo(); err != nil {
		return fail(err)
	}
	return ok("")
}

func (e *Engine) handleFinalScore(args []string) response {
	return ok(e.session.FinalScore())
}

func (e *Engine) handleShowBoard(args []string) response {
	return ok("\n" + e.session.ShowBoard())
}

func (e *Engine) handleQuit(args []string) response { return ok("") }
