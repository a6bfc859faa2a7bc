package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"noted/internal/app"
	"noted/internal/client"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/store"
	"noted/internal/types"
)

const usageText = `noted is a terminal client for the noted server.

Usage:
  noted <command> [flags]

Commands:
  ui       run the terminal UI (default)
  login    sign in and store the session
  logout   discard the stored session
  whoami   show the signed-in account
  ls       list notes
  help     show help
  version  show version

Flags:
  -h, --help   show help

Login flags:
  --email      account email
  --password   account password (prompted when omitted)

Ls flags:
  --category   filter by category
  --search     filter by search text

Examples:
  noted login --email you@example.com
  noted ls --category Work
  noted
`

const version = "dev"

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOnErr("ui", runUI(nil))
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version", "--version":
		fmt.Println("noted " + version)
		return
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	case "login":
		exitOnErr("login", runLogin(args[1:]))
	case "logout":
		exitOnErr("logout", runLogout(args[1:]))
	case "whoami":
		exitOnErr("whoami", runWhoami(args[1:]))
	case "ls":
		exitOnErr("ls", runLS(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func exitOnErr(command string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "noted %s: %v\n", command, err)
	os.Exit(1)
}

type env struct {
	cfg    config.Config
	store  *store.Store
	client *client.Client
	log    logging.Logger
	closer []func()
}

func (e *env) Close() {
	for i := len(e.closer) - 1; i >= 0; i-- {
		e.closer[i]()
	}
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(statePath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	e := &env{
		cfg:    cfg,
		store:  st,
		client: client.New(cfg.APIBaseURL()),
		log:    logging.Nop(),
		closer: []func(){func() { _ = st.Close() }},
	}

	logPath, err := config.LogPath()
	if err == nil {
		if sink, sinkErr := logging.FileSink(logPath); sinkErr == nil {
			e.log = logging.New(sink, logging.ParseLevel(cfg.LogLevel()))
			e.closer = append(e.closer, func() { _ = sink.Close() })
		}
	}
	return e, nil
}

// restoreToken installs the stored session's token on the API client.
func (e *env) restoreToken() (*types.Session, error) {
	session, err := e.store.Session()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("not signed in, run `noted login` first")
	}
	e.client.SetToken(session.Token)
	return session, nil
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	api := app.NewClientAPI(e.client)
	return app.Run(app.Options{
		Auth:           api,
		Notes:          api,
		Store:          e.store,
		Logger:         e.log,
		SearchDebounce: e.cfg.SearchDebounce(),
	})
}

func runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		*password = strings.TrimRight(line, "\r\n")
	}
	if *password == "" {
		return fmt.Errorf("password is required")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session, err := e.client.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("%s", client.UserMessage(err, "sign in failed"))
	}
	if err := e.store.SaveSession(session); err != nil {
		return err
	}
	fmt.Printf("signed in as %s <%s>\n", session.Name, session.Email)
	return nil
}

func runLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.ClearSession(); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

func runWhoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	session, err := e.restoreToken()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", session.Name, session.Email)
	return nil
}

func runLS(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	category := fs.String("category", "", "filter by category")
	search := fs.String("search", "", "filter by search text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if _, err := e.restoreToken(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var notes []*types.Note
	if *search == "" && *category == "" {
		notes, err = e.client.ListNotes(ctx)
	} else {
		filterCategory := *category
		if filterCategory == "" {
			filterCategory = types.CategoryAll
		}
		notes, err = e.client.SearchNotes(ctx, *search, filterCategory)
	}
	if err != nil {
		return fmt.Errorf("%s", client.UserMessage(err, "failed to fetch notes"))
	}
	return writeNotesTable(os.Stdout, notes)
}

func writeNotesTable(out io.Writer, notes []*types.Note) error {
	w := tabwriter.NewWriter(out, 2, 2, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCATEGORY\tVISIBILITY\tUPDATED")
	for _, note := range notes {
		updated := ""
		if !note.UpdatedAt.IsZero() {
			updated = note.UpdatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", note.Title, note.Category, note.Publicity, updated)
	}
	return w.Flush()
}
