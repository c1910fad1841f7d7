package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/shelf-sh/shelf/internal/history"
	"github.com/shelf-sh/shelf/internal/paths"
	"github.com/shelf-sh/shelf/internal/styles"
	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/shell"
)

var BUILD_VERSION = "dev"

var debugFlag = flag.Bool("debug", false, "log at debug level")
var configFile = flag.String("config", "", "use a custom config file instead of ~/.config/shelf/config.yaml")
var historyFile = flag.String("history", "", "use a custom history database")

var versionFlag bool

func init() {
	flag.BoolVar(&versionFlag, "v", false, "display build version")
	flag.BoolVar(&versionFlag, "version", false, "display build version")
}

// main wires up the demo bookshelf shell: config from the XDG config dir,
// history in a sqlite database under the data dir, structured logs to a
// file, and a small command tree for keeping a list of books.
func main() {
	flag.Parse()

	if versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	cfgPath := *configFile
	if cfgPath == "" {
		cfgPath = paths.ConfigFile()
	}
	cfg, err := shell.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}

	logger, err := initializeLogger()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	histPath := *historyFile
	if histPath == "" {
		histPath = cfg.HistoryFile
	}
	if histPath == "" {
		histPath = paths.HistoryFile()
	}
	historyManager, err := history.Open(histPath)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize history manager: %v", err))
	}
	defer func() {
		if err := historyManager.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close history manager: %v\n", err)
		}
	}()

	logger.Info("-------- new shelf session --------", zap.Any("args", os.Args))

	sh := buildShell(cfg, logger, historyManager)

	if err := run(sh); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		os.Exit(1)
	}
}

func run(sh *shell.Shell[*bookshelf]) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return sh.Run()
	}

	// Piped input: evaluate line by line without the line editor.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() && !sh.Terminated() {
		output, err := sh.Eval(scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
			continue
		}
		if output != "" {
			fmt.Println(output)
		}
	}
	return scanner.Err()
}

// bookshelf is the demo state: an ordered list of books.
type bookshelf struct {
	books []string
}

func buildShell(cfg shell.Config, logger *zap.Logger, historyManager *history.Manager) *shell.Shell[*bookshelf] {
	sh := shell.NewWithState(cfg.Prompt, &bookshelf{},
		shell.WithLogger[*bookshelf](logger),
		shell.WithHistory[*bookshelf](historyManager),
		shell.WithQuotes[*bookshelf](cfg.QuoteChars()...),
		shell.WithContinuationPrompt[*bookshelf](cfg.ContinuationPrompt),
		shell.WithHistorySize[*bookshelf](cfg.HistorySize),
	)

	for _, cmd := range []*command.Command[*bookshelf]{
		command.NewLeaf("list", "lists the books on the shelf", listExec),
		command.NewLeaf("pop", "removes the most recently added book", popExec),
		command.NewParent("add", "adds a book to the shelf",
			command.NewLeaf("title", "adds a book by title", addTitleExec,
				command.WithValidator[*bookshelf](requireArgs)),
			command.NewParent("isbn", "adds a book by ISBN",
				command.NewLeaf("eu", "adds a book by its EU ISBN", addISBNExec("eu"),
					command.WithValidator[*bookshelf](requireArgs)),
				command.NewLeaf("us", "adds a book by its US ISBN", addISBNExec("us"),
					command.WithValidator[*bookshelf](requireArgs)),
			),
		),
		command.NewLeaf("echo", "echoes its arguments back", echoExec,
			command.WithValidator[*bookshelf](requireArgs)),
	} {
		if err := sh.Register(cmd); err != nil {
			panic(fmt.Sprintf("failed to register %q: %v", cmd.Name(), err))
		}
	}

	return sh
}

func initializeLogger() (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if *debugFlag {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{paths.LogFile()}

	return loggerConfig.Build()
}

func listExec(shelf *bookshelf, _ []string) (string, error) {
	quoted := make([]string, len(shelf.books))
	for i, book := range shelf.books {
		quoted[i] = fmt.Sprintf("'%s'", book)
	}
	return fmt.Sprintf("Current: [%s]", strings.Join(quoted, ", ")), nil
}

func popExec(shelf *bookshelf, _ []string) (string, error) {
	if len(shelf.books) == 0 {
		return "shelf is already empty", nil
	}
	shelf.books = shelf.books[:len(shelf.books)-1]
	return "popped last item", nil
}

func addTitleExec(shelf *bookshelf, args []string) (string, error) {
	title := strings.Join(args, " ")
	shelf.books = append(shelf.books, title)
	return fmt.Sprintf("Added '%s'", title), nil
}

func addISBNExec(region string) func(*bookshelf, []string) (string, error) {
	return func(shelf *bookshelf, args []string) (string, error) {
		entry := region + ":" + args[0]
		shelf.books = append(shelf.books, entry)
		return fmt.Sprintf("Added '%s'", entry), nil
	}
}

func echoExec(_ *bookshelf, args []string) (string, error) {
	return strings.Join(args, " "), nil
}

func requireArgs(args []string) error {
	if len(args) != 0 {
		return nil
	}
	return fmt.Errorf("expected a non-zero number of arguments")
}
