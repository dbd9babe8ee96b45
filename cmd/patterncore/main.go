// Command patterncore is a small interactive shell over a
// patterncore.Store: add categories, match an utterance, recover a
// wildcard's captured text, and save/restore the trie.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/helix90/patterncore/internal/seed"
	"github.com/helix90/patterncore/pkg/patterncore"
)

func main() {
	var (
		seedPath = flag.String("seed", "", "Path to a YAML file of pattern/that/topic/template entries to preload")
		botName  = flag.String("botname", "", "Name to recognize as BOT_NAME in patterns")
		logPath  = flag.String("logfile", "patterncore.log", "Path to the rotating log file")
		debug    = flag.Bool("debug", false, "Enable debug-level logging")
	)
	flag.Parse()

	logger := newLogger(*logPath, *debug)
	store := patterncore.NewWithLogger(logger)

	if *botName != "" {
		store.SetBotName(*botName)
	}

	if *seedPath != "" {
		entries, err := seed.Load(*seedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading seed file: %v\n", err)
			os.Exit(1)
		}
		if err := seed.Apply(store, entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying seed file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Loaded %d categories from %s\n", len(entries), *seedPath)
	}

	fmt.Println("patterncore shell")
	fmt.Println("Commands: add, match, wildcard, save, restore, dump, numtemplates, quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			fmt.Println("Goodbye!")
			break
		}
		if err := dispatch(store, line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string, debug bool) *slog.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    8, // MB
		MaxBackups: 3,
		MaxAge:     14,
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// dispatch parses and runs one shell command. Fields are pipe-separated
// ("|") since pattern/that/topic text may itself contain spaces.
func dispatch(store *patterncore.Store, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "add":
		return cmdAdd(store, rest)
	case "match":
		return cmdMatch(store, rest)
	case "wildcard":
		return cmdWildcard(store, rest)
	case "save":
		return cmdSave(store, rest)
	case "restore":
		return cmdRestore(store, rest)
	case "dump":
		fmt.Print(store.Dump())
		return nil
	case "numtemplates":
		fmt.Println(store.NumTemplates())
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdAdd(store *patterncore.Store, rest string) error {
	fields := strings.Split(rest, "|")
	if len(fields) != 4 {
		return fmt.Errorf("usage: add pattern|that|topic|template")
	}
	return store.Add(fields[0], fields[1], fields[2], fields[3])
}

func cmdMatch(store *patterncore.Store, rest string) error {
	fields := strings.Split(rest, "|")
	for len(fields) < 3 {
		fields = append(fields, "")
	}
	result, ok := store.Match(fields[0], fields[1], fields[2])
	if !ok {
		fmt.Println("no match")
		return nil
	}
	fmt.Printf("template: %v\n", result.Template)
	return nil
}

func cmdWildcard(store *patterncore.Store, rest string) error {
	fields := strings.Split(rest, "|")
	if len(fields) != 5 {
		return fmt.Errorf("usage: wildcard kind|utterance|that|topic|index")
	}
	index, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", fields[4], err)
	}
	got, err := store.Wildcard(patterncore.WildcardKind(fields[0]), fields[1], fields[2], fields[3], index)
	if err != nil {
		return err
	}
	fmt.Printf("captured: %q\n", got)
	return nil
}

func cmdSave(store *patterncore.Store, path string) error {
	if path == "" {
		return fmt.Errorf("usage: save path")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return store.Save(f)
}

func cmdRestore(store *patterncore.Store, path string) error {
	if path == "" {
		return fmt.Errorf("usage: restore path")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return store.Restore(f)
}
