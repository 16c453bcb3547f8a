package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	exprs "github.com/ImaanIbrar/PS3-Representing-Expressions"
)

func main() {
	log.SetFlags(0)
	var tree bool
	flag.BoolVar(&tree, "tree", false, "print the structure of each expression")
	flag.Parse()

	if flag.NArg() > 0 {
		src := strings.Join(flag.Args(), " ")
		e, err := exprs.Parse(src)
		if err != nil {
			log.Fatal(err)
		}
		if tree {
			printTree(os.Stdout, e, 0)
		}
		fmt.Println(e)
		return
	}
	repl(tree)
}

// repl reads expressions interactively until a blank line or EOF. Every
// parsed expression is echoed back in its canonical rendering.
func repl(tree bool) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if hist == "" {
			return
		}
		f, err := os.Create(hist)
		if err != nil {
			return
		}
		ln.WriteHistory(f)
		f.Close()
	}()

	for {
		src, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			log.Fatal(err)
		}
		if strings.TrimSpace(src) == "" {
			return
		}
		ln.AppendHistory(src)
		e, err := exprs.Parse(src)
		if err != nil {
			var perr exprs.ParseError
			if errors.As(err, &perr) && perr.Pos() > 0 {
				// The prompt is two cells wide, so the caret lines up under
				// the offending column as long as the input is ASCII.
				fmt.Fprintf(os.Stderr, "%*c\n", perr.Pos()+2, '^')
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if tree {
			printTree(os.Stdout, e, 0)
		}
		fmt.Println(e)
	}
}

// historyPath is the file the REPL keeps input history in, or the empty
// string if there is no home directory to keep it in.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".expressions_history")
}

// printTree writes one line per subexpression, indented by depth and labeled
// by kind.
func printTree(w io.Writer, e exprs.Expression, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := e.(type) {
	case *exprs.Sum:
		fmt.Fprintf(w, "%s%v\n", indent, e.Kind())
		printTree(w, e.Left(), depth+1)
		printTree(w, e.Right(), depth+1)
	case *exprs.Product:
		fmt.Fprintf(w, "%s%v\n", indent, e.Kind())
		printTree(w, e.Left(), depth+1)
		printTree(w, e.Right(), depth+1)
	default:
		fmt.Fprintf(w, "%s%v %v\n", indent, e.Kind(), e)
	}
}
