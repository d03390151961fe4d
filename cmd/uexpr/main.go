// uexpr - expression language front end
//
// Tokenizes and parses uexpr source, then prints tokens, the AST,
// JSON, identifier lists or a rule trace. Uses manual argument parsing
// so flags can be glued to their values (-dN style).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kolkov/uexpr"
	"github.com/kolkov/uexpr/analyze"
	"github.com/kolkov/uexpr/ast"
	"github.com/kolkov/uexpr/parser"
)

// version is set by GoReleaser at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

const (
	shortUsage = "usage: uexpr [-tokens|-json|-stats] [-r] [-trace] [-f file | 'expr']"
	longUsage  = `Modes (default: print the AST):
  -tokens           print the token stream as a table
  -json             print the AST as JSON
  -stats            print node counts and complexity
  -idents pattern   print identifiers matching a regex pattern ("" for all)

Parsing options:
  -e                parse as a single expression (default: program)
  -r                recover from syntax errors and report all of them
  -d N              maximum expression nesting depth
  -trace            print a parser rule trace to stderr

Input:
  -f file           read source from file (default: first argument, or stdin)

Other:
  -h, --help        show this help message
  -version          show uexpr version and exit
`
)

func main() {
	var (
		srcFile    string
		mode       = "ast"
		identPat   string
		singleExpr bool
		recovery   bool
		trace      bool
		maxDepth   int
	)

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-tokens":
			mode = "tokens"
		case "-json":
			mode = "json"
		case "-stats":
			mode = "stats"
		case "-idents":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -idents")
			}
			i++
			mode = "idents"
			identPat = os.Args[i]
		case "-e":
			singleExpr = true
		case "-r":
			recovery = true
		case "-trace":
			trace = true
		case "-d":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -d")
			}
			i++
			n, err := strconv.Atoi(os.Args[i])
			if err != nil || n < 1 {
				errorExitf("invalid depth: %s", os.Args[i])
			}
			maxDepth = n
		case "-f":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -f")
			}
			i++
			srcFile = os.Args[i]
		case "-h", "--help":
			fmt.Printf("uexpr %s - expression language front end\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("uexpr version %s (commit %s)\n", version, commit)
			os.Exit(0)
		default:
			// Glued flag values: -dN, -ffile
			switch {
			case strings.HasPrefix(arg, "-d"):
				n, err := strconv.Atoi(arg[2:])
				if err != nil || n < 1 {
					errorExitf("invalid depth: %s", arg[2:])
				}
				maxDepth = n
			case strings.HasPrefix(arg, "-f"):
				srcFile = arg[2:]
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	src := readSource(srcFile, os.Args[i:])

	if mode == "tokens" {
		printTokens(src)
		return
	}

	config := &uexpr.Config{MaxDepth: maxDepth}
	if trace {
		config.Trace = parser.NewWriterTracer(os.Stderr)
	}

	root, ok := parse(src, config, singleExpr, recovery)
	if !ok {
		os.Exit(1)
	}

	switch mode {
	case "json":
		if err := ast.EncodeJSON(os.Stdout, root); err != nil {
			errorExit(err)
		}
	case "stats":
		printStats(root)
	case "idents":
		printIdents(root, identPat)
	default:
		fmt.Print(ast.Dump(root))
	}
}

// parse runs the requested parse mode and reports errors. Returns the
// root node and whether output should proceed.
func parse(src string, config *uexpr.Config, singleExpr, recovery bool) (ast.Node, bool) {
	if recovery {
		expr, errs := uexpr.ParseWithRecovery(src, config)
		for _, e := range errs {
			printError(e)
		}
		if len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "%d error(s)\n", len(errs))
		}
		if expr == nil {
			return nil, false
		}
		return expr, true
	}

	if singleExpr {
		expr, err := uexpr.ParseWith(src, config)
		if err != nil {
			printError(err)
			return nil, false
		}
		return expr, true
	}

	prog, err := uexpr.ParseProgramWith(src, config)
	if err != nil {
		printError(err)
		return nil, false
	}
	return prog, true
}

func printTokens(src string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Kind", "Lexeme", "Line", "Col"})
	for i, tok := range uexpr.Tokenize(src) {
		table.Append([]string{
			strconv.Itoa(i),
			tok.Kind.String(),
			tok.Value,
			strconv.Itoa(tok.Pos.Line),
			strconv.Itoa(tok.Pos.Column),
		})
	}
	table.Render()
}

func printStats(root ast.Node) {
	counts := analyze.CountByKind(root)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Count"})
	for _, kind := range []string{"program", "assignment", "binary", "unary", "call", "group", "identifier", "literal"} {
		if n := counts[kind]; n > 0 {
			table.Append([]string{kind, strconv.Itoa(n)})
		}
	}
	table.Render()
	fmt.Printf("nodes: %d, complexity: %d\n", analyze.NodeCount(root), analyze.Complexity(root))
}

func printIdents(root ast.Node, pattern string) {
	var names []string
	if pattern == "" {
		names = analyze.Identifiers(root)
	} else {
		var err error
		names, err = analyze.MatchIdentifiers(root, pattern)
		if err != nil {
			errorExitf("invalid pattern %q: %v", pattern, err)
		}
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

// printError writes a colored diagnostic for err to stderr.
func printError(err error) {
	if pe, ok := uexpr.AsParseError(err); ok && pe.Pos.IsValid() {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%s: ", pe.Pos)
		fmt.Fprintln(os.Stderr, pe.Message)
		return
	}
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
}

// readSource loads source text from a file, the first positional
// argument, or stdin.
func readSource(srcFile string, args []string) string {
	if srcFile != "" {
		content, err := os.ReadFile(srcFile)
		if err != nil {
			errorExitf("cannot read source file %s: %v", srcFile, err)
		}
		return string(content)
	}
	if len(args) > 0 {
		return args[0]
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		errorExitf("cannot read stdin: %v", err)
	}
	return string(content)
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "uexpr: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "uexpr: %v\n", err)
	os.Exit(1)
}
