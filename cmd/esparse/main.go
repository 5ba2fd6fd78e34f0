// Command esparse parses ECMAScript source and prints its ESTree AST or its
// token stream.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/example/esparse/ast"
	"github.com/example/esparse/lexer"
	"github.com/example/esparse/parser"
	"github.com/example/esparse/token"
)

type Option struct {
	Module bool   `short:"m" long:"module" description:"parse with the Module goal"`
	Format string `short:"f" long:"format" default:"json" choice:"json" choice:"pp" choice:"tokens" description:"output format"`
	Eval   string `short:"e" long:"eval" unquote:"false" description:"parse inline source instead of a file"`
	Args   struct {
		File string `positional-arg-name:"file" description:"source file, '-' for stdin"`
	} `positional-args:"yes"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) int {
	var opt Option
	flagParser := flags.NewParser(&opt, flags.Default)
	flagParser.Usage = "[OPTIONS] [file | -e code]"
	if _, err := flagParser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	name, source, err := readSource(opt, stdin)
	if err != nil {
		logger.Error("failed to read source", zap.Error(err))
		return 1
	}

	if opt.Format == "tokens" {
		if err := dumpTokens(stdout, source, opt.Module); err != nil {
			logger.Error("failed to write tokens", zap.Error(err))
			return 1
		}
		return 0
	}

	prog, err := parse(source, opt.Module)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			fmt.Fprintf(stderr, "%s:%d:%d: SyntaxError: %s\n", name, perr.Line, perr.Column, perr.Message)
			return 1
		}
		logger.Error("parse failed", zap.Error(err))
		return 1
	}

	switch opt.Format {
	case "pp":
		pp.ColoringEnabled = isTerminal(stdout)
		if _, err := pp.Fprintln(stdout, prog); err != nil {
			logger.Error("failed to write AST", zap.Error(err))
			return 1
		}
	default:
		if err := dumpJSON(stdout, prog); err != nil {
			logger.Error("failed to write AST", zap.Error(err))
			return 1
		}
	}
	return 0
}

func parse(source string, module bool) (*ast.Program, error) {
	if module {
		return parser.ParseModule(source)
	}
	return parser.ParseScript(source)
}

func readSource(opt Option, stdin io.Reader) (name, source string, err error) {
	switch {
	case opt.Eval != "":
		return "<eval>", opt.Eval, nil
	case opt.Args.File == "" || opt.Args.File == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("io.ReadAll: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(opt.Args.File)
	if err != nil {
		return "", "", fmt.Errorf("os.ReadFile(%q): %w", opt.Args.File, err)
	}
	return opt.Args.File, string(data), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if isTerminal(w) {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalIndentWithOption(v, "", "  ", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}

type tokenJSON struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Error  string `json:"error,omitempty"`
}

// dumpTokens prints one JSON object per token, EOF excluded.
func dumpTokens(w io.Writer, source string, module bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, tok := range lexer.Tokenize(source, lexer.WithModule(module)) {
		if tok.Kind == token.EOF {
			break
		}
		out := tokenJSON{
			Type:   tok.Kind.String(),
			Value:  tok.Literal,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Line:   tok.Line,
			Column: tok.Column,
		}
		if prob, ok := tok.Value.(token.Problem); ok {
			out.Error = prob.Message
		}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("enc.Encode: %w", err)
		}
	}
	return nil
}
