// Package batch evaluates files holding one expression per line.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"

	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/eval"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

const (
	commentPrefix = "#"

	// MaxLineLength is the longest expression a batch line may hold.
	MaxLineLength = 1 << 20

	// shownLength bounds the expression text kept for an overlong line.
	shownLength = 32
)

// ErrLineTooLong is recorded for a line longer than MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// Result is the outcome of one line. Err is set when the line failed; the
// remaining fields except Value are filled in either way.
type Result struct {
	ID         uuid.UUID
	Line       int
	Expression string
	Postfix    string
	Value      float64
	Err        error
}

type Runner struct {
	compiler  *compiler.Compiler
	evaluator *eval.Evaluator
	vars      map[string]float64
	maxLine   int
}

func NewRunner(c *compiler.Compiler, e *eval.Evaluator, vars map[string]float64) *Runner {
	return &Runner{
		compiler:  c,
		evaluator: e,
		vars:      vars,
		maxLine:   MaxLineLength,
	}
}

// RunFile evaluates every line of name. Blank lines and lines starting with
// '#' are skipped. A failing line does not stop the run; only I/O errors are
// returned.
func (r *Runner) RunFile(fs billy.Filesystem, name string) ([]Result, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	results, err := r.Run(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return results, nil
}

func (r *Runner) Run(src io.Reader) ([]Result, error) {
	var results []Result

	br := bufio.NewReader(src)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		expr := strings.TrimSpace(text)
		if expr != "" && !strings.HasPrefix(expr, commentPrefix) {
			results = append(results, r.evaluate(line, expr))
		}

		if err != nil {
			return results, nil
		}
	}
}

func (r *Runner) evaluate(line int, expr string) Result {
	res := Result{
		ID:         uuid.New(),
		Line:       line,
		Expression: expr,
	}

	if len(expr) > r.maxLine {
		res.Expression = expr[:min(len(expr), shownLength)] + "..."
		res.Err = fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(expr))
		return res
	}

	p, err := r.compiler.Compile(expr)
	if err != nil {
		res.Err = err
		return res
	}
	res.Postfix = token.Join(p.Postfix)

	eval.BindAll(p.Postfix, r.vars)
	res.Value, res.Err = r.evaluator.Evaluate(p.Postfix)

	return res
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// WriteReport writes one tab separated line per result to name on fs,
// replacing the file if it exists.
func WriteReport(fs billy.Filesystem, name string, results []Result, precision int) error {
	f, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := Format(f, results, precision); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}

	return nil
}

// Format renders results as "line<TAB>id<TAB>expression<TAB>value-or-error".
func Format(w io.Writer, results []Result, precision int) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		outcome := eval.Format(res.Value, precision)
		if res.Err != nil {
			outcome = "error: " + res.Err.Error()
		}

		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%s\n", res.Line, res.ID, res.Expression, outcome); err != nil {
			return err
		}
	}

	return bw.Flush()
}
