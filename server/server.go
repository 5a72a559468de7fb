// Package server exposes the compile and evaluate pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/eval"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

// Server is the HTTP front end. The compiler and evaluator are shared by all
// requests.
type Server struct {
	app       *fiber.App
	compiler  *compiler.Compiler
	evaluator *eval.Evaluator
	vars      map[string]float64
	precision int
}

type Options struct {
	Compiler  *compiler.Compiler
	Evaluator *eval.Evaluator
	// Variables are bound before the request's own variables.
	Variables map[string]float64
	Precision int
}

func New(opts Options) *Server {
	if opts.Compiler == nil {
		opts.Compiler = compiler.New(nil)
	}
	if opts.Evaluator == nil {
		opts.Evaluator = eval.New(nil)
	}

	srv := &Server{
		compiler:  opts.Compiler,
		evaluator: opts.Evaluator,
		vars:      opts.Variables,
		precision: opts.Precision,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	app.Get("/healthz", srv.health)
	app.Post("/v1/tokenize", srv.tokenize)
	app.Post("/v1/compile", srv.compile)
	app.Post("/v1/evaluate", srv.evaluate)

	srv.app = app
	return srv
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

type tokenJSON struct {
	Type  string   `json:"type"`
	Text  string   `json:"text"`
	Pos   int      `json:"pos"`
	Value *float64 `json:"value,omitempty"`
	Arity int      `json:"arity,omitempty"`
}

func toJSON(tokens []token.Token) []tokenJSON {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tk := range tokens {
		j := tokenJSON{
			Type: tk.Type.String(),
			Text: tk.Text,
			Pos:  tk.Pos,
		}

		switch tk.Type {
		case token.NumericLiteral:
			v := tk.Value
			j.Value = &v
		case token.Operator:
			j.Arity = tk.Op.Arity
		}

		out = append(out, j)
	}

	return out
}

type expressionRequest struct {
	Expression string             `json:"expression"`
	Variables  map[string]float64 `json:"variables"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) tokenize(c *fiber.Ctx) error {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "", fmt.Sprintf("invalid request body: %v", err))
	}

	tokens, err := s.compiler.Tokenize(req.Expression)
	if err != nil {
		return pipelineError(c, err)
	}

	return c.JSON(fiber.Map{"tokens": toJSON(tokens)})
}

func (s *Server) compile(c *fiber.Ctx) error {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "", fmt.Sprintf("invalid request body: %v", err))
	}

	p, err := s.compiler.Compile(req.Expression)
	if err != nil {
		return pipelineError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":        uuid.NewString(),
		"tokens":    toJSON(p.Tokens),
		"postfix":   token.Join(p.Postfix),
		"variables": p.Variables(),
	})
}

func (s *Server) evaluate(c *fiber.Ctx) error {
	var req expressionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "", fmt.Sprintf("invalid request body: %v", err))
	}

	id := uuid.NewString()

	vars := make(map[string]float64, len(s.vars)+len(req.Variables))
	for k, v := range s.vars {
		vars[k] = v
	}
	for k, v := range req.Variables {
		vars[k] = v
	}

	res, err := s.evaluator.Run(s.compiler, req.Expression, vars)
	if err != nil {
		log.Printf("evaluate %s: %q: %v", id, req.Expression, err)
		return pipelineError(c, err)
	}

	// JSON has no representation for infinities or NaN; result still
	// carries them as text.
	var value any = res.Value
	if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
		value = nil
	}

	return c.JSON(fiber.Map{
		"id":         id,
		"expression": req.Expression,
		"postfix":    token.Join(res.Program.Postfix),
		"value":      value,
		"result":     eval.Format(res.Value, s.precision),
	})
}

func pipelineError(c *fiber.Ctx, err error) error {
	var e *token.Error
	if !errors.As(err, &e) {
		return c.Status(500).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    500,
				"message": err.Error(),
			},
		})
	}

	return badRequest(c, string(e.Kind), e.Error())
}

func badRequest(c *fiber.Ctx, kind, msg string) error {
	return c.Status(400).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    400,
			"kind":    kind,
			"message": msg,
		},
	})
}
