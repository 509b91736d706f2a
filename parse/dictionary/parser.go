package dictionary

// dictionary 包把数据字典定义文本（分节的 Key=Value 格式）解析为强类型的树，
// 并在树上提供列标签与取值标签两种查询。
//
// 范围：
// - 按空行切分文本块，去除 BOM
// - 容错的分节 Key=Value 解码，重复键累积为列表
// - 有限状态文法校验分节顺序并驱动建树
// - 属性类型转换（整数 / 去引号字符串 / Yes 布尔 / 原样）
// - 列标签、取值标签查询
//
// 非目标（设计如此）：
// - 从存储读取文本
// - 把树写回文本
// - 业务规则校验（例如长度之和）
// - 解析字典描述的数据文件

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// =========================
// Public API
// =========================

// Tree is a completed dictionary. A Tree only exists once the whole input
// has been read and the grammar reached its terminal state.
type Tree struct {
	Dictionary *Dictionary `json:"dictionary" yaml:"dictionary"`
}

// Parser holds options shared by parses. It keeps no per-parse state, so one
// Parser may be used from several goroutines.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser with logging disabled.
func NewParser() *Parser {
	return &Parser{}
}

// WithLogger sets the logger. Pass nil to disable logging.
func (p *Parser) WithLogger(l *slog.Logger) *Parser {
	p.logger = l
	return p
}

// Parse parses text with a default Parser.
func Parse(text string) (*Tree, error) {
	return NewParser().Parse(text)
}

// Parse reads the definition text and builds its tree.
//
// Structural failures return a *ParseError. Input that is well formed but
// stops short of a complete definition returns ErrIncomplete and a nil tree.
func (p *Parser) Parse(text string) (*Tree, error) {
	ctx := p.newContext()
	for _, blk := range Segment(text) {
		if err := ctx.feed(blk); err != nil {
			ctx.log(slog.LevelDebug, "parse failed", slog.String("error", err.Error()))
			return nil, err
		}
	}
	return ctx.finish()
}

// =========================
// Parse Context
// =========================

// parseContext is created for one Parse call and dropped afterwards.
type parseContext struct {
	id      string
	logger  *slog.Logger
	builder *builder
	machine *machine
}

func (p *Parser) newContext() *parseContext {
	b := &builder{}
	ctx := &parseContext{
		id:      uuid.NewString(),
		builder: b,
		machine: newMachine(b),
	}
	if p.logger != nil {
		ctx.logger = p.logger.With(
			slog.String("component", "dictionary"),
			slog.String("parse_id", ctx.id),
		)
	}
	return ctx
}

func (c *parseContext) feed(blk Block) error {
	sec, err := DecodeBlock(blk)
	if err != nil {
		return err
	}
	from := c.machine.state
	to, err := c.machine.fire(Trigger(sec.Name), sec)
	if err != nil {
		return annotate(err, blk.Index, sec.Name)
	}
	c.log(slog.LevelDebug, "transition",
		slog.String("trigger", sec.Name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("block", blk.Index))
	return nil
}

func (c *parseContext) finish() (*Tree, error) {
	from := c.machine.state
	if _, err := c.machine.fire(TriggerEOF, nil); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Kind == ErrIllegalTransition {
			c.log(slog.LevelWarn, "input ended before completion", slog.String("state", from.String()))
			return nil, ErrIncomplete
		}
		return nil, err
	}
	if !c.machine.state.Terminal() || !c.builder.built {
		return nil, ErrIncomplete
	}
	dict := c.builder.dict
	c.log(slog.LevelDebug, "parse complete",
		slog.Int("levels", len(dict.Levels)),
		slog.Int("relations", len(dict.Relations)))
	return &Tree{Dictionary: dict}, nil
}

func (c *parseContext) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// annotate fills in block position on errors raised below the context.
func annotate(err error, block int, section string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Block = block
		if pe.Section == "" {
			pe.Section = section
		}
	}
	return err
}
