package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NumberColor ColorAttr = iota
	LabelColor
	InsertColor
	DeleteColor
	WarningColor
	ErrorColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NumberColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[LabelColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[InsertColor] = color.GreenString
	colors.Map[DeleteColor] = color.RedString
	colors.Map[WarningColor] = color.YellowString
	colors.Map[ErrorColor] = color.New(color.FgRed, color.Bold).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
