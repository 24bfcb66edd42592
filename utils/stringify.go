package utils

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var noColorize bool

// SetColorize toggles colorization of pretty-printed output globally.
func SetColorize(enabled bool) {
	noColorize = !enabled
}

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

// LabelString colors a basic block label.
func LabelString(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiCyan).SprintFunc())(is...)
}

// VarString colors a variable name.
func VarString(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiGreen).SprintFunc())(is...)
}

// StmtString colors a rendered statement.
func StmtString(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiWhite, color.Faint).SprintFunc())(is...)
}

// DeclString colors a function signature.
func DeclString(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiYellow).SprintFunc())(is...)
}

// EdgeString colors a successor list.
func EdgeString(is ...interface{}) string {
	return CanColorize(color.New(color.FgBlue).SprintFunc())(is...)
}
