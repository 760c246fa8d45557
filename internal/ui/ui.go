// Package ui holds the terminal color printers shared by the wirepath
// CLI commands.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiBlue, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the command banner.
func Banner(subtitle string) {
	fmt.Printf("%s — %s\n\n", Brand.Sprint("wirepath"), subtitle)
}

// KV prints an aligned key/value line.
func KV(key string, value any) {
	Subtle.Printf("  %-22s", key)
	fmt.Println(value)
}
