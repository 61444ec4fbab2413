// Tonal - legible text colours for TaskFlow category themes
//
// Tonal selects white or black text for any background colour using WCAG
// contrast rules, audits category themes for compliance, and samples
// candidate colours from attachment images.
package main

import (
	"github.com/taskflow/tonal/internal/cli"
)

func main() {
	cli.Execute()
}
