package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Output receives everything the console prints. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

func write(colour, message string, newline bool) {
	fmt.Fprint(Output, colour+message+Reset)

	if newline {
		fmt.Fprintln(Output)
	}
}

func Error(message string)   { write(RedColour, message, false) }
func Errorln(message string) { write(RedColour, message, true) }

func Success(message string)   { write(GreenColour, message, false) }
func Successln(message string) { write(GreenColour, message, true) }

func Warning(message string)   { write(YellowColour, message, false) }
func Warningln(message string) { write(YellowColour, message, true) }

func Magenta(message string)   { write(MagentaColour, message, false) }
func Magentaln(message string) { write(MagentaColour, message, true) }

func Blue(message string)   { write(BlueColour, message, false) }
func Blueln(message string) { write(BlueColour, message, true) }

func Cyan(message string)   { write(CyanColour, message, false) }
func Cyanln(message string) { write(CyanColour, message, true) }

func Gray(message string)   { write(GrayColour, message, false) }
func Grayln(message string) { write(GrayColour, message, true) }

// Table prints rows in aligned columns. Colour codes would skew the widths,
// so it prints plain text.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(Output, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
}
