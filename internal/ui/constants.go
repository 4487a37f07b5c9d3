// Package ui provides the terminal UI panels for dealspot: the deal
// selector, the ask panel, and the header/footer chrome around them.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SelectorWidthRatio is the denominator for selector width (1/3 of total width)
	SelectorWidthRatio = 3

	// TextareaHeight is the number of lines for the question input
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// FilterInputCharLimit is the character limit for the deal filter input
	FilterInputCharLimit = 128

	// DefaultWrapWidth is the fallback width for text wrapping when the
	// viewport width is unknown
	DefaultWrapWidth = 80
)
