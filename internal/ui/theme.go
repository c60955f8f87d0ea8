package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Status label colours, see statusImportance. The dark variants are lighter
// so the result line stays readable on a dark background.
var (
	statusSuccessLight = color.NRGBA{R: 27, G: 122, B: 49, A: 255}
	statusSuccessDark  = color.NRGBA{R: 102, G: 205, B: 122, A: 255}
	statusErrorLight   = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	statusErrorDark    = color.NRGBA{R: 239, G: 118, B: 118, A: 255}
)

// AppTheme is the default theme with status colours tuned for the result
// line and slightly tighter spacing for the single-column form
type AppTheme struct{}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameSuccess:
		if dark {
			return statusSuccessDark
		}
		return statusSuccessLight
	case theme.ColorNameError:
		if dark {
			return statusErrorDark
		}
		return statusErrorLight
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return 3
	}
	return theme.DefaultTheme().Size(name)
}
