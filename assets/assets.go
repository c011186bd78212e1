package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed IconColorPicker.svg
var iconColorPicker []byte

// EyedropperIcon is the icon shown on the activation button.
var EyedropperIcon = fyne.NewStaticResource("IconColorPicker.svg", iconColorPicker)
