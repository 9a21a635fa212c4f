package ui

import (
	"fyne.io/fyne/v2"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newButtonWithTooltip creates a labelled button with a tooltip that appears on hover.
func newButtonWithTooltip(label string, icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// withToolTipLayer installs the overlay the tooltip widgets render into.
func withToolTipLayer(content fyne.CanvasObject, c fyne.Canvas) fyne.CanvasObject {
	return fynetooltip.AddWindowToolTipLayer(content, c)
}
