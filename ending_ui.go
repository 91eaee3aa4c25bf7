package main

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// NewEndingUI builds the closing screen shown once every stage is cleared.
func NewEndingUI(g *Game) *ebitenui.UI {
	face := g.fonts.Sized(10)
	small := g.fonts.Small
	clr := g.textColor()
	centered := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	title := widget.NewText(
		widget.TextOpts.Text(orDefault(g.ui.Ending.Title, "The storm has passed."), &face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered)),
	)
	subtitle := widget.NewText(
		widget.TextOpts.Text(orDefault(g.ui.Ending.Subtitle, "Thanks for playing!"), &small, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(g.ui.Background.Or(g.outlineColor()))),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(subtitle)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
