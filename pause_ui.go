package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/stormtravel/common"
)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// NewPauseUI builds the pause panel. Resume unpauses; Quit ends the game
// after the current frame.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x12, B: 0x28, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x65, G: 0x26, B: 0x54, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x9e, G: 0x34, B: 0x55, A: 255})

	face := g.fonts.UI
	textColor := g.textColor()
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	centered := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}

	title := widget.NewText(
		widget.TextOpts.Text(orDefault(g.ui.Pause.Title, "Paused"), &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered)),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnPressed, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(centered)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	resume := button(orDefault(g.ui.Pause.Resume, "Resume"), func() {
		g.paused = false
		g.loop.Pause()
	})
	quit := button(orDefault(g.ui.Pause.Quit, "Quit"), func() {
		g.quit = true
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resume)
	panel.AddChild(quit)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
