package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/trait-mixer/internal/mixer"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"
)

// Dialogs are the blocking native dialogs the host can open.
type Dialogs interface {
	// ReportBlend shows the current blend to the user.
	ReportBlend(w mixer.WeightVector) error
	// PickColor asks for a new base color for t. ok is false if the user cancelled.
	PickColor(t mixer.Trait) (c colorful.Color, ok bool, err error)
}

// NativeDialogs opens dialogs through zenity.
type NativeDialogs struct{}

func (NativeDialogs) ReportBlend(w mixer.WeightVector) error {
	err := zenity.Info(blendReport(w),
		zenity.Title("Personality Blend"),
		zenity.InfoIcon,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

func (NativeDialogs) PickColor(t mixer.Trait) (colorful.Color, bool, error) {
	picked, err := zenity.SelectColor(
		zenity.Title("Color for "+t.Name),
		zenity.Color(t.Color),
		zenity.ShowPalette(),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return colorful.Color{}, false, nil
		}
		return colorful.Color{}, false, err
	}
	c, ok := colorful.MakeColor(picked)
	if !ok {
		return colorful.Color{}, false, fmt.Errorf("picked color %v is fully transparent", picked)
	}
	return c, true, nil
}

// blendReport renders the blend one trait per line, dominant trait first line.
func blendReport(w mixer.WeightVector) string {
	var b strings.Builder
	if dom, ok := w.Dominant(); ok {
		fmt.Fprintf(&b, "Dominant: %s\n\n", dom.Trait.Name)
	}
	for _, e := range w {
		fmt.Fprintf(&b, "%s: %s\n", e.Trait.Name, formatPercent(e.Weight))
	}
	return strings.TrimRight(b.String(), "\n")
}
