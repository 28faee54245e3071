package game

import (
	"errors"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/clockface/internal/clockface"
	"github.com/iburimskiy/clockface/internal/config"
)

// pickColor asks for a color, starting from current. ok is false when the
// dialog was cancelled.
func pickColor(title string, current clockface.Color) (string, bool, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current.NRGBA()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return clockface.ColorFrom(c).String(), true, nil
}

func pickSavePath() (string, bool, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Clock Image"),
		zenity.Filename("clock.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return filename, true, nil
}

func savePNG(path string, d *imageDisplay) error {
	if d.latest == nil {
		return errors.New("nothing rendered yet")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := clockface.EncodePNG(f, d.latest); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ShowError reports a fatal error in a message box.
func ShowError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title(config.AppName), zenity.ErrorIcon)
}
