package app

import (
	"errors"
	"fmt"

	"github.com/sockentrocken/mallet/internal/editor"

	"github.com/sqweek/dialog"
)

// FileDialogs shows native pickers for scene files.
type FileDialogs struct {
	Dir string
}

func (d FileDialogs) OpenScene() (string, error) {
	path, err := dialog.File().
		Filter("Mallet map", "json").
		Title("Load Map").
		SetStartDir(d.Dir).
		Load()
	return path, dialogErr(err)
}

func (d FileDialogs) SaveScene() (string, error) {
	path, err := dialog.File().
		Filter("Mallet map", "json").
		Title("Save Map").
		SetStartDir(d.Dir).
		Save()
	return path, dialogErr(err)
}

func dialogErr(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return editor.ErrCancelled
	}
	return err
}

// Fatal shows err in a native message box. It is used for errors that
// happen before the window exists.
func Fatal(err error) {
	dialog.Message("%s", err.Error()).Title("Mallet: fatal error").Error()
}

// Warn shows a non-fatal startup problem in a native message box.
func Warn(format string, args ...any) {
	dialog.Message("%s", fmt.Sprintf(format, args...)).Title("Mallet").Info()
}
