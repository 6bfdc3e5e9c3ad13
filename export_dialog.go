//go:build !js

package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

var errExportDialogCancelled = errors.New("export dialog cancelled")

func pickExportPath(name string) (string, error) {
	filename, err := dialog.File().Title("Export colors").Filter("PNG image", "png").SetStartFile(name).Save()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", errExportDialogCancelled
		}
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	return filename, nil
}
