//go:build js

package main

import "errors"

var errExportDialogCancelled = errors.New("export dialog cancelled")

func pickExportPath(name string) (string, error) {
	return "", errors.New("file dialogs are not available in the browser build")
}
