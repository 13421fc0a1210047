package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			caller(), err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot write default config file to <em>%s</em>"
	vars := []any{file}
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write config file: %w",
			caller(), err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", caller(), path, err),
	}
}
