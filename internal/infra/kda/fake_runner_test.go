package kda

import (
	"context"
)

type fakeCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls  []fakeCall
	output []byte
	err    error
	hook   func(args []string)

	hadDeadline bool
}

func (f *fakeRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, fakeCall{dir: dir, name: name, args: args})
	if f.hook != nil {
		f.hook(args)
	}
	_, f.hadDeadline = ctx.Deadline()
	return f.output, f.err
}
