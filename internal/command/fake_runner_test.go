package command

import (
	"context"
	"os"
	"sync"
)

// fakeKdaRunner emulates `kda gen` by writing the -o file and `kda local` by
// returning a canned response.
type fakeKdaRunner struct {
	mu       sync.Mutex
	calls    [][]string
	response string
	localErr error
	genErr   error
}

func (f *fakeKdaRunner) RunOutput(_ context.Context, _ string, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if len(args) == 0 {
		return nil, nil
	}
	switch args[0] {
	case "gen":
		if f.genErr != nil {
			return nil, f.genErr
		}
		for i := 1; i+1 < len(args); i++ {
			if args[i] == "-o" {
				return nil, os.WriteFile(args[i+1], []byte(`{"cmds":[]}`), 0o600)
			}
		}
	case "local":
		if f.localErr != nil {
			return nil, f.localErr
		}
		return []byte(f.response), nil
	}
	return nil, nil
}

type fakeS3 struct {
	bucket string
	keys   []string
	bodies map[string]string
}

func (f *fakeS3) PutObject(_ context.Context, bucket, key string, body []byte) error {
	f.bucket = bucket
	f.keys = append(f.keys, key)
	if f.bodies == nil {
		f.bodies = map[string]string{}
	}
	f.bodies[key] = string(body)
	return nil
}
