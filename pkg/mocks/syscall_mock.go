package mocks

import "errors"

// FakeSyscall tracks working directory moves without touching the process
// cwd, so build pipeline tests stay hermetic.
type FakeSyscall struct {
	CurrentDir   string
	ChdirCalls   []string
	ErrorOnChdir bool
}

func (f *FakeSyscall) Chdir(path string) error {
	if f.ErrorOnChdir {
		return errors.New("chdir error")
	}
	f.ChdirCalls = append(f.ChdirCalls, path)
	f.CurrentDir = path
	return nil
}

func (f *FakeSyscall) Getwd() (string, error) {
	if f.CurrentDir == "" {
		return "/", nil
	}
	return f.CurrentDir, nil
}

// WasChdirCalledWith is a helper method to confirm a move into the given dir
func (f *FakeSyscall) WasChdirCalledWith(path string) bool {
	for _, c := range f.ChdirCalls {
		if c == path {
			return true
		}
	}
	return false
}
