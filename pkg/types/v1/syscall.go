package v1

import "os"

// SyscallInterface abstracts the process working directory so the build
// driver can move into a source tree and restore the previous dir under test.
type SyscallInterface interface {
	Chdir(string) error
	Getwd() (string, error)
}

type RealSyscall struct{}

func (r *RealSyscall) Chdir(path string) error {
	return os.Chdir(path)
}

func (r *RealSyscall) Getwd() (string, error) {
	return os.Getwd()
}
