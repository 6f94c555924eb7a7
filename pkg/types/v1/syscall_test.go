package v1_test

import (
	"os"
	"testing"

	. "github.com/onsi/gomega"

	v1 "github.com/pybuild-sh/pybuild/pkg/types/v1"
)

func TestSyscall(t *testing.T) {
	RegisterTestingT(t)
	r := v1.RealSyscall{}

	prev, err := r.Getwd()
	Expect(err).To(BeNil())
	Expect(prev).ToNot(BeEmpty())

	tmp, err := os.MkdirTemp("", "pybuild")
	Expect(err).To(BeNil())
	defer os.RemoveAll(tmp)
	defer r.Chdir(prev)

	Expect(r.Chdir(tmp)).To(BeNil())
	Expect(r.Chdir("/path/that/does/not/exist")).ToNot(BeNil())
}
