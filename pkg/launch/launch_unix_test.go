//go:build unix

package launch

import (
	"errors"
	"testing"
)

func TestRealExecutor_Launch_Success(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	var capturedBinary string
	var capturedArgv []string
	var capturedEnv []string

	execFunc = func(binary string, argv []string, env []string) error {
		capturedBinary = binary
		capturedArgv = argv
		capturedEnv = env
		return nil
	}

	e := &RealExecutor{}
	err := e.Launch("sh", []string{"-c", "./script"})

	if err != nil {
		t.Errorf("Launch() error = %v, want nil", err)
	}

	// Binary path must be resolved before exec.
	if capturedBinary == "" || capturedBinary == "sh" {
		t.Errorf("binary = %q, want resolved absolute path", capturedBinary)
	}

	// argv[0] is the interpreter name, remaining args follow in order.
	want := []string{"sh", "-c", "./script"}
	if len(capturedArgv) != len(want) {
		t.Fatalf("argv = %v, want %v", capturedArgv, want)
	}
	for i := range want {
		if capturedArgv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, capturedArgv[i], want[i])
		}
	}

	if len(capturedEnv) == 0 {
		t.Error("expected environment to be passed")
	}
}

func TestRealExecutor_Launch_ExecFuncError(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	expectedErr := errors.New("exec failed")
	execFunc = func(binary string, argv []string, env []string) error {
		return expectedErr
	}

	e := &RealExecutor{}
	err := e.Launch("sh", []string{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("Launch() error = %v, want %v", err, expectedErr)
	}
}

func TestRealExecutor_Launch_NoArgs(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	var capturedArgv []string
	execFunc = func(binary string, argv []string, env []string) error {
		capturedArgv = argv
		return nil
	}

	e := &RealExecutor{}
	if err := e.Launch("sh", []string{}); err != nil {
		t.Errorf("Launch() error = %v, want nil", err)
	}

	if len(capturedArgv) != 1 || capturedArgv[0] != "sh" {
		t.Errorf("argv = %v, want ['sh']", capturedArgv)
	}
}

func TestRealExecutor_Launch_LookupFailureSkipsExec(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	called := false
	execFunc = func(binary string, argv []string, env []string) error {
		called = true
		return nil
	}

	e := &RealExecutor{}
	err := e.Launch("nonexistent-interpreter-that-does-not-exist-12345", []string{"./script"})
	if err == nil {
		t.Error("expected lookup error")
	}
	if called {
		t.Error("exec must not run when lookup fails")
	}
}
