package execx

import (
	"context"
	"fmt"
	"testing"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()

	if !(Result{}).Success() {
		t.Error("zero exit code reported as failure")
	}
	if (Result{ExitCode: 2}).Success() {
		t.Error("non-zero exit code reported as success")
	}
}

func TestFake_RecordsCalls(t *testing.T) {
	t.Parallel()

	f := &Fake{Handler: func(cmd Command) (Result, error) {
		if cmd.Name == "broken" {
			return Result{}, fmt.Errorf("spawn failure")
		}
		return Result{Stdout: "ok"}, nil
	}}

	res, err := f.Run(context.Background(), Command{Name: "make", Args: []string{"--version"}})
	if err != nil || res.Stdout != "ok" {
		t.Errorf("Run() = (%v, %v)", res, err)
	}

	if _, err := f.Run(context.Background(), Command{Name: "broken"}); err == nil {
		t.Error("Run() scripted spawn failure returned nil error")
	}

	names := f.Names()
	if len(names) != 2 || names[0] != "make" || names[1] != "broken" {
		t.Errorf("Names() = %v", names)
	}
}
