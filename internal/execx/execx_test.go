package execx

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestRunnerFuncは引数をそのまま渡す(t *testing.T) {
	var gotDir, gotName string
	var gotArgs []string
	r := RunnerFunc(func(_ context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
		gotDir, gotName, gotArgs = dir, name, args
		return []byte("ok"), nil, nil
	})
	out, _, err := r.Run(context.Background(), "/repo", "git", "ls-files", "-z")
	if err != nil || string(out) != "ok" {
		t.Fatalf("unexpected result: %q %v", out, err)
	}
	if gotDir != "/repo" || gotName != "git" || len(gotArgs) != 2 || gotArgs[1] != "-z" {
		t.Fatalf("引数が一致しません: %q %q %v", gotDir, gotName, gotArgs)
	}
}

func TestIsNotFoundは存在しないコマンドを検出する(t *testing.T) {
	_, _, err := CommandRunner{}.Run(context.Background(), "", "sortwind-command-that-does-not-exist")
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false, err=%v", err)
	}
	if ExitCode(err) != -1 {
		t.Fatalf("ExitCode should be -1 for a missing binary, got %d", ExitCode(err))
	}
}

func TestDescribeはstderrの先頭行を含める(t *testing.T) {
	base := errors.New("exit status 128")
	err := Describe("git ls-files", base, []byte("fatal: not a git repository\nhint: x\n"))
	want := "git ls-files: exit status 128: fatal: not a git repository"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, base) {
		t.Fatal("Describe should wrap the original error")
	}
	if Describe("git", nil, nil) != nil {
		t.Fatal("Describe(nil) should be nil")
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		t.Fatal("plain errors must not look like exit errors")
	}
}
