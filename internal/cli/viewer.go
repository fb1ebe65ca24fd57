package cli

import "os/exec"

// startDetached launches program with args and releases it, returning the
// process id.
func startDetached(program string, args ...string) (int, error) {
	cmd := exec.Command(program, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	return pid, cmd.Process.Release()
}
