package model

import "fmt"

// ExitCode is the process exit status. The numeric values are part of the
// command line contract.
type ExitCode int

const (
	NoError ExitCode = iota
	UnknownError
	UserCanceled
	TargetNotFound
)

var exitCodeNames = map[ExitCode]string{
	NoError:        "ok",
	UnknownError:   "unknown error",
	UserCanceled:   "canceled by user",
	TargetNotFound: "config file not found",
}

func (e ExitCode) String() string {
	if name, ok := exitCodeNames[e]; ok {
		return fmt.Sprintf("exit %d (%s)", int(e), name)
	}
	return fmt.Sprintf("exit %d", int(e))
}

func (e ExitCode) Error() string {
	return e.String()
}
