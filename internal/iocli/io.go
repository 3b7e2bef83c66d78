package iocli

// IO abstracts terminal input/output so the CLI can be driven by tests.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
