package ports

/*
InterruptGuard keeps the terminal's interrupt key from terminating the shell.
Hold starts absorbing interrupts for the shell process and returns a release
function that stops it. Child processes sharing the terminal still receive them.
*/
type InterruptGuard interface {
	Hold() (release func())
}
