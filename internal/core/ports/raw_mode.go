package ports

/*
RawMode switches the terminal between line-buffered and raw input.
Enable returns a restore function that puts the terminal back in the state
it was in before the call.
*/
type RawMode interface {
	Enable() (restore func() error, err error)
}
