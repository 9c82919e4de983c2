package wslctl

// Indirection layer to allow stubbing in tests

var (
	fnList      = list
	fnAvailable = available
	fnRunning   = running
	fnShow      = show
	fnStatus    = status
	fnCommand   = command
	fnWatch     = watch
)
