package cueue

// noCopy triggers a `go vet -copylocks` diagnostic if a containing struct is
// copied after first use, the same convention the standard library uses for
// sync.Mutex-embedding types. Producer and Consumer are structurally SPSC
// endpoints: duplicating one would give two goroutines a handle to the same
// side of the protocol, which this type exists to make go vet flag.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
