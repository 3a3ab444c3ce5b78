package ecsig

// Version returns the semantic version of the ecsig module. It is bumped on
// every tagged release and reported by the ecsig-go diagnostic binary.
func Version() string {
	return "0.1.0"
}
