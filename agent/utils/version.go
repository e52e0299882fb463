package utils

// Version is the version of the findy-fixture module. Release builds set it
// with -ldflags.
var Version = "0.1.0"
