package utils

import (
	"os"
	"os/user"
)

// IndyBaseDir returns the directory where libindy puts its .indy_client dir.
// libindy uses $HOME, and so do we, falling back to the user's home dir.
func IndyBaseDir() string {
	if v := os.Getenv("HOME"); v != "" {
		return v
	}
	currentUser, err := user.Current()
	if err != nil {
		panic(err)
	}
	return currentUser.HomeDir
}
