/*
Package main is the command line tool of Findy fixtures. Findy fixtures
provision the Indy style resources which tests need: wallets, pool ledgers,
DIDs with ledger roles, standalone keys and the payment method. Every fixture
lives in its own namespace and releases everything it created when it's closed.

You can use the fixtures roughly for three purposes:

1. In Go tests through the fixture package. A recipe like fixture.Endorser(t)
builds the fixture and registers its release to t.Cleanup.

2. As a CLI tool for provisioning a fixture for a test suite written in some
other language. Use provision --hold to keep the fixture until interrupted.

3. As a janitor which sweeps the namespaces that crashed test runs left behind.

# Backends

The native backend is pure Go and needs no native libraries. Its wallets are
encrypted bbolt files and its pool ledgers are local bbolt stores loaded from
the genesis transactions. The indy backend uses libindy through
findy-wrapper-go and is compiled in with the indy build tag:

	go build -tags indy

# Configuration

All the flags can be given as FFIX_ prefixed environment variables or in a
config file. For example FFIX_GENESIS_TXN_FILE sets the genesis file of the
pools, and FFIX_JANITOR_MAX_AGE sets the max age of the janitor.
*/
package main
