package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgs      = errors.New("wrong number of arguments")
)

// Usage lists the commands understood by [App].
const Usage = `usage: go-auth-gate-client [flags] <command> [args]

commands:
  signup <name> <email> <password>
  login <email> <password>
  me
  home
  logout
  version
  demo <name> <email> <password>`
