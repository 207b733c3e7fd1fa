package main

import (
	"github.com/scott-cotton/cli"
)

const usageText = `dotaccess - read and edit documents by key path

Paths are segments separated by '.' or '/', e.g. server.http.port.
The document format is taken from the file extension unless -format is given.

Usage:
  dotaccess get FILE PATH              Print the value at PATH
  dotaccess has FILE PATH              Report whether PATH exists
  dotaccess keys FILE [PATH]           List the keys of a container
  dotaccess set FILE PATH VALUE        Set PATH to VALUE
  dotaccess append FILE PATH VALUE     Append VALUE to the sequence at PATH
  dotaccess remove FILE PATH           Remove PATH
  dotaccess merge FILE OTHER           Import OTHER into FILE
  dotaccess patch FILE PATCH           Apply a JSON Patch or merge patch
  dotaccess export FILE                Convert FILE to another format
  dotaccess serve FILE                 Serve FILE over HTTP
  dotaccess version                    Print build information

Examples:
  dotaccess get config.yaml server.port
  dotaccess set -w config.yaml server.tags '[a, b]'
  dotaccess export -to json config.toml`

// Root returns the root command for dotaccess.
func Root() *cli.Command {
	return cli.NewCommand("dotaccess").
		WithSynopsis("dotaccess - read and edit documents by key path").
		WithDescription(usageText).
		WithSubs(
			GetCommand(),
			HasCommand(),
			KeysCommand(),
			SetCommand(),
			AppendCommand(),
			RemoveCommand(),
			MergeCommand(),
			PatchCommand(),
			ExportCommand(),
			ServeCommand(),
			VersionCommand(),
		)
}
