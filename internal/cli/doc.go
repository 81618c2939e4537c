// Package cli wires the tech-events-bot command line.
//
// Subcommands: run (one invocation, result on stdout), preview (format the
// digest without delivering), and serve (HTTP surface plus optional cron
// schedule).
package cli
