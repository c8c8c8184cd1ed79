// Package cli implements the skicka command-line client.
//
//	skicka [-a server] [-q] send [-n name] [file]
//	skicka [-a server] [-q] recv [-o path] <code-or-link>
//	skicka version
//
// send streams a file (or stdin) to the relay, prints the code as soon as
// the server assigns one and returns once the receiver has finished. recv
// writes the transfer to stdout, to a file, or into a directory under the
// name suggested by the sender.
package cli
