// Package cli is the interactive terminal client of collabdocs.
//
// App wires configuration, the local session database, the HTTP transport
// and the stores, then runs a REPL. Every command navigates to its route
// first, so the navigation guard decides whether the command may run; when
// the server invalidates the session the stores are reset and the user lands
// on the login page.
package cli
