// Package cli provides the interactive Scriptoria command-line client.
//
// It wires configuration, the gRPC client and a REPL. Anonymous users can
// sign up and log in; a logged-in user can generate pre-production
// packages, browse their history, read one rendered in the terminal and
// export it as txt, pdf or docx into the configured export directory.
//
// The process holds at most one session. When the server reports the
// session as expired or revoked, the client drops it and asks the user to
// log in again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
