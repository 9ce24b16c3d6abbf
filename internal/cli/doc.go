// Package cli is the interactive text-menu front end of credstore.
//
// It reads commands from a single line-oriented reader, prompts for
// credentials, trims them, rejects empty values, and calls the credential
// store. All outcomes are rendered as one-line messages; persistence failures
// are shown as warnings and the loop keeps going.
//
// Commands (name or menu number):
//
//	1 | register   - create an account
//	2 | login      - check a username/password pair
//	3 | delete     - remove an account
//	4 | list       - show registered usernames
//	5 | exit|quit  - leave the program
//	help | menu    - show the menu
//
// The loop is started with App.Run(ctx) and returns on exit or end of input.
package cli
