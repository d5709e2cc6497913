// Package main provides the deckprops CLI for validating meetup
// presentation descriptions.
package main

func main() {
	Execute()
}
