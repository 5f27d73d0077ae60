// Package app contains the application wiring. It defines the App struct and
// its configuration, and connects a suite parser, the builder and an isolated
// logger, decoupled from any specific entrypoint.
package app
