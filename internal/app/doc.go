// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary run lifecycle: planning jobs
// from the command line or a manifest, solving each puzzle part, and
// reporting answers, decoupled from any specific entrypoint like a CLI.
package app
