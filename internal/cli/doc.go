// Package cli implements the resignly command line: the web server and the
// offline letter tools (catalog browsing, rendering, export, clipboard copy
// and an interactive wizard).
package cli
