// Package config provides configuration loading, merging, and validation
// for the expense-keeper server.
//
// Configuration is assembled from multiple sources in the following order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The result is validated once and then passed by value to the components
// that need it; nothing reads process environment after startup.
package config
