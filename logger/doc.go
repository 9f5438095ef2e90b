// Package logger provides structured logging on top of zerolog, with
// console and JSON formats and standard field names used across the module.
package logger
