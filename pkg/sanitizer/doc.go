// Package sanitizer normalizes untrusted user input before validation and storage.
package sanitizer
