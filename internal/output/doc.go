// Package output renders decrypted records for the terminal and resolves
// single field values for copying.
package output
