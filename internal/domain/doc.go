// Package domain holds the typed, still-encrypted vault record model and the
// orchestration that turns it into a plain projection.
//
// A [Cipher] is hydrated from a [models.CipherData] transfer object by
// [NewCipher] without touching any key material. [Cipher.Decrypt] later walks
// the record in a fixed order (name, notes, payload, attachments, fields),
// delegating every scalar to a [CryptoService], and returns a fresh
// [models.CipherView]. The record itself is never modified by decryption.
//
// The payload is a sealed sum type: [Payload] is implemented only by
// [*Login], [*Card], [*Identity] and [*SecureNote], and at most one of them
// is attached to a cipher.
package domain
