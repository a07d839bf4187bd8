// Package domain defines the fixed-size key, signature and nonce types shared
// across sigbox. It contains plain types only.
package domain
