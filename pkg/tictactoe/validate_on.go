//go:build minimaxdebug

package tictactoe

// Built with -tags minimaxdebug, every cell read checks the encoding
const validating = true
