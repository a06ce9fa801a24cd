//go:build !minimaxdebug

package tictactoe

const validating = false
