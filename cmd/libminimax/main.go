// Shared library exposing the connect-4 engine to host applications.
//
//	go build -buildmode=c-shared -o libminimax.so ./cmd/libminimax
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/IlikeChooros/go-minimax/pkg/connect4"
	"github.com/IlikeChooros/go-minimax/pkg/native"
)

func init() {
	native.Abort = func() {
		C.abort()
	}
}

// A nil board becomes an empty slice, rejected by the guarded call
func cells(board *C.schar) []int8 {
	if board == nil {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(board)), connect4.Size)
}

// Index of the cell the engine's stone lands on, board holds 28 cells
//
//export minimax_connect4_play
func minimax_connect4_play(player C.int, board *C.schar) C.int {
	return C.int(native.Connect4Play(int(player), cells(board)))
}

// 0 or 1 for the winner, 2 otherwise
//
//export minimax_connect4_winner
func minimax_connect4_winner(board *C.schar) C.int {
	return C.int(native.Connect4Winner(cells(board)))
}

func main() {}
